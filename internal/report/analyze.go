package report

import (
	"github.com/ironsheep/shutbox-mcp/internal/detection"
	"github.com/ironsheep/shutbox-mcp/internal/game"
)

// Analysis is everything produced for one frame: the board, its moves, the
// display text, and the detections that were dropped.
type Analysis struct {
	State    game.GameState `json:"state"`
	Solution game.Solution  `json:"solution"`
	Report   Report         `json:"report"`

	// Warnings describe rejected detections, one per dropped detection.
	Warnings []string `json:"warnings"`

	// Rejections carry the typed errors behind Warnings.
	Rejections []error `json:"-"`
}

// Analyze resolves a frame and formats the result. Every caller, one-shot or
// per-frame, goes through here.
func Analyze(frame detection.Frame, layout Layout) Analysis {
	res := game.Resolve(frame)

	warnings := make([]string, len(res.Rejections))
	for i, err := range res.Rejections {
		warnings[i] = err.Error()
	}

	return Analysis{
		State:      res.State,
		Solution:   res.Solution,
		Report:     Format(res.State, res.Solution, layout),
		Warnings:   warnings,
		Rejections: res.Rejections,
	}
}
