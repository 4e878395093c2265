package game

import "github.com/ironsheep/shutbox-mcp/internal/detection"

// Resolution is the full core result for one frame.
type Resolution struct {
	State    GameState
	Solution Solution

	// Rejections are the detections dropped by the label parser, in order.
	// Each is a *detection.RejectionError.
	Rejections []error
}

// Resolve parses, aggregates and solves one frame.
//
// Resolve has no side effects and keeps nothing between calls, so the same
// function serves a one-shot image and every frame of a live loop.
func Resolve(frame detection.Frame) Resolution {
	boxFacts, diceFacts, rejections := frame.Facts()
	state := NewGameState(AggregateBoxes(boxFacts), AggregateDice(diceFacts))
	return Resolution{
		State:      state,
		Solution:   Solve(state.DiceValues, state.OpenBoxes),
		Rejections: rejections,
	}
}
