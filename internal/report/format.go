package report

import (
	"image"
	"sort"
	"strconv"
	"strings"

	"github.com/ironsheep/shutbox-mcp/internal/game"
)

// NoMoves is the third line when no combination matches the dice.
const NoMoves = "No possible combinations"

// Layout is the anchor rule a renderer follows to place the report lines.
type Layout struct {
	// MarginX is the left edge of every line.
	MarginX int `json:"margin_x"`

	// MarginBottom is the gap between the last line's baseline and the canvas bottom.
	MarginBottom int `json:"margin_bottom"`

	// LineSpacing is the baseline-to-baseline distance.
	LineSpacing int `json:"line_spacing"`

	// MaxWidth and MaxHeight bound the canvas; larger canvases are downscaled
	// uniformly before the lines are painted.
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
}

// DefaultLayout returns the layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{
		MarginX:      10,
		MarginBottom: 10,
		LineSpacing:  25,
		MaxWidth:     1000,
		MaxHeight:    800,
	}
}

// Scale returns the uniform factor a width x height canvas must be resized by
// to fit within MaxWidth x MaxHeight. It is 1 when the canvas already fits or
// when a limit is unset.
func (l Layout) Scale(width, height int) float64 {
	if width <= 0 || height <= 0 || l.MaxWidth <= 0 || l.MaxHeight <= 0 {
		return 1
	}
	if width <= l.MaxWidth && height <= l.MaxHeight {
		return 1
	}
	sx := float64(l.MaxWidth) / float64(width)
	sy := float64(l.MaxHeight) / float64(height)
	if sx < sy {
		return sx
	}
	return sy
}

// Positions returns the baseline origin of each of n lines on a canvas of the
// given height. Lines stack upward from the bottom-left corner: the last line
// sits MarginBottom above the bottom edge.
func (l Layout) Positions(canvasHeight, n int) []image.Point {
	if n <= 0 {
		return nil
	}
	start := canvasHeight - l.MarginBottom - (n-1)*l.LineSpacing
	points := make([]image.Point, n)
	for i := range points {
		points[i] = image.Point{X: l.MarginX, Y: start + i*l.LineSpacing}
	}
	return points
}

// Report is the text a renderer paints for one frame.
type Report struct {
	// Lines are, in order: dice, open boxes, legal moves.
	Lines []string `json:"lines"`

	Layout Layout `json:"layout"`
}

// String returns the lines joined by newlines.
func (r Report) String() string {
	return strings.Join(r.Lines, "\n")
}

// Format renders a state and its solution as three display lines.
//
// Dice keep their detected order; open boxes are listed in ascending order,
// unlike the solver which keeps detection order. Neither argument is modified.
func Format(state game.GameState, solution game.Solution, layout Layout) Report {
	open := append([]int(nil), state.OpenBoxes...)
	sort.Ints(open)

	moves := NoMoves
	if solution.Count() > 0 {
		parts := make([]string, len(solution.Combinations))
		for i, combo := range solution.Combinations {
			parts[i] = bracketed(combo)
		}
		moves = "Possible to close: " + strings.Join(parts, ", ")
	}

	return Report{
		Lines: []string{
			"Dice: " + bracketed(state.DiceValues),
			"Open Boxes: " + joinInts(open),
			moves,
		},
		Layout: layout,
	}
}

// bracketed renders values as "[1, 2, 3]".
func bracketed(values []int) string {
	return "[" + joinInts(values) + "]"
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
