// Package report formats a resolved frame for display.
//
// Format produces three lines (dice, open boxes, legal moves) and a Layout that
// tells a renderer where to put them: stacked bottom-up from the lower-left
// corner, one LineSpacing apart, after the canvas has been downscaled to fit
// MaxWidth x MaxHeight. The package never touches pixels.
package report
