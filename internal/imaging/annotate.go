package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/shutbox-mcp/internal/detection"
	"github.com/ironsheep/shutbox-mcp/internal/report"
)

// Style controls how detections and report text are painted.
type Style struct {
	OpenBox   color.NRGBA
	ClosedBox color.NRGBA
	Dice      color.NRGBA
	Text      color.NRGBA

	// Opacity is how strongly the detection layer shows through (0.0 to 1.0).
	Opacity float64

	// Thickness is the rectangle stroke width in source pixels. Zero means 2.
	Thickness int
}

// DefaultStyle returns green open boxes, orange closed boxes, blue dice and
// black text over a half-transparent detection layer.
func DefaultStyle() Style {
	return Style{
		OpenBox:   color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		ClosedBox: color.NRGBA{R: 255, G: 140, B: 0, A: 255},
		Dice:      color.NRGBA{R: 0, G: 0, B: 255, A: 255},
		Text:      color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Opacity:   0.5,
		Thickness: 2,
	}
}

// Annotate paints an analysis onto a copy of src.
//
// The pipeline is:
//
//  1. Stroke every kept box and die on a detection layer (box color by status)
//  2. Blend the layer over the source at Style.Opacity
//  3. Downscale uniformly if the canvas exceeds the report layout's limits
//  4. Paint the report lines bottom-up from the lower-left corner
//
// Detection bounds are in source pixel coordinates relative to src's origin.
// src is never modified.
func Annotate(src image.Image, a report.Analysis, style Style) *image.NRGBA {
	canvas := imaging.Clone(src)

	layer := imaging.Clone(canvas)
	thickness := style.Thickness
	if thickness <= 0 {
		thickness = 2
	}
	for _, b := range a.State.Boxes {
		c := style.OpenBox
		if !b.Open() {
			c = style.ClosedBox
		}
		strokeRect(layer, b.Bounds, c, thickness)
	}
	for _, d := range a.State.Dice {
		strokeRect(layer, d.Bounds, style.Dice, thickness)
	}

	blended := blend.Opacity(canvas, layer, clamp01(style.Opacity))

	layout := a.Report.Layout
	w, h := blended.Bounds().Dx(), blended.Bounds().Dy()
	var out *image.NRGBA
	if scale := layout.Scale(w, h); scale < 1 {
		sw, sh := scaledSize(w, h, scale)
		out = imaging.Resize(blended, sw, sh, imaging.Lanczos)
	} else {
		out = imaging.Clone(blended)
	}

	drawLines(out, a.Report.Lines, layout, style.Text)
	return out
}

// strokeRect draws the outline of b, clipped to the image.
func strokeRect(img draw.Image, b detection.Bounds, c color.Color, thickness int) {
	r := image.Rect(b.X1, b.Y1, b.X2, b.Y2)
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), // top
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), // left
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), // right
	}
	for _, e := range edges {
		e = e.Intersect(r).Intersect(img.Bounds())
		if !e.Empty() {
			draw.Draw(img, e, src, image.Point{}, draw.Src)
		}
	}
}

// drawLines paints text lines at the layout's bottom-up positions.
func drawLines(img *image.NRGBA, lines []string, layout report.Layout, c color.Color) {
	positions := layout.Positions(img.Bounds().Dy(), len(lines))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		p := positions[i]
		d.Dot = fixed.P(img.Bounds().Min.X+p.X, img.Bounds().Min.Y+p.Y)
		d.DrawString(line)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
