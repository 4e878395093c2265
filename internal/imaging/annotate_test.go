package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/ironsheep/shutbox-mcp/internal/detection"
	"github.com/ironsheep/shutbox-mcp/internal/report"
)

func rgb8(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// hasDarkPixel reports whether any pixel in r is close to black.
func hasDarkPixel(img image.Image, r image.Rectangle) bool {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb := rgb8(img, x, y)
			if cr < 64 && cg < 64 && cb < 64 {
				return true
			}
		}
	}
	return false
}

func boardFrame() detection.Frame {
	return detection.Frame{
		Boxes: detection.Detector{Detections: []detection.Detection{
			{Label: "4-open", Bounds: detection.Bounds{X1: 20, Y1: 20, X2: 60, Y2: 60}},
			{Label: "5-closed", Bounds: detection.Bounds{X1: 80, Y1: 20, X2: 120, Y2: 60}},
		}},
		Dice: detection.Detector{Detections: []detection.Detection{
			{Label: "2", Bounds: detection.Bounds{X1: 140, Y1: 20, X2: 170, Y2: 50}},
			{Label: "2", Bounds: detection.Bounds{X1: 180, Y1: 20, X2: 210, Y2: 50}},
		}},
	}
}

func TestAnnotate_DetectionLayer(t *testing.T) {
	src := createInMemoryImage(320, 240, color.White)
	a := report.Analyze(boardFrame(), report.DefaultLayout())

	out := Annotate(src, a, DefaultStyle())

	if out.Bounds().Dx() != 320 || out.Bounds().Dy() != 240 {
		t.Fatalf("size: got %dx%d, want 320x240", out.Bounds().Dx(), out.Bounds().Dy())
	}

	tests := []struct {
		name    string
		x, y    int
		r, g, b uint8
	}{
		{"open box edge tinted green", 20, 40, 127, 255, 127},
		{"closed box edge tinted orange", 80, 40, 255, 197, 127},
		{"die edge tinted blue", 140, 30, 127, 127, 255},
		{"box interior untouched", 40, 40, 255, 255, 255},
		{"background untouched", 300, 10, 255, 255, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := rgb8(out, tt.x, tt.y)
			if !near(r, tt.r, 3) || !near(g, tt.g, 3) || !near(b, tt.b, 3) {
				t.Errorf("(%d,%d): got (%d,%d,%d), want about (%d,%d,%d)", tt.x, tt.y, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestAnnotate_TextLines(t *testing.T) {
	src := createInMemoryImage(320, 240, color.White)
	a := report.Analyze(detection.Frame{}, report.DefaultLayout())

	out := Annotate(src, a, DefaultStyle())

	// Lines sit at baselines 180, 205, 230 with 13px glyphs.
	for i, y := range []int{180, 205, 230} {
		band := image.Rect(10, y-11, 10+7*len(a.Report.Lines[i]), y+2)
		if !hasDarkPixel(out, band) {
			t.Errorf("line %d (%q): no text pixels in %v", i, a.Report.Lines[i], band)
		}
	}

	if hasDarkPixel(out, image.Rect(0, 0, 320, 150)) {
		t.Error("text painted outside the bottom-left block")
	}
}

func TestAnnotate_Downscale(t *testing.T) {
	src := createInMemoryImage(2000, 1600, color.White)
	a := report.Analyze(detection.Frame{}, report.DefaultLayout())

	out := Annotate(src, a, DefaultStyle())

	if out.Bounds().Dx() != 1000 || out.Bounds().Dy() != 800 {
		t.Errorf("size: got %dx%d, want 1000x800", out.Bounds().Dx(), out.Bounds().Dy())
	}
	// Text is painted after downscaling, at full glyph size.
	band := image.Rect(10, 790-11, 200, 790+2)
	if !hasDarkPixel(out, band) {
		t.Errorf("no text pixels in %v after downscale", band)
	}
}

func TestAnnotate_DoesNotModifySource(t *testing.T) {
	src := createInMemoryImage(100, 100, color.White)
	a := report.Analyze(boardFrame(), report.DefaultLayout())

	Annotate(src, a, DefaultStyle())

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if r, g, b := rgb8(src, x, y); r != 255 || g != 255 || b != 255 {
				t.Fatalf("source modified at (%d,%d): (%d,%d,%d)", x, y, r, g, b)
			}
		}
	}
}

func TestStrokeRect_Clipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	// Partly outside and degenerate bounds must not panic.
	strokeRect(img, detection.Bounds{X1: 40, Y1: 40, X2: 80, Y2: 80}, color.Black, 2)
	strokeRect(img, detection.Bounds{X1: 10, Y1: 10, X2: 10, Y2: 30}, color.Black, 2)

	if _, _, _, a := img.At(40, 45).RGBA(); a == 0 {
		t.Error("visible left edge was not drawn")
	}
}

func TestEncodePNG(t *testing.T) {
	img := createInMemoryImage(30, 20, color.White)

	result, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if result.Width != 30 || result.Height != 20 {
		t.Errorf("size: got %dx%d, want 30x20", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	if _, err := png.Decode(strings.NewReader(string(decoded))); err != nil {
		t.Errorf("payload is not a PNG: %v", err)
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-1, 0}, {0.3, 0.3}, {2, 1}} {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
