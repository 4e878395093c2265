package imaging

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}, false},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"0000FF", color.NRGBA{0, 0, 255, 255}, false},
		{"#FF8C00", color.NRGBA{255, 140, 0, 255}, false},
		{"#fff", color.NRGBA{255, 255, 255, 255}, false},
		{" #000000 ", color.NRGBA{0, 0, 0, 255}, false},
		{"", color.NRGBA{}, true},
		{"#GG0000", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"#00FF00zz", color.NRGBA{}, true},
		{"#1234567", color.NRGBA{}, true},
		{"red", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseHexColor(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseHexColor(%q) should fail, got %v", tt.hex, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHexString(t *testing.T) {
	if got := HexString(color.NRGBA{255, 140, 0, 255}); got != "#FF8C00" {
		t.Errorf("got %s, want #FF8C00", got)
	}
	if got := HexString(color.Black); got != "#000000" {
		t.Errorf("got %s, want #000000", got)
	}
}
