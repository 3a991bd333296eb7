package style

import (
	"image/color"
	"testing"
)

func TestParseTransform(t *testing.T) {
	tests := []struct {
		in   string
		want Transform
	}{
		{"translateY(-20px)", Transform{TranslateY: -20, Scale: 1}},
		{"translateY(0)", Transform{TranslateY: 0, Scale: 1}},
		{"scale(0.95)", Transform{TranslateY: 0, Scale: 0.95}},
		{"scale(1)", Transform{TranslateY: 0, Scale: 1}},
		{"translateY(-20px), opacity: 0", Transform{TranslateY: -20, Scale: 1}},
		{"translateY(8px), scale(1.1)", Transform{TranslateY: 8, Scale: 1.1}},
		{"", Identity()},
		{"rotate(45deg)", Identity()},
		{"scale(banana)", Identity()},
		{"translateY(", Identity()},
	}
	for _, tt := range tests {
		if got := ParseTransform(tt.in); got != tt.want {
			t.Errorf("ParseTransform(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseOpacity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"1", 1},
		{"0.5", 0.5},
		{" 0.25 ", 0.25},
		{"-1", 0},
		{"3", 1},
		{"opaque", 1},
		{"", 1},
	}
	for _, tt := range tests {
		if got := ParseOpacity(tt.in); got != tt.want {
			t.Errorf("ParseOpacity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#000000", color.RGBA{A: 0xFF}},
		{"#ff0000", color.RGBA{R: 0xFF, A: 0xFF}},
		{"#4682B4", color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF}},
		{"#fff", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"#a3c", color.RGBA{R: 0xAA, G: 0x33, B: 0xCC, A: 0xFF}},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if !ok {
			t.Errorf("ParseColor(%q) not ok", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorNames(t *testing.T) {
	got, ok := ParseColor("steelblue")
	if !ok {
		t.Fatal("ParseColor(steelblue) not ok")
	}
	want := color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF}
	if got != want {
		t.Errorf("ParseColor(steelblue) = %+v, want %+v", got, want)
	}

	if _, ok := ParseColor("SteelBlue"); !ok {
		t.Error("ParseColor should be case-insensitive for names")
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg", "notacolor"} {
		if _, ok := ParseColor(in); ok {
			t.Errorf("ParseColor(%q) should not be ok", in)
		}
	}
}
