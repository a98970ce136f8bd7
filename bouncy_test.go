package bouncy

import (
	"image/color"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 40, true},
		{10, 20, true},
		{110, 70, true},
		{9, 40, false},
		{50, 71, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestColorLerp(t *testing.T) {
	c := ColorRed.Lerp(ColorWhite, 0.5)
	if c != (Color{1, 0.5, 0.5, 1}) {
		t.Errorf("Lerp = %+v", c)
	}
	if ColorRed.Lerp(ColorWhite, -1) != ColorRed {
		t.Error("t below 0 clamps to the start color")
	}
	if ColorRed.Lerp(ColorWhite, 2) != ColorWhite {
		t.Error("t above 1 clamps to the end color")
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{ColorWhite, color.RGBA{255, 255, 255, 255}},
		{ColorBlack, color.RGBA{0, 0, 0, 255}},
		{Color{1, 0, 0, 0.5}, color.RGBA{127, 0, 0, 127}},
		{Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := tt.in.RGBA(); got != tt.want {
			t.Errorf("%+v.RGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
