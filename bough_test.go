package bough

import (
	"image/color"
	"testing"
)

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(0, 0) || !r.Contains(10, 10) || !r.Contains(5, 5) {
		t.Error("Contains should include interior and edges")
	}
	if r.Contains(10.01, 5) || r.Contains(-0.01, 5) {
		t.Error("Contains should exclude outside points")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"right edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"bottom edge", Rect{X: 0, Y: 10, Width: 10, Height: 10}, false},
		{"one unit", Rect{X: 9, Y: 9, Width: 10, Height: 10}, true},
		{"far", Rect{X: 100, Y: 100, Width: 1, Height: 1}, false},
		{"zero width", Rect{X: 5, Y: 5, Width: 0, Height: 10}, false},
		{"negative height", Rect{X: 5, Y: 5, Width: 10, Height: -3}, false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Intersects(a); got != tt.want {
			t.Errorf("%s (swapped): Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() || !(Rect{Width: -1, Height: 5}).Empty() {
		t.Error("zero or negative sizes should be empty")
	}
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 should not be empty")
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("RGBA = %v, want %v", got, want)
	}
	if ColorBlack.RGBA() != (color.RGBA{A: 255}) {
		t.Errorf("black = %v", ColorBlack.RGBA())
	}
}

func TestColorRGBAClamps(t *testing.T) {
	got := Color{R: 2, G: -1, B: 1, A: 1}.RGBA()
	if got != (color.RGBA{R: 255, G: 0, B: 255, A: 255}) {
		t.Errorf("RGBA = %v", got)
	}
}
