package bough

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is opaque black, the default Scene clear color.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA converts c to a premultiplied color.RGBA suitable for ebiten.Image.Fill.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
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

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no area. Negative sizes count as empty.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap with a non-zero area.
// Rectangles sharing only an edge do not intersect, and an empty rectangle
// intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return other.X+other.Width > r.X &&
		other.Y+other.Height > r.Y &&
		other.X < r.X+r.Width &&
		other.Y < r.Y+r.Height
}
