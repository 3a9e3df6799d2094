package geometry

import "github.com/chewxy/math32"

// Rect represents an axis-aligned rectangle in canvas/screen space
type Rect struct {
	X, Y, Width, Height float32
}

// NewRect creates a rectangle from an origin and a size
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners computes the normalized rectangle spanned by two corners
// (ensures positive width/height regardless of drag direction)
func RectFromCorners(a, b Vector2) Rect {
	minX := math32.Min(a.X, b.X)
	maxX := math32.Max(a.X, b.X)
	minY := math32.Min(a.Y, b.Y)
	maxY := math32.Max(a.Y, b.Y)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Origin returns the top-left corner of the rectangle
func (r Rect) Origin() Vector2 {
	return Vector2{X: r.X, Y: r.Y}
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Local converts a screen-space point into rectangle-local coordinates
func (r Rect) Local(p Vector2) Vector2 {
	return Vector2{X: p.X - r.X, Y: p.Y - r.Y}
}
