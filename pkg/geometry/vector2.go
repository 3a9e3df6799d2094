package geometry

import "github.com/chewxy/math32"

// Vector2 represents a 2D point or vector in canvas/screen space
type Vector2 struct {
	X, Y float32
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float32) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Div divides the vector by a scalar
func (v Vector2) Div(scalar float32) Vector2 {
	return Vector2{X: v.X / scalar, Y: v.Y / scalar}
}

// Abs returns the component-wise absolute value
func (v Vector2) Abs() Vector2 {
	return Vector2{X: math32.Abs(v.X), Y: math32.Abs(v.Y)}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float32 {
	return v.Sub(other).Length()
}

// Min returns a vector with the minimum components of two vectors
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{X: math32.Min(v.X, other.X), Y: math32.Min(v.Y, other.Y)}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{X: math32.Max(v.X, other.X), Y: math32.Max(v.Y, other.Y)}
}
