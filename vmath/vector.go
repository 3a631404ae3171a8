package vmath

import "math"

// Vec2 is a 2D float vector used for world positions and directions
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a vector from its components
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing along angle (radians)
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean magnitude
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}

// WrapAngle maps an angle into (-Pi, Pi]. Non-finite input yields NaN.
func WrapAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
