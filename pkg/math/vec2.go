// Package math provides float32 math types for the rendering pipeline.
package math

import "math"

// Vec2 is a 2D vector, used for texture coordinates among other things.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// MulComponents returns the component-wise product of v and other.
func (v Vec2) MulComponents(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp returns the linear interpolation between v and other at t.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
	}
}
