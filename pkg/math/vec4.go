package math

// Vec4 is a 4-component vector. Besides homogeneous positions it doubles
// as an RGBA color and as a UV window rectangle (x, y, width, height).
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// MulComponents returns the component-wise product of v and other.
func (v Vec4) MulComponents(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// XY returns the first two components as a Vec2.
func (v Vec4) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// ZW returns the last two components as a Vec2.
func (v Vec4) ZW() Vec2 {
	return Vec2{v.Z, v.W}
}

// XYZ returns the first three components as a Vec3.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Lerp returns the linear interpolation between v and other at t.
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return Vec4{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
		v.W + t*(other.W-v.W),
	}
}
