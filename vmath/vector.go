package vmath

import "math"

// Vec2 is a point or displacement in continuous surface units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// MagnitudeSq returns squared length without sqrt
func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Distance returns Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Magnitude()
}

// DistanceSq returns squared distance between a and b
func DistanceSq(a, b Vec2) float64 {
	return a.Sub(b).MagnitudeSq()
}

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
func ReflectAxisX(vel Vec2) Vec2 {
	return Vec2{-vel.X, vel.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
func ReflectAxisY(vel Vec2) Vec2 {
	return Vec2{vel.X, -vel.Y}
}
