package raster

import "math"

// Vec2 is a point or direction in screen space.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(t float64) Vec2   { return Vec2{v.X * t, v.Y * t} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Round returns the nearest integer pixel.
func (v Vec2) Round() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
