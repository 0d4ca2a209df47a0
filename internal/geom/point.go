// Package geom provides the planar geometry primitives the collision
// engine is built on: points, and the minimum-distance tests between
// points and line segments, and between two line segments.
package geom

import "math"

// Point is a location in the plane. The source this package is derived
// from represents points as complex numbers; Point keeps the same
// arithmetic (translate, rotate, scale) but as an explicit struct so the
// operation order stays visible at each call site.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Abs returns the Euclidean norm |p|.
func (p Point) Abs() float64 {
	return math.Hypot(p.X, p.Y)
}

// Arg returns the angle of p from the positive X axis, in (-pi, pi].
func (p Point) Arg() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rotate returns p rotated by ang radians around the origin, i.e. the
// complex-plane product p * exp(i*ang).
func (p Point) Rotate(ang float64) Point {
	s, c := math.Sincos(ang)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// FromPolar builds a point at radius r and angle theta from the origin.
func FromPolar(r, theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{X: r * c, Y: r * s}
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return p.Sub(q).Abs()
}
