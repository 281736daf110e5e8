package proximity

import "math"

// Vec is a 2D vector in viewport pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Rect is a layout box in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the box.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Empty reports whether the box has collapsed to zero width and zero height.
func (r Rect) Empty() bool {
	return r.W == 0 && r.H == 0
}

// Contains reports whether p lies inside the box (edges inclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Sample is the per-element, per-tick proximity measurement.
type Sample struct {
	Center    Vec
	Distance  float64
	Direction Vec // unit vector from the pointer towards the centre; zero at distance 0
	Decay     float64
}

// Measure computes the sample for an element box against the pointer.
func Measure(pointer Vec, bounds Rect, radius float64) Sample {
	c := bounds.Center()
	delta := c.Sub(pointer)
	d := delta.Len()

	s := Sample{
		Center:   c,
		Distance: d,
		Decay:    Decay(d, radius),
	}
	if d > 0 {
		s.Direction = delta.Scale(1 / d)
	}
	return s
}

// Decay returns 1 - clamp(distance/radius, 0, 1). A non-positive radius never
// reaches anything.
func Decay(distance, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return 1 - clamp01(distance/radius)
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
