// Package graphics2d provides small 2D vector math and a rasterized
// frame that exports through the pngen encoder.
package graphics2d

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector. Operations return new values.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2   { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2   { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Div(s float64) Vector2   { return Vector2{v.X / s, v.Y / s} }
func (v Vector2) Dot(o Vector2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vector2) Magnitude() float64      { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector, or the zero vector unchanged.
func (v Vector2) Normalize() Vector2 {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	return v.Div(mag)
}

// Angle returns the angle between two vectors in radians.
func (v Vector2) Angle(o Vector2) float64 {
	return math.Acos(v.Dot(o) / (v.Magnitude() * o.Magnitude()))
}

// Rotate returns the vector rotated counterclockwise by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Lerp interpolates between v and o; t=0 gives v, t=1 gives o.
func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return v.Add(o.Sub(v).Scale(t))
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Line is a 2D segment from Start to End.
type Line struct {
	Start, End Vector2
}

func (l Line) Length() float64    { return l.End.Sub(l.Start).Magnitude() }
func (l Line) Direction() Vector2 { return l.End.Sub(l.Start) }

// PointAt returns the point t of the way along the segment, t in
// [0, 1].
func (l Line) PointAt(t float64) Vector2 {
	return l.Start.Add(l.End.Sub(l.Start).Scale(t))
}

// Lerp interpolates both endpoints toward another line.
func (l Line) Lerp(o Line, t float64) Line {
	return Line{l.Start.Lerp(o.Start, t), l.End.Lerp(o.End, t)}
}

func (l Line) String() string {
	return fmt.Sprintf("%s -> %s", l.Start, l.End)
}

// Circle is a 2D circle.
type Circle struct {
	Center Vector2
	Radius float64
}

func (c Circle) Area() float64          { return math.Pi * c.Radius * c.Radius }
func (c Circle) Circumference() float64 { return 2 * math.Pi * c.Radius }

// Contains reports whether the point lies on or inside the circle.
func (c Circle) Contains(p Vector2) bool {
	return p.Sub(c.Center).Magnitude() <= c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Center: %s, Radius: %g", c.Center, c.Radius)
}
