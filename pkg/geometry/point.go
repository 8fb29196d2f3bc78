package geometry

import (
	"fmt"
	"math"
)

// DefaultThreshold is the snapping radius in pixels used when none is configured
const DefaultThreshold = 30.0

// Point represents a 2D position in image/screen pixel space
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{
		X: p.X + other.X,
		Y: p.Y + other.Y,
	}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{
		X: p.X - other.X,
		Y: p.Y - other.Y,
	}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{
		X: p.X * scalar,
		Y: p.Y * scalar,
	}
}

// Length returns the magnitude of the point treated as a vector
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// String formats the point with two decimals
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p1 and p2
func Distance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AreClose reports whether p1 and p2 are at most threshold apart
func AreClose(p1, p2 Point, threshold float64) bool {
	return Distance(p1, p2) <= threshold
}

// Midpoint returns the point halfway between p1 and p2
func Midpoint(p1, p2 Point) Point {
	return p1.Add(p2).Mul(0.5)
}
