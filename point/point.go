// Package point defines the foundational geometric primitive used throughout
// polyclip2d: a 2D point with float64 coordinates.
//
// # Overview
//
// The Point type intentionally exposes only the vector operations the sweep
// engine needs: Sub (to form an edge's supporting vector), Dot and PerpDot
// (for the Schneider/Eberly intersection predicate and orientation tests),
// and Compare/Eq for the exact lexicographic ordering the event queue relies
// on. This mirrors geom2d's point package, trimmed to the boolean-engine's
// actual call surface.
//
// # Equality
//
// Compare and Eq use exact floating-point equality, never an epsilon. The
// sweep algorithm's correctness depends on ties being decided consistently;
// epsilon-based comparisons would make the event-queue and sweep-line orders
// non-antisymmetric. Epsilon tolerance, where it belongs at all, lives one
// layer up in the options package.
package point

import (
	"encoding/json"
	"fmt"
)

// Point represents a point (or, depending on context, a free vector) in the
// plane with float64 coordinates.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the x and y coordinates as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p (p - q). This is the primitive the
// sweep engine uses to obtain an edge's supporting vector: for an edge
// (a, b), Sub gives b.Sub(a).
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y}
}

// Dot returns the dot product of the vectors p and q.
func (p Point) Dot(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// PerpDot returns the 2D perpendicular dot product of p and q, equal to the
// z-component of the 3D cross product (p.x*q.y - p.y*q.x). A positive result
// means q lies counterclockwise of p; negative means clockwise; zero means
// p and q are parallel (or either is the zero vector).
func (p Point) PerpDot(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// Scale returns p scaled by k about the origin.
func (p Point) Scale(k float64) Point {
	return Point{x: p.x * k, y: p.y * k}
}

// Eq reports whether p and q have identical x and y coordinates. This is an
// exact comparison: see the package doc for why the engine never substitutes
// an epsilon here.
func (p Point) Eq(q Point) bool {
	return p.x == q.x && p.y == q.y
}

// Compare orders p and q lexicographically: first by x, then by y. It
// returns -1, 0, or 1, matching the convention of cmp.Compare. NaN
// coordinates are never expected to reach Compare; callers are responsible
// for rejecting them first (see on NaN as a fatal input error).
func (p Point) Compare(q Point) int {
	switch {
	case p.x < q.x:
		return -1
	case p.x > q.x:
		return 1
	case p.y < q.y:
		return -1
	case p.y > q.y:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts strictly before q under Compare.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// String returns a human-readable "(x,y)" representation of p.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// MarshalJSON serializes Point as a two-element JSON object.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}
