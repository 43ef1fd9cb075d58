// Package triangle validates three angles and renders the resulting
// triangle on a relative scale.
package triangle

import (
	"errors"
	"math"
)

// Validation errors for the angle inputs.
var (
	ErrAngleSum    = errors.New("invalid triangle: angle sum must equal 180˚")
	ErrNonPositive = errors.New("invalid triangle: all angles must be bigger than 0˚")
	ErrTooNarrow   = errors.New("minimum angle accepted is 5˚ for the triangle to display properly")
)

// MinAngle is the smallest angle that still renders legibly.
const MinAngle = 5.0

const sumEpsilon = 1e-9

// Point is a 2D coordinate on the triangle's relative scale.
type Point struct {
	X, Y float64
}

// Triangle holds the three angles and the vertices placed on a relative
// scale: P1 at the origin, P2 at (1, 0), P3 the computed apex.
type Triangle struct {
	A1, A2, A3 float64
	P1, P2, P3 Point
}

// Solve validates the angles and computes the apex position.
func Solve(a1, a2, a3 float64) (*Triangle, error) {
	if math.Abs(a1+a2+a3-180) > sumEpsilon {
		return nil, ErrAngleSum
	}
	if a1 <= 0 || a2 <= 0 || a3 <= 0 {
		return nil, ErrNonPositive
	}
	if a1 < MinAngle || a2 < MinAngle || a3 < MinAngle {
		return nil, ErrTooNarrow
	}

	// With P1 at (0,0) and P2 at (1,0), the apex follows from the base
	// angles alone.
	r1 := a1 * math.Pi / 180
	r2 := a2 * math.Pi / 180
	x3 := math.Tan(r2) / (math.Tan(r2) + math.Tan(r1))
	y3 := math.Tan(r1) * x3

	return &Triangle{
		A1: a1, A2: a2, A3: a3,
		P1: Point{0, 0},
		P2: Point{1, 0},
		P3: Point{x3, y3},
	}, nil
}

// SideLengths returns the relative lengths of the sides opposite to the
// apex, P1, and P2 respectively. The base is always 1.
func (t *Triangle) SideLengths() (base, right, left float64) {
	return 1, dist(t.P2, t.P3), dist(t.P1, t.P3)
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
