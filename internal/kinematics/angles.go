// Package kinematics implements the two-link arm inverse-kinematics
// adapter spec.md §4.B treats as an external contract: given a desired
// fiber tip offset from the cobra center and the two link lengths,
// return the shoulder and elbow angles that place the tip there.
package kinematics

import (
	"math"

	"github.com/cobraops/cobraops/internal/geom"
)

// Point is the 2-D coordinate type shared with internal/geom.
type Point = geom.Point

// FromPolar builds a point at radius r and angle theta from the origin.
func FromPolar(r, theta float64) Point { return geom.FromPolar(r, theta) }

// Angles holds the shoulder angle Theta and elbow angle Phi such that,
// for a cobra centered at the origin with link lengths l1 and l2, the
// tip sits at l1*e^{i*Theta} + l2*e^{i*(Theta+Phi)} and the elbow sits
// at l1*e^{i*Theta}.
type Angles struct {
	Theta float64
	Phi   float64
}

// Solve returns the shoulder/elbow angles that place the tip at center+delta
// for a two-link arm with link lengths l1, l2.
//
// One arm branch must be chosen deterministically so that every cobra in
// a bench agrees on the same convention (spec.md §9, "kinematics branch
// selection"); this implementation always resolves the elbow-up branch,
// i.e. phi in [0, pi]. Behavior is undefined (NaN may result) when
// |delta| is outside [|l1-l2|, l1+l2] — callers must guarantee
// reachability first, per spec.md §4.B and §7.
func Solve(delta Point, l1, l2 float64) Angles {
	d := delta.Abs()

	// Law of cosines for the elbow angle (angle at the elbow joint between
	// the two links), then the shoulder angle from the tip bearing and
	// the interior angle at the shoulder of the shoulder-tip-elbow
	// triangle.
	cosPhi := (d*d - l1*l1 - l2*l2) / (2 * l1 * l2)
	cosPhi = clamp(cosPhi, -1, 1)
	phi := math.Acos(cosPhi) // elbow-up: phi in [0, pi]

	cosAlpha := (l1*l1 + d*d - l2*l2) / (2 * l1 * d)
	cosAlpha = clamp(cosAlpha, -1, 1)
	alpha := math.Acos(cosAlpha)

	theta := delta.Arg() - alpha

	return Angles{Theta: theta, Phi: phi}
}

// Elbow returns the elbow position for a cobra centered at c with
// shoulder link length l1, given the shoulder angle theta.
func Elbow(c Point, l1, theta float64) Point {
	return c.Add(FromPolar(l1, theta))
}

// Tip returns the tip position for a cobra centered at c with link
// lengths l1, l2 and the given angles.
func Tip(c Point, l1, l2 float64, a Angles) Point {
	elbow := Elbow(c, l1, a.Theta)
	return elbow.Add(FromPolar(l2, a.Theta+a.Phi))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
