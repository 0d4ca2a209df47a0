// Package collision detects and repairs fiber-tip collisions between
// neighboring cobras (spec.md §4.E, §4.F).
package collision

import (
	"github.com/cobraops/cobraops/internal/bench"
	"github.com/cobraops/cobraops/internal/geom"
	"github.com/cobraops/cobraops/internal/kinematics"
)

// Point is the shared 2-D coordinate type.
type Point = geom.Point

// Pair identifies a colliding cobra and the neighbor it collides with.
// Grounded on the teacher's Conflict type (algo/solver.go) as the Go
// idiom for "a pairwise problem between two agents", reduced to the two
// indices spec.md §4.E actually needs.
type Pair struct {
	Cobra, Neighbor int
}

// elbowOf returns cobra i's elbow position for the given fiber tip.
func elbowOf(i int, fiberPositions []Point, b *bench.Bench) Point {
	center := b.Center[i]
	delta := fiberPositions[i].Sub(center)
	angles := kinematics.Solve(delta, b.L1[i], b.L2[i])
	return kinematics.Elbow(center, b.L1[i], angles.Theta)
}

// collides reports whether cobra i's outer link (elbow to fiber tip)
// comes closer to cobra j's outer link than their combined half-widths
// allow, per spec.md §4.E.
func collides(i, j int, fiberPositions []Point, elbows []Point, b *bench.Bench) bool {
	d := geom.DistanceBetweenSegments(fiberPositions[i], elbows[i], fiberPositions[j], elbows[j])
	threshold := (b.MinDist[i] + b.MinDist[j]) / 2
	return d < threshold
}

// GetProblematicCobras returns, for every neighbor pair in the bench's
// NN list, both directions of every pair currently in collision. Mirrors
// targetUtils.getProblematicCobras exactly, including reporting both
// (i,j) and (j,i).
func GetProblematicCobras(fiberPositions []Point, b *bench.Bench) []Pair {
	n := b.N()
	elbows := make([]Point, n)
	for i := 0; i < n; i++ {
		elbows[i] = elbowOf(i, fiberPositions, b)
	}

	var pairs []Pair
	for k, i := range b.NN.Row {
		j := b.NN.Col[k]
		if i >= j {
			continue // only test each unordered pair once
		}
		if collides(i, j, fiberPositions, elbows, b) {
			pairs = append(pairs, Pair{Cobra: i, Neighbor: j}, Pair{Cobra: j, Neighbor: i})
		}
	}
	return pairs
}

// GetCollisionsForCobra counts how many of cobra i's neighbors it
// currently collides with. Mirrors targetUtils.getCollisionsForCobra.
func GetCollisionsForCobra(i int, fiberPositions []Point, b *bench.Bench) int {
	elbowI := elbowOf(i, fiberPositions, b)
	count := 0
	for _, j := range b.NeighborsOf(i) {
		elbowJ := elbowOf(j, fiberPositions, b)
		d := geom.DistanceBetweenSegments(fiberPositions[i], elbowI, fiberPositions[j], elbowJ)
		threshold := (b.MinDist[i] + b.MinDist[j]) / 2
		if d < threshold {
			count++
		}
	}
	return count
}
