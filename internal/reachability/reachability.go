// Package reachability builds, for every cobra, the list of targets its
// fiber tip can reach, ordered by distance (spec.md §4.C).
package reachability

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/cobraops/cobraops/internal/bench"
	"github.com/cobraops/cobraops/internal/geom"
)

// NoTarget is the sentinel used throughout the engine for "no target".
const NoTarget = -1

// Point is the shared 2-D coordinate type.
type Point = geom.Point

// Matrix is the reachability matrix: for cobra i, TargetIdx[i] lists the
// reachable target indices in ascending distance order and TargetDist[i]
// the matching distances. Rows are ragged (one slice per cobra) rather
// than padded to a fixed K, per spec.md §9's "a ragged representation is
// acceptable provided the column-major iteration ... is preserved" — the
// assigner in internal/assign iterates column-major over these ragged
// rows directly.
type Matrix struct {
	TargetIdx  [][]int
	TargetDist [][]float64
}

// Build returns the reachability matrix for the given bench and target
// positions, following spec.md §4.C exactly:
//  1. a cheap per-axis box pre-filter (|dx| < rMax AND |dy| < rMax),
//  2. the exact annulus test (rMin < dist < rMax),
//  3. a per-cobra ascending sort by distance.
func Build(targets []Point, b *bench.Bench) Matrix {
	n := b.N()
	m := Matrix{
		TargetIdx:  make([][]int, n),
		TargetDist: make([][]float64, n),
	}

	for i := 0; i < n; i++ {
		center := b.Center[i]
		rMax := b.RMax[i]
		rMin := b.RMin[i]

		var idx []int
		var dist []float64

		for t, p := range targets {
			dx := math.Abs(center.X - p.X)
			if dx >= rMax {
				continue
			}
			dy := math.Abs(center.Y - p.Y)
			if dy >= rMax {
				continue
			}

			d := geom.Dist(center, p)
			if d > rMin && d < rMax {
				idx = append(idx, t)
				dist = append(dist, d)
			}
		}

		order := make([]int, len(idx))
		for k := range order {
			order[k] = k
		}
		slices.SortFunc(order, func(a, c int) int {
			switch {
			case dist[a] < dist[c]:
				return -1
			case dist[a] > dist[c]:
				return 1
			default:
				return 0
			}
		})

		sortedIdx := make([]int, len(idx))
		sortedDist := make([]float64, len(dist))
		for k, o := range order {
			sortedIdx[k] = idx[o]
			sortedDist[k] = dist[o]
		}

		m.TargetIdx[i] = sortedIdx
		m.TargetDist[i] = sortedDist
	}

	return m
}

// MaxK returns the widest row in the matrix (the K of spec.md §3's
// N x K shape), useful for callers that want to report or preallocate
// around the worst-case reachable count.
func (m Matrix) MaxK() int {
	k := 0
	for _, row := range m.TargetIdx {
		if len(row) > k {
			k = len(row)
		}
	}
	return k
}

// At returns the k-th nearest reachable target for cobra i, or
// (NoTarget, 0, false) if cobra i has fewer than k+1 reachable targets.
func (m Matrix) At(i, k int) (target int, dist float64, ok bool) {
	row := m.TargetIdx[i]
	if k < 0 || k >= len(row) {
		return NoTarget, 0, false
	}
	return row[k], m.TargetDist[i][k], true
}
