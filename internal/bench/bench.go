// Package bench defines the read-only bench geometry descriptor the
// assignment engine consumes (spec.md §3, §6). A Bench is supplied by an
// external calibration/geometry-construction process — building one from
// raw calibration data is explicitly out of scope here (spec.md §1) —
// but the engine needs a concrete, validated struct to operate on, in
// the same spirit as the teacher's Workspace: per-index field arrays
// plus a precomputed neighbor relation, rather than a graph of pointers.
package bench

import (
	"errors"
	"fmt"

	"github.com/cobraops/cobraops/internal/geom"
)

// Point is the shared 2-D coordinate type.
type Point = geom.Point

// Bench describes the fixed geometry of every cobra positioner and the
// neighbor relation between cobras whose patrol annuli may overlap. All
// fields are parallel arrays indexed by cobra index; the core never
// mutates a Bench after construction.
//
// Every length/distance field must be expressed in the same physical
// unit (spec.md §9 "bench unit consistency" is explicitly out of scope
// for this package — it is a caller obligation, not something Bench can
// verify from the numbers alone).
type Bench struct {
	Center  []Point   // cobra rotation centers
	L1      []float64 // shoulder link lengths
	L2      []float64 // elbow link lengths
	RMin    []float64 // inner patrol radius
	RMax    []float64 // outer patrol radius
	Home0   []Point   // default unused fiber position
	MinDist []float64 // per-cobra collision half-width

	// NN holds both directions of every neighbor pair: for each k,
	// (Row[k], Col[k]) and some other k' has (Col[k], Row[k]). Supplied
	// this way (rather than as a single {i,j} set) because
	// internal/collision needs to iterate "all neighbors of cobra i" by
	// scanning where Row == i.
	NN NeighborPairs
}

// NeighborPairs is the bench's precomputed adjacency: unordered pairs of
// cobra indices whose patrol areas may intersect, stored as parallel
// arrays containing both (i,j) and (j,i).
type NeighborPairs struct {
	Row []int
	Col []int
}

// N returns the number of cobras in the bench.
func (b *Bench) N() int {
	return len(b.Center)
}

// NeighborsOf returns the cobra indices adjacent to cobra i.
func (b *Bench) NeighborsOf(i int) []int {
	var out []int
	for k, r := range b.NN.Row {
		if r == i {
			out = append(out, b.NN.Col[k])
		}
	}
	return out
}

// Validate checks the internal consistency of the array lengths and
// basic geometric sanity (positive lengths and radii, NN indices in
// range). It does not and cannot check unit consistency or the
// overlap-implies-neighbor invariant mentioned in spec.md §7 ("bench
// malformed ... undefined; caller's contract to supply consistent
// bench") — those remain the caller's responsibility.
func (b *Bench) Validate() error {
	n := b.N()
	if len(b.L1) != n || len(b.L2) != n || len(b.RMin) != n || len(b.RMax) != n ||
		len(b.Home0) != n || len(b.MinDist) != n {
		return errors.New("bench: field arrays must all have the same length as Center")
	}
	if len(b.NN.Row) != len(b.NN.Col) {
		return errors.New("bench: NN.Row and NN.Col must have the same length")
	}

	for i := 0; i < n; i++ {
		if b.L1[i] <= 0 || b.L2[i] <= 0 {
			return fmt.Errorf("bench: cobra %d has non-positive link length", i)
		}
		if b.RMin[i] < 0 || b.RMax[i] <= b.RMin[i] {
			return fmt.Errorf("bench: cobra %d has invalid annulus [%v, %v]", i, b.RMin[i], b.RMax[i])
		}
		if b.MinDist[i] <= 0 {
			return fmt.Errorf("bench: cobra %d has non-positive minDist", i)
		}
	}

	for k, r := range b.NN.Row {
		c := b.NN.Col[k]
		if r < 0 || r >= n || c < 0 || c >= n {
			return fmt.Errorf("bench: NN pair (%d,%d) out of range [0,%d)", r, c, n)
		}
	}

	return nil
}
