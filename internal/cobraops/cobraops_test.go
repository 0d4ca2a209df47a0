package cobraops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobraops/cobraops/internal/bench"
)

// S1: single cobra, single target in range.
func TestAssignTargets_S1_SingleCobraInRange(t *testing.T) {
	b := &bench.Bench{
		Center:  []Point{{0, 0}},
		L1:      []float64{1},
		L2:      []float64{1},
		RMin:    []float64{0.1},
		RMax:    []float64{2},
		Home0:   []Point{{0, 0}},
		MinDist: []float64{0.1},
	}
	targets := []Point{{1.0, 0.0}}

	assigned, fibers, err := AssignTargets(targets, b)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, assigned)
	assert.Equal(t, []Point{{1.0, 0.0}}, fibers)
}

// S2: single cobra, target out of range.
func TestAssignTargets_S2_TargetOutOfRange(t *testing.T) {
	b := &bench.Bench{
		Center:  []Point{{0, 0}},
		L1:      []float64{1},
		L2:      []float64{1},
		RMin:    []float64{0.1},
		RMax:    []float64{2},
		Home0:   []Point{{0, 0}},
		MinDist: []float64{0.1},
	}
	targets := []Point{{3.0, 0.0}}

	assigned, fibers, err := AssignTargets(targets, b)
	require.NoError(t, err)
	assert.Equal(t, []int{NoTarget}, assigned)
	assert.Equal(t, []Point{{0, 0}}, fibers)
}

// S3: two cobras competing for the same lone target; the closer cobra
// (lower distance, ties broken toward lower index) wins.
func TestAssignTargets_S3_CompetingCobrasClosestWins(t *testing.T) {
	b := &bench.Bench{
		Center:  []Point{{0, 0}, {1.5, 0}},
		L1:      []float64{1, 1},
		L2:      []float64{1, 1},
		RMin:    []float64{0.1, 0.1},
		RMax:    []float64{2, 2},
		Home0:   []Point{{0, 0}, {1.5, 0}},
		MinDist: []float64{0.1, 0.1},
		NN: bench.NeighborPairs{
			Row: []int{0, 1},
			Col: []int{1, 0},
		},
	}
	targets := []Point{{0.75, 0.0}}

	assigned, fibers, err := AssignTargets(targets, b)
	require.NoError(t, err)
	assert.Equal(t, 0, assigned[0])
	assert.Equal(t, NoTarget, assigned[1])
	assert.Equal(t, Point{0.75, 0.0}, fibers[0])
	assert.Equal(t, Point{1.5, 0}, fibers[1]) // left at home0
}

// S4: two cobras, two targets, distance-greedy matches each to its
// nearest target with no collision.
func TestAssignTargets_S4_DistanceGreedyMatchesCorrectly(t *testing.T) {
	b := &bench.Bench{
		Center:  []Point{{0, 0}, {2, 0}},
		L1:      []float64{1, 1},
		L2:      []float64{1, 1},
		RMin:    []float64{0.1, 0.1},
		RMax:    []float64{2, 2},
		Home0:   []Point{{0, 0}, {2, 0}},
		MinDist: []float64{0.1, 0.1},
		NN: bench.NeighborPairs{
			Row: []int{0, 1},
			Col: []int{1, 0},
		},
	}
	targets := []Point{{0.2, 0}, {1.8, 0}}

	assigned, _, err := AssignTargets(targets, b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, assigned)
}

// S5: collision repair by reassignment — greedy assigns the colliding
// pair, the resolver reassigns the pair's targets (cobra 1 moves to T3)
// and eliminates the collision.
func TestAssignTargets_S5_CollisionRepairBySwap(t *testing.T) {
	b := &bench.Bench{
		Center:  []Point{{0, 0}, {2.5, 0}},
		L1:      []float64{1, 1},
		L2:      []float64{1, 1},
		RMin:    []float64{0.6, 0.6}, // each cobra reaches only its own side's targets
		RMax:    []float64{3, 3},
		Home0:   []Point{{0, 0}, {2.5, 0}},
		MinDist: []float64{0.5, 0.5},
		NN: bench.NeighborPairs{
			Row: []int{0, 1},
			Col: []int{1, 0},
		},
	}
	// T0 near cobra 0's patrol edge toward cobra 1, T1 symmetric: greedy
	// assigns T0->0, T1->1, colliding; alternatives T2/T3 let the
	// resolver move one of the pair out of the collision.
	targets := []Point{{2, 0}, {0.5, 0}, {-2, 0}, {4.5, 0}}

	assigned, fibers, err := AssignTargets(targets, b)
	require.NoError(t, err)

	residual := GetProblematicCobras(fibers, b)
	assert.Empty(t, residual)
	assert.NotEqual(t, []int{0, 1}, assigned)
}

// S6: unresolvable collision — neither cobra has an alternative target,
// so the resolver commits to the originals and the pair remains
// problematic.
func TestAssignTargets_S6_UnresolvableCollision(t *testing.T) {
	b := &bench.Bench{
		Center:  []Point{{0, 0}, {2.5, 0}},
		L1:      []float64{1, 1},
		L2:      []float64{1, 1},
		RMin:    []float64{0.6, 0.6}, // excludes each cobra from the other's target
		RMax:    []float64{3, 3},
		Home0:   []Point{{0, 0}, {2.5, 0}},
		MinDist: []float64{0.5, 0.5},
		NN: bench.NeighborPairs{
			Row: []int{0, 1},
			Col: []int{1, 0},
		},
	}
	// Only one target reachable by each cobra, with no alternatives:
	// the greedy assignment is forced and the resolver has nothing to
	// swap to.
	targets := []Point{{2, 0}, {0.5, 0}}

	assigned, fibers, err := AssignTargets(targets, b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, assigned)

	residual := GetProblematicCobras(fibers, b)
	assert.NotEmpty(t, residual)
}

// Round-trip invariant (spec.md §7.8): with no neighbor pairs, the
// resolver is a no-op and the output equals the distance-greedy
// assignment directly.
func TestAssignTargets_NoNeighbors_ResolverIsNoOp(t *testing.T) {
	b := &bench.Bench{
		Center:  []Point{{0, 0}, {2.5, 0}},
		L1:      []float64{1, 1},
		L2:      []float64{1, 1},
		RMin:    []float64{0.6, 0.6}, // each cobra reaches only its own target
		RMax:    []float64{3, 3},
		Home0:   []Point{{0, 0}, {2.5, 0}},
		MinDist: []float64{0.5, 0.5},
	}
	targets := []Point{{2, 0}, {0.5, 0}}

	assigned, fibers, err := AssignTargets(targets, b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, assigned)
	assert.Equal(t, []Point{{2, 0}, {0.5, 0}}, fibers)
}

func TestAssignTargets_InvalidBenchReturnsError(t *testing.T) {
	b := &bench.Bench{
		Center: []Point{{0, 0}},
		L1:     []float64{1, 1}, // mismatched length
	}
	_, _, err := AssignTargets(nil, b)
	assert.Error(t, err)
}
