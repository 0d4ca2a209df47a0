package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobraops/cobraops/internal/bench"
	"github.com/cobraops/cobraops/internal/reachability"
)

func twoNeighborBench(home0 []Point) *bench.Bench {
	return &bench.Bench{
		Center:  []Point{{0, 0}, {2.5, 0}},
		L1:      []float64{1, 1},
		L2:      []float64{1, 1},
		RMin:    []float64{0.1, 0.1},
		RMax:    []float64{3, 3},
		Home0:   home0,
		MinDist: []float64{0.5, 0.5},
		NN: bench.NeighborPairs{
			Row: []int{0, 1},
			Col: []int{1, 0},
		},
	}
}

func TestGetProblematicCobras_DetectsCollision(t *testing.T) {
	b := twoNeighborBench([]Point{{0, 0}, {2.5, 0}})
	fiberPositions := []Point{{2, 0}, {0.5, 0}} // arms fully extended toward each other

	pairs := GetProblematicCobras(fiberPositions, b)
	assert.Contains(t, pairs, Pair{Cobra: 0, Neighbor: 1})
	assert.Contains(t, pairs, Pair{Cobra: 1, Neighbor: 0})
}

func TestGetProblematicCobras_NoCollisionWhenFar(t *testing.T) {
	b := twoNeighborBench([]Point{{0, 0}, {2.5, 0}})
	fiberPositions := []Point{{-1, 0}, {3.5, 0}} // arms pointed away from each other

	pairs := GetProblematicCobras(fiberPositions, b)
	assert.Empty(t, pairs)
}

func TestGetCollisionsForCobra_CountsNeighborCollisions(t *testing.T) {
	b := twoNeighborBench([]Point{{0, 0}, {2.5, 0}})
	fiberPositions := []Point{{2, 0}, {0.5, 0}}

	assert.Equal(t, 1, GetCollisionsForCobra(0, fiberPositions, b))
	assert.Equal(t, 1, GetCollisionsForCobra(1, fiberPositions, b))
}

func TestResolve_RotatesUnusedCobraOutOfCollision(t *testing.T) {
	// cobra 1's home position fully extends toward cobra 0's assigned
	// target; cobra 0 is used (assigned), cobra 1 is unused.
	b := twoNeighborBench([]Point{{0, 0}, {0.5, 0}})
	targets := []Point{{2, 0}}
	m := reachability.Build(targets, b)
	assignedTargets := []int{0, NoTarget}

	gotAssigned, fiberPositions := Resolve(assignedTargets, m, targets, b)

	require.Equal(t, NoTarget, gotAssigned[1])
	assert.Equal(t, 0, GetCollisionsForCobra(1, fiberPositions, b))
}

func TestResolve_SwapsAssignedTargetsToClearCollision(t *testing.T) {
	b := twoNeighborBench([]Point{{0, 0}, {2.5, 0}})
	targets := []Point{
		{2, 0},   // T0: cobra 0's initial target, collides
		{0.5, 0}, // T1: cobra 1's initial target, collides
		{-2, 0},  // T2: reachable only by cobra 0 (too far from cobra 1's center)
		{4.5, 0}, // T3: reachable only by cobra 1 (too far from cobra 0's center)
	}
	m := reachability.Build(targets, b)
	assignedTargets := []int{0, 1}

	gotAssigned, fiberPositions := Resolve(assignedTargets, m, targets, b)

	assert.Equal(t, []int{1, 0}, gotAssigned)
	assert.Equal(t, 0, GetCollisionsForCobra(0, fiberPositions, b))
	assert.Equal(t, 0, GetCollisionsForCobra(1, fiberPositions, b))
}

func TestResolve_LeavesNonCollidingAssignmentsUntouched(t *testing.T) {
	b := twoNeighborBench([]Point{{0, 0}, {2.5, 0}})
	targets := []Point{{-1, 0}, {3.5, 0}}
	m := reachability.Build(targets, b)
	assignedTargets := []int{0, 1}

	gotAssigned, _ := Resolve(assignedTargets, m, targets, b)
	assert.Equal(t, []int{0, 1}, gotAssigned)
}
