// Package cobraops exposes the top-level target-assignment pipeline
// (spec.md §6): build reachability, assign greedily, then repair
// collisions.
package cobraops

import (
	"fmt"

	"github.com/cobraops/cobraops/internal/assign"
	"github.com/cobraops/cobraops/internal/bench"
	"github.com/cobraops/cobraops/internal/collision"
	"github.com/cobraops/cobraops/internal/geom"
	"github.com/cobraops/cobraops/internal/reachability"
)

// Point is the shared 2-D coordinate type.
type Point = geom.Point

// NoTarget is the sentinel for "no target assigned".
const NoTarget = reachability.NoTarget

// AssignTargets runs the full pipeline of spec.md §6 against a bench and
// a set of candidate target positions: it builds the reachability
// matrix, assigns each cobra at most one target by greedy distance
// order, and repairs any resulting fiber-tip collisions. Mirrors
// targetUtils.assignTargets's three-call pipeline exactly.
//
// Returns the assigned target index for each cobra (NoTarget for cobras
// left unassigned) and the final fiber tip position for every cobra.
// The caller must pass a bench that satisfies bench.Validate.
func AssignTargets(targetPositions []Point, b *bench.Bench) (assignedTargets []int, fiberPositions []Point, err error) {
	if err := b.Validate(); err != nil {
		return nil, nil, fmt.Errorf("cobraops: invalid bench: %w", err)
	}

	m := reachability.Build(targetPositions, b)
	assignedTargets = assign.ByDistance(m, b.N(), len(targetPositions))
	assignedTargets, fiberPositions = collision.Resolve(assignedTargets, m, targetPositions, b)

	return assignedTargets, fiberPositions, nil
}

// GetProblematicCobras reports the cobra/neighbor pairs currently in
// collision for the given fiber positions, for observability and
// testing (spec.md §4.E exposed as a standalone diagnostic).
func GetProblematicCobras(fiberPositions []Point, b *bench.Bench) []collision.Pair {
	return collision.GetProblematicCobras(fiberPositions, b)
}
