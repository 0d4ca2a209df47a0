package collision

import (
	"math"

	"github.com/cobraops/cobraops/internal/bench"
	"github.com/cobraops/cobraops/internal/reachability"
)

// NoTarget is the sentinel for "no target assigned".
const NoTarget = reachability.NoTarget

// rotationAngles are the five interior angles of
// np.linspace(0, 2*pi, 7)[1:-1]: the endpoints 0 and 2*pi are excluded
// because they reproduce the starting position.
var rotationAngles = [5]float64{
	1 * 2 * math.Pi / 6,
	2 * 2 * math.Pi / 6,
	3 * 2 * math.Pi / 6,
	4 * 2 * math.Pi / 6,
	5 * 2 * math.Pi / 6,
}

// Resolve repairs every fiber-tip collision left after greedy assignment
// (spec.md §4.F), mirroring targetUtils.solveCobraCollisions:
//
//  1. unused cobras start at Home0, used cobras at their assigned
//     target's position;
//  2. for every colliding pair where one cobra is unused, rotate that
//     cobra's fiber through the five interior angles of a hexagon around
//     its center, stopping at the first angle with zero collisions (or
//     keeping the original position if none is collision-free);
//  3. for every colliding pair where both cobras are assigned, search all
//     combinations of their remaining free reachable targets, accepting
//     a combination whenever its total collision count for the pair is
//     at least two below the best accepted so far, and stopping as soon
//     as it reaches zero; keep the original pair if nothing qualifies.
//
// assignedTargets is consumed, not mutated; the returned slice reflects
// any target reassignments made while resolving collisions.
func Resolve(assignedTargets []int, m reachability.Matrix, targetPositions []Point, b *bench.Bench) ([]int, []Point) {
	n := b.N()
	assigned := append([]int(nil), assignedTargets...)

	fiberPositions := make([]Point, n)
	for i := 0; i < n; i++ {
		if assigned[i] == NoTarget {
			fiberPositions[i] = b.Home0[i]
		} else {
			fiberPositions[i] = targetPositions[assigned[i]]
		}
	}

	freeTargets := make([]bool, len(targetPositions))
	for t := range freeTargets {
		freeTargets[t] = true
	}
	for _, t := range assigned {
		if t != NoTarget {
			freeTargets[t] = false
		}
	}

	pairs := GetProblematicCobras(fiberPositions, b)
	for _, p := range pairs {
		c, nc := p.Cobra, p.Neighbor
		if nc <= c {
			continue // only resolve each unordered pair once
		}

		switch {
		case assigned[c] == NoTarget || assigned[nc] == NoTarget:
			cobraToMove := c
			if assigned[c] != NoTarget {
				cobraToMove = nc
			}
			rotateUntilClear(cobraToMove, fiberPositions, b)

		default:
			swapToReduceCollisions(c, nc, assigned, m, targetPositions, freeTargets, fiberPositions, b)
		}
	}

	return assigned, fiberPositions
}

// rotateUntilClear rotates cobra i's fiber position around its center
// through rotationAngles, keeping the first position with zero
// collisions against its neighbors, or leaving it at its starting
// position if none qualifies.
func rotateUntilClear(i int, fiberPositions []Point, b *bench.Bench) {
	center := b.Center[i]
	initial := fiberPositions[i]
	best := initial

	for _, ang := range rotationAngles {
		fiberPositions[i] = initial.Sub(center).Rotate(ang).Add(center)
		if GetCollisionsForCobra(i, fiberPositions, b) == 0 {
			best = fiberPositions[i]
			break
		}
	}

	fiberPositions[i] = best
}

// swapToReduceCollisions searches the Cartesian product of cobra c's and
// cobra nc's remaining free reachable targets, accepting each
// combination whose combined collision count is at least two below the
// best accepted so far and stopping early at zero collisions, per
// targetUtils.solveCobraCollisions.
func swapToReduceCollisions(c, nc int, assigned []int, m reachability.Matrix, targetPositions []Point, freeTargets []bool, fiberPositions []Point, b *bench.Bench) {
	initialTarget1, initialTarget2 := assigned[c], assigned[nc]
	collisions := GetCollisionsForCobra(c, fiberPositions, b) + GetCollisionsForCobra(nc, fiberPositions, b)

	freeTargets[initialTarget1] = true
	freeTargets[initialTarget2] = true

	targets1 := freeReachable(m, c, freeTargets)
	targets2 := freeReachable(m, nc, freeTargets)

	bestTarget1, bestTarget2 := initialTarget1, initialTarget2

	for _, t1 := range targets1 {
		if collisions == 0 {
			break
		}
		for _, t2 := range targets2 {
			if t1 == t2 {
				continue
			}
			if t1 == initialTarget1 && t2 == initialTarget2 {
				continue
			}

			fiberPositions[c] = targetPositions[t1]
			fiberPositions[nc] = targetPositions[t2]
			current := GetCollisionsForCobra(c, fiberPositions, b) + GetCollisionsForCobra(nc, fiberPositions, b)

			if current <= collisions-2 {
				bestTarget1, bestTarget2 = t1, t2
				collisions = current
			}
			if collisions == 0 {
				break
			}
		}
	}

	assigned[c] = bestTarget1
	assigned[nc] = bestTarget2
	fiberPositions[c] = targetPositions[bestTarget1]
	fiberPositions[nc] = targetPositions[bestTarget2]
	freeTargets[bestTarget1] = false
	freeTargets[bestTarget2] = false
}

// freeReachable returns cobra i's reachable targets (in distance order)
// that are currently free.
func freeReachable(m reachability.Matrix, i int, freeTargets []bool) []int {
	row := m.TargetIdx[i]
	out := make([]int, 0, len(row))
	for _, t := range row {
		if freeTargets[t] {
			out = append(out, t)
		}
	}
	return out
}
