// Package assign implements the distance-greedy target assignment of
// spec.md §4.D: for each cobra, assign the closest still-free target
// that does not strand another cobra with no alternative.
package assign

import (
	"sort"

	"github.com/cobraops/cobraops/internal/reachability"
)

// NoTarget is the sentinel for "no target assigned".
const NoTarget = reachability.NoTarget

// ByDistance assigns at most one target per cobra, iterating the
// reachability matrix column by column (k = 0, 1, ...), exactly per
// spec.md §4.D:
//
//   - within a column, a target claimed by exactly one free cobra goes
//     to that cobra;
//   - a target claimed by several free cobras goes to whichever of them
//     would otherwise run out of reachable targets (has exactly one
//     still-available target left), breaking ties by distance, and
//     falling back to plain nearest-distance when no cobra in the group
//     is down to its last option.
//
// Grounded directly on targetUtils.assignTargetsByDistance's column
// loop; numCobras must equal the number of rows in m.
func ByDistance(m reachability.Matrix, numCobras, numTargets int) []int {
	assigned := make([]int, numCobras)
	for i := range assigned {
		assigned[i] = NoTarget
	}

	freeCobras := make([]bool, numCobras)
	for i := range freeCobras {
		freeCobras[i] = true
	}
	freeTargets := make([]bool, numTargets)
	for t := range freeTargets {
		freeTargets[t] = true
	}

	k := m.MaxK()
	for col := 0; col < k; col++ {
		assignColumn(col, m, assigned, freeCobras, freeTargets)
	}

	return assigned
}

// assignColumn processes one column of the reachability matrix,
// resolving every target contested within this column before moving on,
// per spec.md §4.D step 3. Distinct targets are resolved in ascending
// target-index order, mirroring targetUtils.assignTargetsByDistance's
// np.unique(columnTargetIndices[freeCobras]) (unique returns its result
// sorted): resolving one target lowers availableFrom's count for
// cobras still contesting a later target in this same column, so the
// order in which targets are resolved is itself part of the algorithm,
// not an implementation detail.
func assignColumn(col int, m reachability.Matrix, assigned []int, freeCobras, freeTargets []bool) {
	// Group free cobras by their k-th choice in this column.
	claimants := make(map[int][]int) // target -> cobra indices, in ascending cobra-index order
	var order []int                  // distinct targets, to be sorted ascending by index below

	for i := range freeCobras {
		if !freeCobras[i] {
			continue
		}
		t, _, ok := m.At(i, col)
		if !ok || !freeTargets[t] {
			continue
		}
		if _, seen := claimants[t]; !seen {
			order = append(order, t)
		}
		claimants[t] = append(claimants[t], i)
	}

	sort.Ints(order)

	for _, t := range order {
		cobras := claimants[t]
		chosen := pickCobra(col, m, cobras, freeTargets)
		assigned[chosen] = t
		freeCobras[chosen] = false
		freeTargets[t] = false
	}
}

// pickCobra implements spec.md §4.D step 3's tie-breaking: a lone
// claimant wins outright; among several, whichever would be left with no
// alternative target takes priority (breaking further ties by distance);
// if none would be stranded, the closest cobra wins. All ties resolve by
// lowest cobra index (the order candidates are iterated in here, and the
// order distances are compared in, is already ascending by index).
func pickCobra(col int, m reachability.Matrix, cobras []int, freeTargets []bool) int {
	if len(cobras) == 1 {
		return cobras[0]
	}

	var stranded []int
	for _, i := range cobras {
		if availableFrom(m, i, col, freeTargets) == 1 {
			stranded = append(stranded, i)
		}
	}

	switch len(stranded) {
	case 0:
		return closest(col, m, cobras)
	case 1:
		return stranded[0]
	default:
		return closest(col, m, stranded)
	}
}

// availableFrom counts the still-free, non-sentinel targets in cobra i's
// remaining candidate list starting at column col.
func availableFrom(m reachability.Matrix, i, col int, freeTargets []bool) int {
	row := m.TargetIdx[i]
	count := 0
	for c := col; c < len(row); c++ {
		t := row[c]
		if freeTargets[t] {
			count++
		}
	}
	return count
}

// closest returns, among cobras, the one with the smallest distance to
// its k-th choice; ties resolve to the lowest cobra index because
// cobras is iterated in ascending index order and strict "<" is used.
func closest(col int, m reachability.Matrix, cobras []int) int {
	best := cobras[0]
	bestDist := m.TargetDist[best][col]
	for _, i := range cobras[1:] {
		d := m.TargetDist[i][col]
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
