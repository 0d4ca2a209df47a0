// Package synth generates synthetic benches and target fields for
// development, testing, and benchmarking. It is explicitly not the
// calibration pipeline spec.md §1 excludes from the core: nothing here
// is reachable from internal/cobraops.
package synth

import (
	"math"
	"math/rand"

	"github.com/cobraops/cobraops/internal/bench"
	"github.com/cobraops/cobraops/internal/geom"
)

// HexBenchParams configures a synthetic hex-grid bench.
type HexBenchParams struct {
	Rings          int
	Pitch          float64
	L1, L2         float64
	RMin, RMax     float64
	MinDist        float64
	NeighborRadius float64
}

// HexBench lays cobra centers out on a hexagonal lattice using axial
// coordinates within the given ring count, and derives neighbor pairs
// from a simple proximity radius. The real PFS module layout determines
// adjacency from physical module geometry; a distance threshold is an
// adequate stand-in for synthetic benches.
func HexBench(p HexBenchParams) *bench.Bench {
	var centers []geom.Point
	for q := -p.Rings; q <= p.Rings; q++ {
		r1 := max(-p.Rings, -q-p.Rings)
		r2 := min(p.Rings, -q+p.Rings)
		for r := r1; r <= r2; r++ {
			x := p.Pitch * (float64(q) + float64(r)/2)
			y := p.Pitch * float64(r) * math.Sqrt(3) / 2
			centers = append(centers, geom.Point{X: x, Y: y})
		}
	}

	n := len(centers)
	b := &bench.Bench{
		Center:  centers,
		L1:      make([]float64, n),
		L2:      make([]float64, n),
		RMin:    make([]float64, n),
		RMax:    make([]float64, n),
		Home0:   make([]geom.Point, n),
		MinDist: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		b.L1[i] = p.L1
		b.L2[i] = p.L2
		b.RMin[i] = p.RMin
		b.RMax[i] = p.RMax
		b.MinDist[i] = p.MinDist
		b.Home0[i] = geom.FromPolar(p.RMin, 0).Add(centers[i])
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if geom.Dist(centers[i], centers[j]) <= p.NeighborRadius {
				b.NN.Row = append(b.NN.Row, i, j)
				b.NN.Col = append(b.NN.Col, j, i)
			}
		}
	}

	return b
}

// Targets samples a uniform target field over the bench field of view,
// following targetUtils.generateTargets exactly: benchRadius is the
// farthest any cobra's outer patrol edge sits from the bench centroid,
// and the target count scales with the square of
// benchRadius/medianPatrolRadius.
func Targets(density float64, b *bench.Bench, rng *rand.Rand) []geom.Point {
	n := b.N()
	if n == 0 {
		return nil
	}

	var sumX, sumY float64
	for _, c := range b.Center {
		sumX += c.X
		sumY += c.Y
	}
	benchCenter := geom.Point{X: sumX / float64(n), Y: sumY / float64(n)}

	benchRadius := 0.0
	for i, c := range b.Center {
		d := geom.Dist(c, benchCenter) + b.RMax[i]
		if d > benchRadius {
			benchRadius = d
		}
	}

	medianPatrolRadius := median(b.RMax)
	nTargets := int(math.Ceil(density * math.Pow(benchRadius/medianPatrolRadius, 2)))

	targets := make([]geom.Point, nTargets)
	for i := 0; i < nTargets; i++ {
		ang := 2 * math.Pi * rng.Float64()
		radius := benchRadius * math.Sqrt(rng.Float64())
		targets[i] = geom.FromPolar(radius, ang).Add(benchCenter)
	}

	return targets
}

func median(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
