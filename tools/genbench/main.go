// Command genbench synthesizes a bench geometry and a target field for
// development and benchmarking, following
// orange-dot-mapf-het/tools/gen_instances's flag-driven fixture-writer
// pattern. This is a developer/test tool, not the calibration pipeline
// spec.md §1 excludes from the core's scope.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/cobraops/cobraops/internal/fixture"
	"github.com/cobraops/cobraops/internal/synth"
)

func main() {
	seed := flag.Int64("seed", 42, "random seed for deterministic generation")
	rings := flag.Int("rings", 3, "number of hex-grid rings of cobras around the center")
	pitch := flag.Float64("pitch", 8.0, "center-to-center spacing between adjacent cobras")
	l1 := flag.Float64("l1", 2.375, "shoulder link length")
	l2 := flag.Float64("l2", 2.375, "elbow link length")
	rMin := flag.Float64("rmin", 1.0, "inner patrol radius")
	rMax := flag.Float64("rmax", 4.7, "outer patrol radius")
	minDist := flag.Float64("mindist", 2.0, "collision half-width per cobra")
	neighborRadius := flag.Float64("neighbor-radius", 9.0, "max center distance for a neighbor pair")
	density := flag.Float64("density", 2.0, "average number of targets per patrol area")
	output := flag.String("output", "bench.yaml", "output fixture path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	b := synth.HexBench(synth.HexBenchParams{
		Rings:          *rings,
		Pitch:          *pitch,
		L1:             *l1,
		L2:             *l2,
		RMin:           *rMin,
		RMax:           *rMax,
		MinDist:        *minDist,
		NeighborRadius: *neighborRadius,
	})

	rng := rand.New(rand.NewSource(*seed))
	targets := synth.Targets(*density, b, rng)

	f := &fixture.Fixture{
		Bench:   fixture.FromBench(b),
		Targets: fixture.FromPoints(targets),
	}

	if err := fixture.Save(*output, f); err != nil {
		logger.Error("failed to write fixture", "error", err)
		os.Exit(1)
	}

	logger.Info("generated bench fixture",
		"cobras", b.N(),
		"targets", len(targets),
		"neighbor_pairs", len(b.NN.Row)/2,
		"output", *output,
	)
	fmt.Fprintf(os.Stdout, "wrote %d cobras and %d targets to %s\n", b.N(), len(targets), *output)
}
