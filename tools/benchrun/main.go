// Command benchrun measures internal/cobraops.AssignTargets across a
// range of synthetic bench sizes, following
// orange-dot-mapf-het/tools/run_benchmarks's CSV/JSON result-row and
// runtime-metadata pattern. A pure measurement tool: it calls the core
// once per run and reports timing, not a scheduler across calls
// (spec.md Non-goals still hold).
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cobraops/cobraops/internal/cobraops"
	"github.com/cobraops/cobraops/internal/synth"
)

// Result holds the measurements for a single synthetic bench run.
type Result struct {
	Timestamp         string  `json:"timestamp"`
	GoVersion         string  `json:"go_version"`
	OS                string  `json:"os"`
	Arch              string  `json:"arch"`
	GOMAXPROCS        int     `json:"gomaxprocs"`
	Rings             int     `json:"rings"`
	NumCobras         int     `json:"num_cobras"`
	NumTargets        int     `json:"num_targets"`
	RuntimeMs         float64 `json:"runtime_ms"`
	AssignedCount     int     `json:"assigned_count"`
	ResidualCollision int     `json:"residual_collision_pairs"`
}

func main() {
	ringsList := flag.String("rings", "1,2,3,4", "comma-separated hex-grid ring counts to benchmark")
	density := flag.Float64("density", 2.0, "average number of targets per patrol area")
	seed := flag.Int64("seed", 42, "random seed for deterministic bench/target generation")
	repeats := flag.Int("repeats", 3, "number of timed runs per bench size")
	outputCSV := flag.String("csv", "", "optional CSV output path")
	outputJSON := flag.String("json", "", "optional JSON output path")
	flag.Parse()

	rings, err := parseIntList(*ringsList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchrun: %v\n", err)
		os.Exit(1)
	}

	var results []Result
	for _, ring := range rings {
		for i := 0; i < *repeats; i++ {
			results = append(results, runOnce(ring, *density, *seed+int64(i)))
		}
	}

	printSummary(results)

	if *outputCSV != "" {
		if err := writeCSV(results, *outputCSV); err != nil {
			fmt.Fprintf(os.Stderr, "benchrun: writing csv: %v\n", err)
			os.Exit(1)
		}
	}
	if *outputJSON != "" {
		if err := writeJSON(results, *outputJSON); err != nil {
			fmt.Fprintf(os.Stderr, "benchrun: writing json: %v\n", err)
			os.Exit(1)
		}
	}
}

func runOnce(rings int, density float64, seed int64) Result {
	b := synth.HexBench(synth.HexBenchParams{
		Rings: rings, Pitch: 8.0, L1: 2.375, L2: 2.375,
		RMin: 1.0, RMax: 4.7, MinDist: 2.0, NeighborRadius: 9.0,
	})
	rng := rand.New(rand.NewSource(seed))
	targets := synth.Targets(density, b, rng)

	start := time.Now()
	assigned, fiberPositions, err := cobraops.AssignTargets(targets, b)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchrun: assign failed for rings=%d: %v\n", rings, err)
		os.Exit(1)
	}

	assignedCount := 0
	for _, t := range assigned {
		if t != cobraops.NoTarget {
			assignedCount++
		}
	}

	residual := cobraops.GetProblematicCobras(fiberPositions, b)

	return Result{
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		GoVersion:         runtime.Version(),
		OS:                runtime.GOOS,
		Arch:              runtime.GOARCH,
		GOMAXPROCS:        runtime.GOMAXPROCS(0),
		Rings:             rings,
		NumCobras:         b.N(),
		NumTargets:        len(targets),
		RuntimeMs:         float64(elapsed.Microseconds()) / 1000.0,
		AssignedCount:     assignedCount,
		ResidualCollision: len(residual) / 2,
	}
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid ring count %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func printSummary(results []Result) {
	fmt.Println("\n=== BENCHRUN SUMMARY ===")
	fmt.Printf("%-6s %10s %10s %12s %10s %10s\n",
		"Rings", "Cobras", "Targets", "Time(ms)", "Assigned", "Residual")
	fmt.Println(strings.Repeat("-", 64))
	for _, r := range results {
		fmt.Printf("%-6d %10d %10d %12.3f %10d %10d\n",
			r.Rings, r.NumCobras, r.NumTargets, r.RuntimeMs, r.AssignedCount, r.ResidualCollision)
	}
}

func writeCSV(results []Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{
		"timestamp", "go_version", "os", "arch", "gomaxprocs",
		"rings", "num_cobras", "num_targets", "runtime_ms",
		"assigned_count", "residual_collision_pairs",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Timestamp, r.GoVersion, r.OS, r.Arch, strconv.Itoa(r.GOMAXPROCS),
			strconv.Itoa(r.Rings), strconv.Itoa(r.NumCobras), strconv.Itoa(r.NumTargets),
			fmt.Sprintf("%.3f", r.RuntimeMs),
			strconv.Itoa(r.AssignedCount), strconv.Itoa(r.ResidualCollision),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(results []Result, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
