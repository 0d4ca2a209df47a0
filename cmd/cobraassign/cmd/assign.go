package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cobraops/cobraops/internal/cobraops"
	"github.com/cobraops/cobraops/internal/fixture"
)

var (
	assignBenchPath   string
	assignTargetsPath string
	assignFormat      string
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign targets to cobras and resolve collisions for a fixture",
	Long: `Loads a bench geometry and a target-position fixture, runs the
distance-greedy assignment and collision repair, and prints the result.`,
	RunE: runAssign,
}

func init() {
	assignCmd.Flags().StringVar(&assignBenchPath, "bench", "", "path to a bench geometry fixture (required)")
	assignCmd.Flags().StringVar(&assignTargetsPath, "targets", "", "path to a target-position fixture (defaults to --bench file's targets section)")
	assignCmd.Flags().StringVar(&assignFormat, "format", "text", "output format: text or json")
	_ = assignCmd.MarkFlagRequired("bench")

	rootCmd.AddCommand(assignCmd)
}

type assignResult struct {
	AssignedTargets    []int           `json:"assignedTargets"`
	FiberPositions     []fixture.Point `json:"fiberPositions"`
	ResidualCollisions int             `json:"residualCollisions"`
}

func runAssign(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	_ = cfg

	benchFixture, err := fixture.Load(assignBenchPath)
	if err != nil {
		return fmt.Errorf("cobraassign: loading bench fixture: %w", err)
	}

	targets := fixture.ToPoints(benchFixture.Targets)
	if assignTargetsPath != "" {
		targetsFixture, err := fixture.Load(assignTargetsPath)
		if err != nil {
			return fmt.Errorf("cobraassign: loading targets fixture: %w", err)
		}
		targets = fixture.ToPoints(targetsFixture.Targets)
	}

	b := benchFixture.Bench.ToBench()

	slog.Debug("running assignment", "cobras", b.N(), "targets", len(targets))

	assignedTargets, fiberPositions, err := cobraops.AssignTargets(targets, b)
	if err != nil {
		return fmt.Errorf("cobraassign: assignment failed: %w", err)
	}

	residual := cobraops.GetProblematicCobras(fiberPositions, b)

	result := assignResult{
		AssignedTargets:    assignedTargets,
		FiberPositions:     fixture.FromPoints(fiberPositions),
		ResidualCollisions: len(residual) / 2,
	}

	switch assignFormat {
	case "json":
		return printAssignJSON(cmd, result)
	case "text":
		printAssignText(cmd, result)
		return nil
	default:
		return fmt.Errorf("cobraassign: unknown format %q (want json or text)", assignFormat)
	}
}

func printAssignJSON(cmd *cobra.Command, result assignResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func printAssignText(cmd *cobra.Command, result assignResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-12s %-16s\n", "cobra", "target", "fiber position")
	for i, target := range result.AssignedTargets {
		pos := result.FiberPositions[i]
		if target == cobraops.NoTarget {
			fmt.Fprintf(out, "%-8d %-12s (%.4f, %.4f)\n", i, "-", pos.X, pos.Y)
			continue
		}
		fmt.Fprintf(out, "%-8d %-12d (%.4f, %.4f)\n", i, target, pos.X, pos.Y)
	}
	fmt.Fprintf(out, "\nresidual collisions: %d\n", result.ResidualCollisions)
}
