// Package fixture defines the on-disk YAML format for bench geometry
// and target-position fixtures consumed by cmd/cobraassign and produced
// by tools/genbench. It is deliberately outside internal/bench: the
// core package never reads or writes files (spec.md §5), and this
// format is a developer/test convenience, not the calibration pipeline
// spec.md §1 excludes from scope.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cobraops/cobraops/internal/bench"
	"github.com/cobraops/cobraops/internal/geom"
)

// Point mirrors geom.Point with YAML tags; geom.Point carries no struct
// tags of its own since internal/geom has no file-format concerns.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) toGeom() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

func fromGeom(p geom.Point) Point { return Point{X: p.X, Y: p.Y} }

// Bench is the YAML-serializable form of bench.Bench.
type Bench struct {
	Center  []Point   `yaml:"center"`
	L1      []float64 `yaml:"l1"`
	L2      []float64 `yaml:"l2"`
	RMin    []float64 `yaml:"r_min"`
	RMax    []float64 `yaml:"r_max"`
	Home0   []Point   `yaml:"home0"`
	MinDist []float64 `yaml:"min_dist"`
	NN      []NNPair  `yaml:"nn"`
}

// NNPair is one unordered neighbor relation; ToBench expands it into
// both directions of bench.NeighborPairs.
type NNPair struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// Fixture bundles a bench and the target positions to assign against it,
// the unit cmd/cobraassign's assign subcommand reads and tools/genbench
// writes.
type Fixture struct {
	Bench   Bench   `yaml:"bench"`
	Targets []Point `yaml:"targets"`
}

// ToBench converts the YAML form into a bench.Bench.
func (b Bench) ToBench() *bench.Bench {
	out := &bench.Bench{
		Center:  make([]geom.Point, len(b.Center)),
		L1:      append([]float64(nil), b.L1...),
		L2:      append([]float64(nil), b.L2...),
		RMin:    append([]float64(nil), b.RMin...),
		RMax:    append([]float64(nil), b.RMax...),
		Home0:   make([]geom.Point, len(b.Home0)),
		MinDist: append([]float64(nil), b.MinDist...),
	}
	for i, p := range b.Center {
		out.Center[i] = p.toGeom()
	}
	for i, p := range b.Home0 {
		out.Home0[i] = p.toGeom()
	}

	out.NN.Row = make([]int, 0, len(b.NN)*2)
	out.NN.Col = make([]int, 0, len(b.NN)*2)
	for _, pair := range b.NN {
		out.NN.Row = append(out.NN.Row, pair.A, pair.B)
		out.NN.Col = append(out.NN.Col, pair.B, pair.A)
	}

	return out
}

// FromBench converts a bench.Bench into its YAML form. NN pairs are
// collapsed back to one entry per unordered pair.
func FromBench(b *bench.Bench) Bench {
	out := Bench{
		Center:  make([]Point, len(b.Center)),
		L1:      append([]float64(nil), b.L1...),
		L2:      append([]float64(nil), b.L2...),
		RMin:    append([]float64(nil), b.RMin...),
		RMax:    append([]float64(nil), b.RMax...),
		Home0:   make([]Point, len(b.Home0)),
		MinDist: append([]float64(nil), b.MinDist...),
	}
	for i, p := range b.Center {
		out.Center[i] = fromGeom(p)
	}
	for i, p := range b.Home0 {
		out.Home0[i] = fromGeom(p)
	}

	for k, r := range b.NN.Row {
		c := b.NN.Col[k]
		if r < c {
			out.NN = append(out.NN, NNPair{A: r, B: c})
		}
	}

	return out
}

// ToPoints converts a slice of fixture points into geom.Points.
func ToPoints(pts []Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = p.toGeom()
	}
	return out
}

// FromPoints converts a slice of geom.Points into fixture points.
func FromPoints(pts []geom.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = fromGeom(p)
	}
	return out
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}

	return &f, nil
}

// Save writes a fixture to path as YAML.
func Save(path string, f *Fixture) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("fixture: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("fixture: writing %s: %w", path, err)
	}
	return nil
}
