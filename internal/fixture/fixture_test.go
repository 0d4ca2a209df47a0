package fixture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobraops/cobraops/internal/bench"
	"github.com/cobraops/cobraops/internal/geom"
)

func sampleBench() *bench.Bench {
	return &bench.Bench{
		Center:  []geom.Point{{X: 0, Y: 0}, {X: 2.5, Y: 0}},
		L1:      []float64{1, 1},
		L2:      []float64{1, 1},
		RMin:    []float64{0.1, 0.1},
		RMax:    []float64{2, 2},
		Home0:   []geom.Point{{X: 0, Y: 0}, {X: 2.5, Y: 0}},
		MinDist: []float64{0.5, 0.5},
		NN: bench.NeighborPairs{
			Row: []int{0, 1},
			Col: []int{1, 0},
		},
	}
}

func TestFromBench_ToBench_RoundTrips(t *testing.T) {
	original := sampleBench()

	yamlForm := FromBench(original)
	require.Len(t, yamlForm.NN, 1) // collapsed to one unordered pair
	assert.Equal(t, NNPair{A: 0, B: 1}, yamlForm.NN[0])

	restored := yamlForm.ToBench()
	assert.Equal(t, original.Center, restored.Center)
	assert.Equal(t, original.L1, restored.L1)
	assert.Equal(t, original.RMin, restored.RMin)
	assert.ElementsMatch(t, original.NN.Row, restored.NN.Row)
	require.NoError(t, restored.Validate())
}

func TestSaveLoad_RoundTrips(t *testing.T) {
	original := sampleBench()
	f := &Fixture{
		Bench:   FromBench(original),
		Targets: []Point{{X: 1.0, Y: 0.0}, {X: -1.0, Y: 0.0}},
	}

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, Save(path, f))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, f.Bench.Center, loaded.Bench.Center)
	assert.Equal(t, f.Targets, loaded.Targets)

	restoredBench := loaded.Bench.ToBench()
	require.NoError(t, restoredBench.Validate())
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
