package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCobraBench() *Bench {
	return &Bench{
		Center:  []Point{{0, 0}, {1.5, 0}},
		L1:      []float64{1, 1},
		L2:      []float64{1, 1},
		RMin:    []float64{0.1, 0.1},
		RMax:    []float64{2, 2},
		Home0:   []Point{{0, 0}, {1.5, 0}},
		MinDist: []float64{0.1, 0.1},
		NN: NeighborPairs{
			Row: []int{0, 1},
			Col: []int{1, 0},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	b := twoCobraBench()
	require.NoError(t, b.Validate())
}

func TestValidate_MismatchedArrays(t *testing.T) {
	b := twoCobraBench()
	b.L1 = []float64{1}
	assert.Error(t, b.Validate())
}

func TestValidate_BadAnnulus(t *testing.T) {
	b := twoCobraBench()
	b.RMin[0] = 3
	assert.Error(t, b.Validate())
}

func TestNeighborsOf(t *testing.T) {
	b := twoCobraBench()
	assert.Equal(t, []int{1}, b.NeighborsOf(0))
	assert.Equal(t, []int{0}, b.NeighborsOf(1))
}

func TestN(t *testing.T) {
	b := twoCobraBench()
	assert.Equal(t, 2, b.N())
}
