package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineDistance(t *testing.T) {
	assert.InDelta(t, 0, cosineDistance([]float32{1, 0}, []float32{1, 0}), 1e-6)
	assert.InDelta(t, 1, cosineDistance([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, 2, cosineDistance([]float32{1, 0}, []float32{-1, 0}), 1e-6)

	// Degenerate inputs are maximally distant, never NaN.
	assert.Equal(t, float64(1), cosineDistance([]float32{0, 0}, []float32{1, 0}))
	assert.Equal(t, float64(1), cosineDistance([]float32{1}, []float32{1, 0}))
	assert.Equal(t, float64(1), cosineDistance(nil, nil))
}

func TestDBSCANPairPlusNoise(t *testing.T) {
	vectors := [][]float32{
		{1, 0},
		{0.95, 0.31},
		{0, 1},
	}
	labels := dbscan(vectors, 0.35, 2)
	require.Len(t, labels, 3)
	assert.Equal(t, labels[0], labels[1])
	assert.NotEqual(t, labelNoise, labels[0])
	assert.Equal(t, labelNoise, labels[2])
}

func TestDBSCANAllNoise(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	labels := dbscan(vectors, 0.35, 2)
	for _, l := range labels {
		assert.Equal(t, labelNoise, l)
	}
}

func TestClusterGroupsFirstSeenOrder(t *testing.T) {
	// Sentences 0 and 2 form one cluster, 1 and 3 another. Emission order
	// follows the lowest member index, members stay in document order.
	vectors := [][]float32{
		{1, 0},
		{0, 1},
		{1, 0},
		{0, 1},
	}
	labels := dbscan(vectors, 0.1, 2)
	groups, formed := clusterGroups(labels)

	assert.Equal(t, 2, formed)
	require.Len(t, groups, 2)
	assert.Equal(t, []int{0, 2}, groups[0])
	assert.Equal(t, []int{1, 3}, groups[1])
}

func TestClusterGroupsNoiseBucket(t *testing.T) {
	labels := []int{0, labelNoise, 0, labelNoise}
	groups, formed := clusterGroups(labels)

	assert.Equal(t, 1, formed)
	require.Len(t, groups, 2)
	assert.Equal(t, []int{0, 2}, groups[0])
	assert.Equal(t, []int{1, 3}, groups[1])
}
