package chunker

import (
	"math"
	"sort"
)

const (
	labelUndefined = -2
	labelNoise     = -1
)

// cosineDistance returns 1 minus the cosine similarity of a and b.
// Mismatched lengths and zero-norm vectors are treated as maximally distant.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 1
	}
	return 1 - dot/denom
}

// dbscan runs density-based clustering over the vectors and returns one
// label per vector: 0..n-1 for clusters, labelNoise for unclustered points.
// A point whose eps-neighborhood (itself included) holds at least minPts
// points seeds a cluster; clusters grow transitively through such core
// points; everything left over is noise.
func dbscan(vectors [][]float32, eps float64, minPts int) []int {
	labels := make([]int, len(vectors))
	for i := range labels {
		labels[i] = labelUndefined
	}

	cluster := 0
	for i := range vectors {
		if labels[i] != labelUndefined {
			continue
		}
		neighbors := regionQuery(vectors, i, eps)
		if len(neighbors) < minPts {
			labels[i] = labelNoise
			continue
		}

		labels[i] = cluster
		queue := append([]int(nil), neighbors...)
		for qi := 0; qi < len(queue); qi++ {
			j := queue[qi]
			if labels[j] == labelNoise {
				labels[j] = cluster
			}
			if labels[j] != labelUndefined {
				continue
			}
			labels[j] = cluster
			if jn := regionQuery(vectors, j, eps); len(jn) >= minPts {
				queue = append(queue, jn...)
			}
		}
		cluster++
	}
	return labels
}

func regionQuery(vectors [][]float32, i int, eps float64) []int {
	var out []int
	for j := range vectors {
		if cosineDistance(vectors[i], vectors[j]) <= eps {
			out = append(out, j)
		}
	}
	return out
}

// clusterGroups converts per-sentence labels into emission order. Each real
// cluster becomes one group and all noise points collapse into a single
// pseudo-group. Cluster labels carry no positional meaning, so ordering is
// reconstructed explicitly: members stay in original document order and
// groups are sorted by their lowest member index (first-seen order). formed
// reports how many real clusters exist; with zero the caller must fall back.
func clusterGroups(labels []int) (groups [][]int, formed int) {
	byLabel := make(map[int][]int)
	for i, l := range labels {
		byLabel[l] = append(byLabel[l], i)
	}
	for l, members := range byLabel {
		if l != labelNoise {
			formed++
		}
		groups = append(groups, members)
	}
	sort.Slice(groups, func(a, b int) bool {
		return groups[a][0] < groups[b][0]
	})
	return groups, formed
}
