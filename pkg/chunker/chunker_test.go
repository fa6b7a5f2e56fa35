package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBoundedHardCuts(t *testing.T) {
	// 2500 runes of repeated prose with no punctuation: every cut lands on
	// the hard boundary, so overlap arithmetic is exact.
	text := strings.Repeat("abcdefghij", 250)

	pieces := SplitBounded(text, 1000, 100)
	require.Len(t, pieces, 3)

	assert.Equal(t, 1000, len(pieces[0]))
	assert.Equal(t, 1000, len(pieces[1]))
	assert.Equal(t, 700, len(pieces[2]))

	// Consecutive pieces share exactly the overlap.
	assert.Equal(t, pieces[0][900:], pieces[1][:100])
	assert.Equal(t, pieces[1][900:], pieces[2][:100])

	// Removing the overlaps reconstructs the source: no content loss.
	rebuilt := pieces[0] + pieces[1][100:] + pieces[2][100:]
	assert.Equal(t, text, rebuilt)
}

func TestSplitBoundedPrefersSentenceBoundary(t *testing.T) {
	// Period at index 900, inside the 200-rune lookback window of the
	// proposed cut at 1000.
	text := strings.Repeat("a", 900) + "." + strings.Repeat("b", 300)

	pieces := SplitBounded(text, 1000, 50)
	require.Len(t, pieces, 2)

	// The first cut snaps back to just past the period instead of the hard
	// 1000-rune boundary.
	assert.True(t, strings.HasSuffix(pieces[0], "."))
	assert.Equal(t, 901, len(pieces[0]))
}

func TestSplitBoundedSizeBound(t *testing.T) {
	text := strings.Repeat("Some short sentence. ", 400)
	for _, p := range SplitBounded(text, 300, 30) {
		assert.LessOrEqual(t, len([]rune(p)), 300+boundaryLookback)
		assert.NotEmpty(t, strings.TrimSpace(p))
	}
}

func TestSplitBoundedShortInput(t *testing.T) {
	pieces := SplitBounded("tiny", 1000, 100)
	require.Len(t, pieces, 1)
	assert.Equal(t, "tiny", pieces[0])
}

func TestSplitBoundedEmpty(t *testing.T) {
	assert.Empty(t, SplitBounded("", 1000, 100))
	assert.Empty(t, SplitBounded("   \n\t ", 1000, 100))
}

func TestSplitBoundedDegenerateOverlap(t *testing.T) {
	// Overlap >= chunk size must still advance and terminate.
	text := strings.Repeat("x", 50)
	pieces := SplitBounded(text, 10, 10)
	assert.NotEmpty(t, pieces)
	assert.Equal(t, text, strings.Join(pieces, ""))
}

func TestChunkFallbackKeepsShortTrailer(t *testing.T) {
	text := strings.Repeat("y", 1005)
	chunks := chunkFallback(text, Config{MinChunkSize: 300, MaxChunkSize: 1000, OverlapSize: 0})
	require.Len(t, chunks, 2)
	assert.Equal(t, SourceFallback, chunks[0].Source)
	// The trailer is shorter than MinChunkSize but still emitted.
	assert.Equal(t, 5, len(chunks[1].Text))
}
