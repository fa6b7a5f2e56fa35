package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Hello world. Second one! Third?? Fourth")
	assert.Equal(t, []string{"Hello world", "Second one", "Third", "Fourth"}, got)
}

func TestSplitSentencesTrimsAndDropsEmpty(t *testing.T) {
	got := SplitSentences("  One.   Two.  ... ")
	assert.Equal(t, []string{"One", "Two"}, got)
}

func TestSplitSentencesEmpty(t *testing.T) {
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences(" .!? "))
}

func TestSplitSentencesKnownLimitation(t *testing.T) {
	// Abbreviations are not special-cased: "e.g." splits. Documented
	// behavior, over-splitting is tolerated downstream.
	got := SplitSentences("Use tools e.g. hammers")
	assert.Equal(t, []string{"Use tools e", "g", "hammers"}, got)
}
