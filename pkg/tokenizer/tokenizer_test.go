package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	// Exact counts depend on whether the tiktoken encoding loaded; both the
	// real count and the estimate are positive and grow with input.
	short := CountTokens("hello world")
	long := CountTokens("hello world this is a much longer sentence with many more words in it")

	assert.Greater(t, short, 0)
	assert.Greater(t, long, short)
}

func TestCountTokensForModelUnknownFallsBack(t *testing.T) {
	n := CountTokensForModel("hello world", "not-a-real-model")
	assert.Equal(t, CountTokens("hello world"), n)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 1, estimateTokens(""))
	assert.Equal(t, 4, estimateTokens("one two three"))
}
