package tokenizer

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const defaultEncoding = "cl100k_base"

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// CountTokens returns the token count of text under the cl100k_base
// encoding. Loading the encoding can fail (tiktoken fetches its data on
// first use), in which case a words-based estimate is returned instead.
func CountTokens(text string) int {
	encodingOnce.Do(func() {
		encoding, _ = tiktoken.GetEncoding(defaultEncoding)
	})
	if encoding == nil {
		return estimateTokens(text)
	}
	return len(encoding.Encode(text, nil, nil))
}

// CountTokensForModel counts tokens with the named model's own encoding,
// falling back to CountTokens for unknown models.
func CountTokensForModel(text, model string) int {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return CountTokens(text)
	}
	return len(enc.Encode(text, nil, nil))
}

// estimateTokens approximates ~4 characters per token for English text.
func estimateTokens(text string) int {
	words := strings.Fields(text)
	return max(len(words)*4/3, 1)
}
