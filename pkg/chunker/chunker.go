package chunker

import (
	"strings"
)

// BoundsSource records which strategy produced a chunk's boundaries.
type BoundsSource string

const (
	SourceCluster    BoundsSource = "cluster"
	SourceFallback   BoundsSource = "fallback"
	SourceStructural BoundsSource = "structural"
)

// Config bounds chunk sizes for a single chunking call. All values are rune
// counts. Configs travel as explicit arguments; the engine never stores one,
// so concurrent calls with different bounds cannot corrupt each other.
type Config struct {
	MinChunkSize int `json:"min_chunk_size" yaml:"min_chunk_size"`
	MaxChunkSize int `json:"max_chunk_size" yaml:"max_chunk_size"`
	OverlapSize  int `json:"overlap_size" yaml:"overlap_size"`
}

func (c Config) withDefaults() Config {
	if c.MaxChunkSize <= 0 {
		return ConfigFor(ContentGeneral)
	}
	if c.OverlapSize < 0 {
		c.OverlapSize = 0
	}
	return c
}

// Chunk is one bounded piece of output text. Section and Subsection are set
// only by structure-preserving segmentation.
type Chunk struct {
	Text       string       `json:"text"`
	Source     BoundsSource `json:"source"`
	Section    string       `json:"section,omitempty"`
	Subsection string       `json:"subsection,omitempty"`
}

// boundaryLookback is how far SplitBounded scans backward from a proposed
// cut looking for sentence-terminal punctuation.
const boundaryLookback = 200

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitBounded cuts text into pieces of at most maxSize runes, each sharing
// overlap runes with the previous piece. A cut prefers to land just past the
// last sentence terminator within the lookback window; with no terminator in
// range it falls on the hard maxSize boundary, mid-word if need be. Pieces
// are trimmed and empty pieces dropped, so a trailing piece may be short.
func SplitBounded(text string, maxSize, overlap int) []string {
	if maxSize <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}

	runes := []rune(text)
	var out []string
	for start := 0; start < len(runes); {
		end := start + maxSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			for i := end - 1; i >= start && i >= end-boundaryLookback; i-- {
				if isTerminal(runes[i]) {
					end = i + 1
					break
				}
			}
		}

		if piece := strings.TrimSpace(string(runes[start:end])); piece != "" {
			out = append(out, piece)
		}
		if end >= len(runes) {
			break
		}

		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return out
}

// chunkFallback applies SplitBounded to the whole input. Every non-empty
// trimmed span is kept, including a trailing span shorter than
// cfg.MinChunkSize, so no content is lost.
func chunkFallback(text string, cfg Config) []Chunk {
	pieces := SplitBounded(text, cfg.MaxChunkSize, cfg.OverlapSize)
	if len(pieces) == 0 {
		return nil
	}
	chunks := make([]Chunk, len(pieces))
	for i, p := range pieces {
		chunks[i] = Chunk{Text: p, Source: SourceFallback}
	}
	return chunks
}
