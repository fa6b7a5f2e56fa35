package chunker

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

// EmbedFunc maps sentences to embedding vectors, one per sentence in input
// order. It is the engine's only external collaborator and may fail or time
// out; the engine recovers by falling back to size-bounded chunking.
type EmbedFunc func(ctx context.Context, sentences []string) ([][]float32, error)

// Engine is the adaptive chunking controller. It carries only immutable
// wiring (embed function, clustering parameters, logger), never size bounds,
// so one Engine is safe for concurrent use across documents.
type Engine struct {
	embed          EmbedFunc
	eps            float64
	minClusterSize int
	embedTimeout   time.Duration
	logger         *slog.Logger
}

type Option func(*Engine)

// WithClusterParams overrides the density clustering parameters: the cosine
// distance radius and the minimum neighborhood size (point included) that
// seeds a cluster.
func WithClusterParams(eps float64, minClusterSize int) Option {
	return func(e *Engine) {
		if eps > 0 {
			e.eps = eps
		}
		if minClusterSize > 0 {
			e.minClusterSize = minClusterSize
		}
	}
}

// WithEmbedTimeout bounds the embedding call; on expiry the engine falls
// back to size-bounded chunking.
func WithEmbedTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.embedTimeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine. embed may be nil, in which case every Chunk call
// uses the deterministic fallback path.
func New(embed EmbedFunc, opts ...Option) *Engine {
	e := &Engine{
		embed:          embed,
		eps:            0.35,
		minClusterSize: 2,
		embedTimeout:   30 * time.Second,
		logger:         slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

var defaultConfigs = map[ContentType]Config{
	ContentTechnical:  {MinChunkSize: 300, MaxChunkSize: 1200, OverlapSize: 120},
	ContentNarrative:  {MinChunkSize: 400, MaxChunkSize: 2000, OverlapSize: 200},
	ContentStructured: {MinChunkSize: 200, MaxChunkSize: 1000, OverlapSize: 100},
	ContentGeneral:    {MinChunkSize: 300, MaxChunkSize: 1500, OverlapSize: 150},
}

// ConfigFor returns the size configuration for a content type. Unknown
// types get the general configuration.
func ConfigFor(ct ContentType) Config {
	if cfg, ok := defaultConfigs[ct]; ok {
		return cfg
	}
	return defaultConfigs[ContentGeneral]
}

// ClassifyAndConfigure classifies text and returns the label together with
// its size configuration from the fixed table. Callers may substitute their
// own Config on the subsequent Chunk call.
func ClassifyAndConfigure(text string) (ContentType, Config) {
	ct := ClassifyContentType(text)
	return ct, ConfigFor(ct)
}

// Chunk splits text into semantically coherent, size-bounded chunks. It
// never returns an error: a missing embed function, an embedding failure or
// timeout, and a clustering that forms no groups all degrade to the
// size-bounded fallback path. Empty or whitespace-only input yields nil.
func (e *Engine) Chunk(ctx context.Context, text string, cfg Config) []Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	cfg = cfg.withDefaults()

	sentences := SplitSentences(text)
	if len(sentences) < 2 || e.embed == nil {
		return chunkFallback(text, cfg)
	}

	ectx, cancel := context.WithTimeout(ctx, e.embedTimeout)
	defer cancel()
	vectors, err := e.embed(ectx, sentences)
	if err != nil || len(vectors) != len(sentences) {
		e.logger.Warn("embedding unavailable, falling back to size-bounded chunking",
			"error", err, "sentences", len(sentences), "vectors", len(vectors))
		return chunkFallback(text, cfg)
	}

	labels := dbscan(vectors, e.eps, e.minClusterSize)
	groups, formed := clusterGroups(labels)
	if formed == 0 {
		e.logger.Debug("no clusters formed, falling back to size-bounded chunking",
			"sentences", len(sentences))
		return chunkFallback(text, cfg)
	}
	e.logger.Debug("clustered sentences", "sentences", len(sentences), "clusters", formed)

	var chunks []Chunk
	for _, group := range groups {
		parts := make([]string, len(group))
		for i, idx := range group {
			parts[i] = sentences[idx]
		}
		span := strings.Join(parts, ". ")

		if utf8.RuneCountInString(span) > cfg.MaxChunkSize {
			for _, piece := range SplitBounded(span, cfg.MaxChunkSize, cfg.OverlapSize) {
				chunks = append(chunks, Chunk{Text: piece, Source: SourceCluster})
			}
			continue
		}
		chunks = append(chunks, Chunk{Text: span, Source: SourceCluster})
	}
	return chunks
}
