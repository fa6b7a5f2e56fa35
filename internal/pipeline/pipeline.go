package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nikhilbhutani/semchunk/pkg/chunker"
	"github.com/nikhilbhutani/semchunk/pkg/tokenizer"
)

// Document is one unit of plain text to chunk. Hint, when non-empty,
// overrides content-type classification.
type Document struct {
	ID      uuid.UUID
	Name    string
	Content string
	Hint    chunker.ContentType
}

// Record is one chunk enriched for downstream embedding and indexing.
type Record struct {
	ID         uuid.UUID            `json:"id"`
	DocumentID uuid.UUID            `json:"document_id"`
	Index      int                  `json:"index"`
	Text       string               `json:"text"`
	Source     chunker.BoundsSource `json:"source"`
	Section    string               `json:"section,omitempty"`
	Subsection string               `json:"subsection,omitempty"`
	TokenCount int                  `json:"token_count"`
}

// Result holds the chunking output for one document.
type Result struct {
	DocumentID  uuid.UUID           `json:"document_id"`
	Name        string              `json:"name"`
	ContentType chunker.ContentType `json:"content_type"`
	Chunks      []Record            `json:"chunks"`
}

// Processor runs the chunking engine over documents. Documents are
// independent, so ProcessAll fans out across a bounded worker group; the
// engine itself holds no mutable state between calls.
type Processor struct {
	engine      *chunker.Engine
	sizes       map[chunker.ContentType]chunker.Config
	concurrency int
	logger      *slog.Logger
}

type Option func(*Processor)

func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Processor. sizes may be nil to use the engine's built-in
// size table.
func New(engine *chunker.Engine, sizes map[chunker.ContentType]chunker.Config, opts ...Option) *Processor {
	p := &Processor{
		engine:      engine,
		sizes:       sizes,
		concurrency: 4,
		logger:      slog.Default(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Processor) configFor(ct chunker.ContentType) chunker.Config {
	if cfg, ok := p.sizes[ct]; ok {
		return cfg
	}
	return chunker.ConfigFor(ct)
}

// Process chunks one document along the semantic path.
func (p *Processor) Process(ctx context.Context, doc Document) Result {
	ct := doc.Hint
	if ct == "" {
		ct = chunker.ClassifyContentType(doc.Content)
	}
	cfg := p.configFor(ct)

	chunks := p.engine.Chunk(ctx, doc.Content, cfg)
	p.logger.Debug("processed document", "document", doc.Name, "content_type", ct, "chunks", len(chunks))
	return p.toResult(doc, ct, chunks)
}

// ProcessStructured chunks one document along the structure-preserving
// path, using the document's content type only to pick the size bound.
func (p *Processor) ProcessStructured(doc Document, markers chunker.StructureMarkers) Result {
	ct := doc.Hint
	if ct == "" {
		ct = chunker.ClassifyContentType(doc.Content)
	}
	cfg := p.configFor(ct)

	chunks := chunker.ChunkPreservingStructure(doc.Content, markers, cfg.MaxChunkSize)
	return p.toResult(doc, ct, chunks)
}

// ProcessAll chunks documents in parallel under a bounded worker group.
// Results keep input order. Chunking itself never fails, so the only error
// source is context cancellation.
func (p *Processor) ProcessAll(ctx context.Context, docs []Document) ([]Result, error) {
	results := make([]Result, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.Process(gctx, doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Processor) toResult(doc Document, ct chunker.ContentType, chunks []chunker.Chunk) Result {
	records := make([]Record, len(chunks))
	for i, ch := range chunks {
		records[i] = Record{
			ID:         uuid.New(),
			DocumentID: doc.ID,
			Index:      i,
			Text:       ch.Text,
			Source:     ch.Source,
			Section:    ch.Section,
			Subsection: ch.Subsection,
			TokenCount: tokenizer.CountTokens(ch.Text),
		}
	}
	return Result{
		DocumentID:  doc.ID,
		Name:        doc.Name,
		ContentType: ct,
		Chunks:      records,
	}
}
