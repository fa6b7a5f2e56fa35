package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/nikhilbhutani/semchunk/internal/config"
	"github.com/nikhilbhutani/semchunk/internal/embedding"
	"github.com/nikhilbhutani/semchunk/internal/pipeline"
	"github.com/nikhilbhutani/semchunk/pkg/chunker"
)

func main() {
	var (
		file        = flag.String("file", "", "input file (defaults to stdin)")
		mode        = flag.String("mode", "semantic", "chunking mode: semantic or structure")
		hint        = flag.String("type", "", "content type hint: technical, narrative, structured, general")
		sections    = flag.String("sections", "", "comma-separated section markers for structure mode")
		subsections = flag.String("subsections", "", "comma-separated subsection markers for structure mode")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	text, err := readInput(*file)
	if err != nil {
		slog.Error("failed to read input", "error", err)
		os.Exit(1)
	}

	// Embedding provider is optional — without one the engine still chunks
	// deterministically via the size-bounded fallback.
	var embedFn chunker.EmbedFunc
	switch cfg.Embedding.Provider {
	case "openai":
		svc := embedding.NewService(embedding.NewOpenAIProvider(cfg.Embedding.OpenAIKey, cfg.Embedding.Model), cfg.Embedding.Model)
		embedFn = svc.EmbedFunc()
	case "ollama":
		svc := embedding.NewService(embedding.NewOllamaProvider(cfg.Embedding.OllamaURL, cfg.Embedding.Model), cfg.Embedding.Model)
		embedFn = svc.EmbedFunc()
	default:
		slog.Warn("no embedding provider configured, semantic clustering disabled")
	}

	engine := chunker.New(embedFn,
		chunker.WithClusterParams(cfg.Chunking.Epsilon, cfg.Chunking.MinClusterSize),
		chunker.WithEmbedTimeout(cfg.Embedding.Timeout),
		chunker.WithLogger(logger),
	)

	sizes, err := cfg.SizeTable()
	if err != nil {
		slog.Error("failed to load size table", "error", err)
		os.Exit(1)
	}

	proc := pipeline.New(engine, sizes, pipeline.WithLogger(logger))

	doc := pipeline.Document{
		ID:      uuid.New(),
		Name:    *file,
		Content: text,
		Hint:    chunker.ContentType(*hint),
	}

	var result pipeline.Result
	if *mode == "structure" {
		markers := chunker.StructureMarkers{
			Section:    splitList(*sections),
			Subsection: splitList(*subsections),
		}
		result = proc.ProcessStructured(doc, markers)
	} else {
		result = proc.Process(context.Background(), doc)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("failed to encode result", "error", err)
		os.Exit(1)
	}

	slog.Info("chunking complete",
		"document", result.Name,
		"content_type", result.ContentType,
		"chunks", len(result.Chunks))
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
