package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikhilbhutani/semchunk/pkg/chunker"
)

type Config struct {
	Embedding EmbeddingConfig
	Chunking  ChunkingConfig
}

type EmbeddingConfig struct {
	Provider  string // "openai", "ollama", or "none"
	OpenAIKey string
	OllamaURL string
	Model     string
	Timeout   time.Duration
}

type ChunkingConfig struct {
	Epsilon        float64
	MinClusterSize int
	SizeTablePath  string // optional YAML override of the per-type size table
}

func Load() (*Config, error) {
	timeoutSec, err := getEnvInt("EMBED_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid EMBED_TIMEOUT_SECONDS: %w", err)
	}

	eps, err := getEnvFloat("CLUSTER_EPSILON", 0.35)
	if err != nil {
		return nil, fmt.Errorf("invalid CLUSTER_EPSILON: %w", err)
	}

	minCluster, err := getEnvInt("CLUSTER_MIN_SIZE", 2)
	if err != nil {
		return nil, fmt.Errorf("invalid CLUSTER_MIN_SIZE: %w", err)
	}

	cfg := &Config{
		Embedding: EmbeddingConfig{
			Provider:  getEnv("EMBED_PROVIDER", "none"),
			OpenAIKey: getEnv("OPENAI_API_KEY", ""),
			OllamaURL: getEnv("OLLAMA_URL", "http://localhost:11434"),
			Model:     getEnv("EMBED_MODEL", ""),
			Timeout:   time.Duration(timeoutSec) * time.Second,
		},
		Chunking: ChunkingConfig{
			Epsilon:        eps,
			MinClusterSize: minCluster,
			SizeTablePath:  getEnv("SIZE_TABLE_PATH", ""),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var missing []string
	if c.Embedding.Provider == "openai" && c.Embedding.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return nil
}

// SizeTable returns the content-type size table: the engine defaults with
// any entries from the YAML override file applied on top. Override keys are
// content-type names; values carry min_chunk_size, max_chunk_size and
// overlap_size.
func (c *Config) SizeTable() (map[chunker.ContentType]chunker.Config, error) {
	table := map[chunker.ContentType]chunker.Config{
		chunker.ContentTechnical:  chunker.ConfigFor(chunker.ContentTechnical),
		chunker.ContentNarrative:  chunker.ConfigFor(chunker.ContentNarrative),
		chunker.ContentStructured: chunker.ConfigFor(chunker.ContentStructured),
		chunker.ContentGeneral:    chunker.ConfigFor(chunker.ContentGeneral),
	}

	if c.Chunking.SizeTablePath == "" {
		return table, nil
	}

	data, err := os.ReadFile(c.Chunking.SizeTablePath)
	if err != nil {
		return nil, fmt.Errorf("read size table: %w", err)
	}
	var overrides map[string]chunker.Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse size table: %w", err)
	}
	for name, override := range overrides {
		table[chunker.ContentType(name)] = override
	}

	return table, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}
