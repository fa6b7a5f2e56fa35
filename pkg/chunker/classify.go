package chunker

import "strings"

// ContentType is a coarse classification of a text span used to pick size
// bounds.
type ContentType string

const (
	ContentTechnical  ContentType = "technical"
	ContentNarrative  ContentType = "narrative"
	ContentStructured ContentType = "structured"
	ContentGeneral    ContentType = "general"
)

// Indicator keywords per content type, matched as case-insensitive
// substrings.
var (
	technicalKeywords = []string{
		"config", "parameter", "api", "error", "log", "system",
		"component", "function", "install", "server", "database",
		"request", "version",
	}
	narrativeKeywords = []string{
		"story", "chapter", "character", "journey", "felt", "remember",
		"once upon", "life", "experience", "people", "morning", "evening",
	}
	structuredKeywords = []string{
		"table", "column", "row", "field", "item", "record", "entry",
		"cell", "schema", "bullet",
	}
)

func countKeywords(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		n += strings.Count(lower, kw)
	}
	return n
}

// ClassifyContentType labels a text span by keyword frequency. The label
// with the strictly highest keyword count wins; an empty text, an all-zero
// count, or a tie at the top yields ContentGeneral. Pure and deterministic.
func ClassifyContentType(text string) ContentType {
	if strings.TrimSpace(text) == "" {
		return ContentGeneral
	}
	lower := strings.ToLower(text)

	counts := []struct {
		label ContentType
		n     int
	}{
		{ContentTechnical, countKeywords(lower, technicalKeywords)},
		{ContentNarrative, countKeywords(lower, narrativeKeywords)},
		{ContentStructured, countKeywords(lower, structuredKeywords)},
	}

	best := ContentGeneral
	bestN := 0
	tied := false
	for _, c := range counts {
		switch {
		case c.n > bestN:
			best, bestN, tied = c.label, c.n, false
		case c.n == bestN && c.n > 0:
			tied = true
		}
	}
	if bestN == 0 || tied {
		return ContentGeneral
	}
	return best
}
