package chunker

import (
	"strings"
	"unicode/utf8"
)

// StructureMarkers lists literal substrings that identify section and
// subsection heading lines. A nil or empty list simply means no markers of
// that kind; it is never an error.
type StructureMarkers struct {
	Section    []string
	Subsection []string
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// ChunkPreservingStructure segments text along heading markers instead of
// semantic similarity. A section heading flushes the accumulated span and
// resets the subsection label; a subsection heading flushes and updates only
// the subsection. Body lines accumulate with a trailing newline, and a span
// that outgrows maxSize is flushed mid-section. Labels are the trimmed
// heading lines and are empty before the first heading. No overlap is
// applied in this mode.
func ChunkPreservingStructure(text string, markers StructureMarkers, maxSize int) []Chunk {
	if maxSize <= 0 {
		maxSize = ConfigFor(ContentGeneral).MaxChunkSize
	}

	var (
		chunks              []Chunk
		current             strings.Builder
		section, subsection string
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, Chunk{
				Text:       s,
				Source:     SourceStructural,
				Section:    section,
				Subsection: subsection,
			})
		}
		current.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		// Subsection markers first: with markdown-style nesting "## "
		// contains "# ", and a subsection line must not start a new section.
		case containsAny(line, markers.Subsection):
			flush()
			subsection = trimmed
		case containsAny(line, markers.Section):
			flush()
			section = trimmed
			subsection = ""
		default:
			current.WriteString(line)
			current.WriteByte('\n')
			if utf8.RuneCountInString(current.String()) > maxSize {
				flush()
			}
		}
	}
	flush()
	return chunks
}
