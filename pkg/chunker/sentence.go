package chunker

import "strings"

// SplitSentences splits text on runs of sentence-terminal punctuation
// (periods, exclamation and question marks) and returns the trimmed,
// non-empty sentences in document order. The terminators themselves are
// consumed as delimiters.
//
// Abbreviations and decimal numbers are not special-cased, so "e.g." or
// "3.14" may end a sentence early. Over-splitting only shifts cluster
// granularity downstream, so this stays simple on purpose.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		if isTerminal(r) {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
