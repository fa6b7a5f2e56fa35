package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTechnical(t *testing.T) {
	text := "Installation Guide: configuration parameter api error log system component"
	assert.Equal(t, ContentTechnical, ClassifyContentType(text))
}

func TestClassifyNarrative(t *testing.T) {
	text := "The story of a character and his journey through life"
	assert.Equal(t, ContentNarrative, ClassifyContentType(text))
}

func TestClassifyStructured(t *testing.T) {
	text := "A table with a column and a row for each field"
	assert.Equal(t, ContentStructured, ClassifyContentType(text))
}

func TestClassifyEmptyIsGeneral(t *testing.T) {
	assert.Equal(t, ContentGeneral, ClassifyContentType(""))
	assert.Equal(t, ContentGeneral, ClassifyContentType("   \n "))
}

func TestClassifyNoKeywordsIsGeneral(t *testing.T) {
	assert.Equal(t, ContentGeneral, ClassifyContentType("the sun rises in the east"))
}

func TestClassifyTieIsGeneral(t *testing.T) {
	// Exactly one technical and one narrative hit.
	assert.Equal(t, ContentGeneral, ClassifyContentType("an error in the story"))
}

func TestClassifyIdempotent(t *testing.T) {
	text := "configuration of the api server"
	first := ClassifyContentType(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ClassifyContentType(text))
	}
}
