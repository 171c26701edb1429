package tokenize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/corpusmood/internal/models"
)

func TestTokenizeLowercasesAndSplits(t *testing.T) {
	records := []models.TextRecord{
		{DocumentID: "doc-1", Text: "Wonderful Day, isn't it?"},
	}

	tokens := New().Tokenize(records)

	require.Len(t, tokens, 4)
	assert.Equal(t, "wonderful", tokens[0].Word)
	assert.Equal(t, "day", tokens[1].Word)
	assert.Equal(t, "isn't", tokens[2].Word)
	assert.Equal(t, "it", tokens[3].Word)
}

func TestTokenizeCarriesRecordMetadata(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	records := []models.TextRecord{
		{DocumentID: "doc-1", LineNumber: 42, Category: "Sports", Timestamp: ts, Text: "great match"},
	}

	tokens := New().Tokenize(records)

	require.Len(t, tokens, 2)
	for i, token := range tokens {
		assert.Equal(t, "doc-1", token.DocumentID)
		assert.Equal(t, 42, token.LineNumber)
		assert.Equal(t, "Sports", token.Category)
		assert.Equal(t, ts, token.Timestamp)
		assert.Equal(t, i, token.Position)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, New().Tokenize(nil))
	assert.Empty(t, New().Tokenize([]models.TextRecord{{DocumentID: "d", Text: "   "}}))
}

func TestTokenizeMarkdownCleanup(t *testing.T) {
	records := []models.TextRecord{
		{DocumentID: "doc-1", Text: "A [terrible](https://example.com/a) story at https://example.com/b today"},
	}

	tokens := New(WithMarkdownCleanup()).Tokenize(records)

	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		words = append(words, token.Word)
	}

	assert.Contains(t, words, "terrible")
	assert.NotContains(t, words, "https")
	assert.NotContains(t, words, "example")
}

func TestTokenizeStopwordRemoval(t *testing.T) {
	records := []models.TextRecord{
		{DocumentID: "doc-1", Text: "this is the most wonderful day"},
	}

	tokens := New(WithStopwordRemoval("en")).Tokenize(records)

	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		words = append(words, token.Word)
	}

	assert.Contains(t, words, "wonderful")
	assert.Contains(t, words, "day")
	assert.NotContains(t, words, "this")
	assert.NotContains(t, words, "the")
}

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("some **bold** text with [a link](https://example.com/x)")

	assert.NotContains(t, got, "**")
	assert.NotContains(t, got, "https://example.com/x")
	assert.Contains(t, got, "bold")
	assert.Contains(t, got, "a link")
}

func TestRemoveLinks(t *testing.T) {
	got := RemoveLinks("see [docs](https://example.com/docs) or www.example.com now")

	assert.Equal(t, "see docs or  now", got)
}
