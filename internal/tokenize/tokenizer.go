package tokenize

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"

	"github.com/corvid-labs/corpusmood/internal/models"
)

// wordPattern matches a run of letters with an optional internal
// apostrophe, so "don't" stays one token but trailing quotes are cut.
var wordPattern = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

type Tokenizer struct {
	stripMarkdown bool
	dropStopwords bool
	langCode      string
}

type Option func(*Tokenizer)

// WithMarkdownCleanup renders markdown/HTML noise and URLs out of the text
// before splitting. Used for the news corpus.
func WithMarkdownCleanup() Option {
	return func(t *Tokenizer) {
		t.stripMarkdown = true
	}
}

// WithStopwordRemoval drops stopwords for the given ISO language code
// before splitting, so function words never reach the lexicon join.
func WithStopwordRemoval(langCode string) Option {
	return func(t *Tokenizer) {
		t.dropStopwords = true
		t.langCode = langCode
	}
}

func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{}
	for _, applyOpt := range opts {
		applyOpt(t)
	}
	return t
}

// Tokenize splits every record into lower-cased word tokens, each carrying
// the originating record's metadata. Empty input yields an empty slice.
func (t *Tokenizer) Tokenize(records []models.TextRecord) []models.Token {
	var tokens []models.Token
	for _, record := range records {
		tokens = append(tokens, t.tokenizeRecord(record)...)
	}
	return tokens
}

func (t *Tokenizer) tokenizeRecord(record models.TextRecord) []models.Token {
	text := record.Text
	if t.stripMarkdown {
		text = ConvertMarkdownToText(text)
	}
	if t.dropStopwords {
		text = stopwords.CleanString(text, t.langCode, false)
	}
	text = strings.ToLower(text)

	words := wordPattern.FindAllString(text, -1)
	if len(words) == 0 {
		return nil
	}

	tokens := make([]models.Token, 0, len(words))
	for i, word := range words {
		tokens = append(tokens, models.Token{
			DocumentID: record.DocumentID,
			LineNumber: record.LineNumber,
			Category:   record.Category,
			Timestamp:  record.Timestamp,
			Word:       word,
			Position:   i,
		})
	}
	return tokens
}
