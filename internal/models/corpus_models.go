package models

import "time"

// TextRecord is one unit of raw corpus text. Immutable once ingested.
// LineNumber is set for literature corpora, Category and Timestamp for
// news corpora; unused fields stay at their zero value.
type TextRecord struct {
	DocumentID string    `json:"document_id"`
	LineNumber int       `json:"line_number,omitempty"`
	Category   string    `json:"category,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitempty"`
	Text       string    `json:"text"`
}

// Token is a single lower-cased word cut from a TextRecord, carrying the
// record's metadata so grouping never has to reach back to the source.
type Token struct {
	DocumentID string
	LineNumber int
	Category   string
	Timestamp  time.Time
	Word       string
	Position   int
}

// ScoredToken pairs a token with its lexicon value after the inner join.
type ScoredToken struct {
	Token
	Value float64
}
