package models

// VaderResult is the record-level cross-check score produced alongside the
// lexicon pipeline, not part of the bucket tables.
type VaderResult struct {
	DocumentID     string  `json:"document_id"`
	Category       string  `json:"category,omitempty"`
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
}
