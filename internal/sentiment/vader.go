package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/corvid-labs/corpusmood/internal/models"
	"github.com/corvid-labs/corpusmood/internal/tokenize"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// AnalyzeWithVADER scores a whole text with VADER's compound score.
// Runs next to the lexicon pipeline as a sanity check on relative ordering,
// never as an input to the bucket tables.
func AnalyzeWithVADER(text string) (float64, string) {
	plainText := tokenize.ConvertMarkdownToText(text)

	sentiment := analyzer.PolarityScores(plainText)
	score := sentiment.Compound

	var label string
	if score >= 0.20 {
		label = "positive"
	} else if score <= -0.20 {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

// ScoreRecords produces one VaderResult per record, in input order.
func ScoreRecords(records []models.TextRecord) []models.VaderResult {
	results := make([]models.VaderResult, 0, len(records))
	for _, record := range records {
		score, label := AnalyzeWithVADER(record.Text)
		results = append(results, models.VaderResult{
			DocumentID:     record.DocumentID,
			Category:       record.Category,
			SentimentScore: score,
			SentimentLabel: label,
		})
	}
	return results
}
