package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/corvid-labs/corpusmood/internal/models"
)

// WriteBucketsCSV writes one aggregated table. Undefined percentages
// (empty buckets) render as the literal "NaN" so downstream tooling sees a
// documented marker instead of a blank cell.
func WriteBucketsCSV(path string, buckets []models.SentimentBucket) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Report] failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"bucket_key", "positive_count", "negative_count", "total_words", "net", "percentage", "mean_score", "std_dev"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("[Report] failed to write header: %w", err)
	}

	for _, bucket := range buckets {
		row := []string{
			bucket.Key,
			strconv.Itoa(bucket.PositiveCount),
			strconv.Itoa(bucket.NegativeCount),
			strconv.Itoa(bucket.TotalWords),
			strconv.Itoa(bucket.Net),
			formatFloat(bucket.Percentage),
			formatFloat(bucket.MeanScore),
			formatFloat(bucket.StdDev),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("[Report] failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("[Report] csv flush failed: %w", err)
	}

	slog.Info("[Report] Wrote bucket table",
		slog.String("path", path),
		slog.Int("rows", len(buckets)))
	return nil
}

// WriteVaderCSV writes the record-level VADER comparison table.
func WriteVaderCSV(path string, results []models.VaderResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Report] failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"document_id", "category", "sentiment_score", "sentiment_label"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("[Report] failed to write header: %w", err)
	}

	for _, result := range results {
		row := []string{
			result.DocumentID,
			result.Category,
			formatFloat(result.SentimentScore),
			result.SentimentLabel,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("[Report] failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("[Report] csv flush failed: %w", err)
	}

	slog.Info("[Report] Wrote VADER comparison table",
		slog.String("path", path),
		slog.Int("rows", len(results)))
	return nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
