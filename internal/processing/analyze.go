package processing

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/corvid-labs/corpusmood/internal/clients/kafka_client"
	"github.com/corvid-labs/corpusmood/internal/corpus"
	"github.com/corvid-labs/corpusmood/internal/db"
	"github.com/corvid-labs/corpusmood/internal/lexicon"
	"github.com/corvid-labs/corpusmood/internal/models"
	"github.com/corvid-labs/corpusmood/internal/pipeline"
	"github.com/corvid-labs/corpusmood/internal/report"
	"github.com/corvid-labs/corpusmood/internal/sentiment"
	"github.com/corvid-labs/corpusmood/internal/tokenize"
)

type AnalysisConfig struct {
	NovelsDir      string
	SnapshotPath   string
	OutputDir      string
	WindowSize     int
	DropStopwords  bool
	StoreResults   bool
	PublishResults bool
}

// RunAnalysis executes the full batch: novels sectioned into line windows,
// news grouped by section and by hour of day, once per lexicon, plus the
// record-level VADER comparison over the news corpus. The pipeline itself
// is pure; CSV export, DynamoDB storage and Kafka publishing happen
// strictly downstream of it.
func RunAnalysis(ctx context.Context, cfg AnalysisConfig, lexicons []*lexicon.Lexicon) error {
	runID := time.Now().UTC().Format("20060102T150405Z")
	slog.Info("[RunAnalysis] Starting analysis run", slog.String("run_id", runID))

	novelOpts := []tokenize.Option{}
	newsOpts := []tokenize.Option{tokenize.WithMarkdownCleanup()}
	if cfg.DropStopwords {
		novelOpts = append(novelOpts, tokenize.WithStopwordRemoval("en"))
		newsOpts = append(newsOpts, tokenize.WithStopwordRemoval("en"))
	}

	novelRecords, err := corpus.LoadDir(cfg.NovelsDir)
	if err != nil {
		return err
	}
	novelTokens := tokenize.New(novelOpts...).Tokenize(novelRecords)

	newsRecords, err := corpus.ReadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return err
	}
	newsTokens := tokenize.New(newsOpts...).Tokenize(newsRecords)

	slog.Info("[RunAnalysis] Corpora tokenized",
		slog.Int("novel_records", len(novelRecords)),
		slog.Int("novel_tokens", len(novelTokens)),
		slog.Int("news_records", len(newsRecords)),
		slog.Int("news_tokens", len(newsTokens)))

	storedBuckets := 0
	for _, lex := range lexicons {
		novelScored := pipeline.Join(novelTokens, lex)
		newsScored := pipeline.Join(newsTokens, lex)

		tables := []struct {
			grouping string
			buckets  []models.SentimentBucket
		}{
			{"novel_windows", pipeline.Run(novelScored, pipeline.LineWindow(cfg.WindowSize))},
			{"news_sections", pipeline.Run(newsScored, pipeline.ByCategory)},
			{"news_hours", pipeline.Run(newsScored, pipeline.ByHour)},
		}

		for _, table := range tables {
			path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s.csv", table.grouping, lex.Name))
			if err := report.WriteBucketsCSV(path, table.buckets); err != nil {
				return err
			}

			if cfg.StoreResults {
				if err := db.StoreBuckets(ctx, runID, table.grouping, lex.Name, table.buckets); err != nil {
					slog.Error("[RunAnalysis] Failed to store buckets",
						slog.String("grouping", table.grouping),
						slog.String("error", err.Error()))
				} else {
					storedBuckets += len(table.buckets)
				}
			}
			if cfg.PublishResults {
				kafkaCfg := kafka_client.GetKafkaConfig()
				if err := kafka_client.PublishBuckets(kafkaCfg.Topic, table.grouping+"_"+lex.Name, table.buckets); err != nil {
					slog.Error("[RunAnalysis] Failed to publish buckets",
						slog.String("grouping", table.grouping),
						slog.String("error", err.Error()))
				}
			}
		}
	}

	if cfg.StoreResults {
		stored, err := db.GetBucketsForRun(ctx, runID)
		if err != nil {
			slog.Error("[RunAnalysis] Failed to read back stored buckets",
				slog.String("run_id", runID),
				slog.String("error", err.Error()))
		} else if len(stored) != storedBuckets {
			slog.Warn("[RunAnalysis] Stored bucket count mismatch",
				slog.Int("expected", storedBuckets),
				slog.Int("stored", len(stored)))
		} else {
			slog.Info("[RunAnalysis] Verified stored buckets",
				slog.Int("count", len(stored)))
		}
	}

	vaderResults := sentiment.ScoreRecords(newsRecords)
	vaderPath := filepath.Join(cfg.OutputDir, "news_vader.csv")
	if err := report.WriteVaderCSV(vaderPath, vaderResults); err != nil {
		return err
	}

	slog.Info("[RunAnalysis] Analysis run complete", slog.String("run_id", runID))
	return nil
}
