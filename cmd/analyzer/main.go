package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/corvid-labs/corpusmood/config"
	"github.com/corvid-labs/corpusmood/internal/clients/kafka_client"
	"github.com/corvid-labs/corpusmood/internal/db"
	"github.com/corvid-labs/corpusmood/internal/lexicon"
	"github.com/corvid-labs/corpusmood/internal/logging"
	"github.com/corvid-labs/corpusmood/internal/processing"
	"github.com/corvid-labs/corpusmood/internal/utils"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := processing.AnalysisConfig{
		NovelsDir:      utils.GetEnv("NOVELS_DIR", "data/novels"),
		SnapshotPath:   utils.GetEnv("SNAPSHOT_PATH", "data/news_snapshot.json"),
		OutputDir:      utils.GetEnv("OUTPUT_DIR", "out"),
		DropStopwords:  os.Getenv("DROP_STOPWORDS") == "true",
		StoreResults:   os.Getenv("STORE_RESULTS") == "true",
		PublishResults: os.Getenv("PUBLISH_RESULTS") == "true",
	}

	cfg.WindowSize = 80
	if size, err := strconv.Atoi(os.Getenv("WINDOW_SIZE")); err == nil && size > 0 {
		cfg.WindowSize = size
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		slog.Error("Failed to create output dir", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lexicons := loadLexicons()

	if cfg.StoreResults {
		db.InitDynamoDB()
	}
	if cfg.PublishResults {
		for {
			err := kafka_client.InitKafkaProducer(kafka_client.GetKafkaConfig())
			if err == nil {
				break
			}
			slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
			time.Sleep(5 * time.Second)
		}
		defer kafka_client.CloseKafkaProducer()
	}

	if err := processing.RunAnalysis(context.Background(), cfg, lexicons); err != nil {
		slog.Error("Analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func loadLexicons() []*lexicon.Lexicon {
	polarity, err := lexicon.LoadPolarity("bing",
		utils.GetEnv("BING_POSITIVE_PATH", "data/lexicons/bing_positive.txt"),
		utils.GetEnv("BING_NEGATIVE_PATH", "data/lexicons/bing_negative.txt"))
	if err != nil {
		slog.Error("Failed to load polarity lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}

	scored, err := lexicon.LoadScored("afinn", utils.GetEnv("AFINN_PATH", "data/lexicons/afinn.txt"))
	if err != nil {
		slog.Error("Failed to load scored lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Lexicons loaded",
		slog.Int("bing_words", polarity.Len()),
		slog.Int("afinn_words", scored.Len()))
	return []*lexicon.Lexicon{polarity, scored}
}
