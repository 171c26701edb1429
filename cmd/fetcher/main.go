package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/corvid-labs/corpusmood/config"
	"github.com/corvid-labs/corpusmood/internal/clients"
	"github.com/corvid-labs/corpusmood/internal/logging"
	"github.com/corvid-labs/corpusmood/internal/processing"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	clients.InitValkey()
	defer clients.CloseValkey()

	// Default to last month: the archive only serves completed months.
	lastMonth := time.Now().AddDate(0, -1, 0)
	year := lastMonth.Year()
	month := lastMonth.Month()

	if y, err := strconv.Atoi(os.Getenv("ARCHIVE_YEAR")); err == nil {
		year = y
	}
	if m, err := strconv.Atoi(os.Getenv("ARCHIVE_MONTH")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}

	snapshotPath := os.Getenv("SNAPSHOT_PATH")
	if snapshotPath == "" {
		snapshotPath = "data/news_snapshot.json"
	}

	ctx := context.Background()
	if _, err := processing.FetchAndSnapshotMonth(ctx, year, month, snapshotPath); err != nil {
		slog.Error("Fetch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
