package processing

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/corvid-labs/corpusmood/internal/clients"
	"github.com/corvid-labs/corpusmood/internal/corpus"
	"github.com/corvid-labs/corpusmood/internal/models"
)

// FetchAndSnapshotMonth pulls one month of articles from the archive API,
// skips articles already captured (Valkey seen-set) and writes the raw
// corpus snapshot. Returns the records written.
func FetchAndSnapshotMonth(ctx context.Context, year int, month time.Month, snapshotPath string) ([]models.TextRecord, error) {
	slog.Info("[FetchAndSnapshotMonth] Fetching archive month...",
		slog.Int("year", year), slog.Int("month", int(month)))
	start := time.Now()

	response, err := clients.GetArchiveClient().GetMonth(year, month)
	if err != nil {
		return nil, err
	}

	vc := clients.GetValkeyClient()
	fresh := make([]models.ArchiveDoc, 0, len(response.Response.Docs))
	skipped := 0
	for _, doc := range response.Response.Docs {
		if vc.IsArticleSeen(ctx, doc.ID) {
			skipped++
			continue
		}
		fresh = append(fresh, doc)
	}

	records := corpus.RecordsFromArchive(fresh)

	// A re-run over an already-captured month fetches nothing fresh; the
	// snapshot on disk still holds the earlier articles and must survive.
	existing, err := corpus.ReadSnapshot(snapshotPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("[FetchAndSnapshotMonth] Could not read existing snapshot, starting fresh",
				slog.String("error", err.Error()))
		}
		existing = nil
	}

	merged := corpus.MergeSnapshots(existing, records)
	if err := corpus.WriteSnapshot(snapshotPath, merged); err != nil {
		return nil, err
	}

	for _, record := range records {
		if err := vc.MarkArticleSeen(ctx, record.DocumentID); err != nil {
			slog.Warn("[FetchAndSnapshotMonth] Failed to mark article seen",
				slog.String("document_id", record.DocumentID),
				slog.String("error", err.Error()))
		}
	}

	slog.Info("[FetchAndSnapshotMonth] Snapshot complete",
		slog.Int("fetched", len(response.Response.Docs)),
		slog.Int("already_seen", skipped),
		slog.Int("new_records", len(records)),
		slog.Int("snapshot_records", len(merged)),
		slog.Duration("duration", time.Since(start)))
	return merged, nil
}
