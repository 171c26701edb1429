package corpus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/corvid-labs/corpusmood/internal/models"
)

// WriteSnapshot exports the raw fetched corpus to a JSON file so the
// analyzer can re-run without hitting the archive API again. The snapshot
// is a cache artifact, not part of the pipeline contract.
func WriteSnapshot(path string, records []models.TextRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("[Corpus] failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("[Corpus] failed to write snapshot %s: %w", path, err)
	}

	slog.Info("[Corpus] Wrote corpus snapshot",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return nil
}

// MergeSnapshots appends fresh records to an existing snapshot, skipping
// document ids already present, so re-fetching a month neither duplicates
// nor erases previously captured articles.
func MergeSnapshots(existing, fresh []models.TextRecord) []models.TextRecord {
	seen := make(map[string]bool, len(existing))
	for _, record := range existing {
		seen[record.DocumentID] = true
	}

	merged := append([]models.TextRecord(nil), existing...)
	for _, record := range fresh {
		if seen[record.DocumentID] {
			continue
		}
		seen[record.DocumentID] = true
		merged = append(merged, record)
	}
	return merged
}

func ReadSnapshot(path string) ([]models.TextRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[Corpus] failed to read snapshot %s: %w", path, err)
	}

	var records []models.TextRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("[Corpus] failed to parse snapshot %s: %w", path, err)
	}
	return records, nil
}
