package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/corpusmood/internal/models"
)

func archiveDoc(id, lead, section, pubDate string) models.ArchiveDoc {
	return models.ArchiveDoc{
		ID:            id,
		LeadParagraph: lead,
		SectionName:   section,
		PubDate:       pubDate,
	}
}

func TestRecordsFromArchive(t *testing.T) {
	docs := []models.ArchiveDoc{
		archiveDoc("a1", "Markets rallied today.", "Business", "2024-05-01T14:30:00+0000"),
		archiveDoc("a2", "", "Sports", "2024-05-01T15:00:00+0000"),
		archiveDoc("a3", "A quiet day in the capital.", "Politics", "not-a-date"),
	}

	records := RecordsFromArchive(docs)

	require.Len(t, records, 2)

	assert.Equal(t, "a1", records[0].DocumentID)
	assert.Equal(t, "Business", records[0].Category)
	assert.Equal(t, 14, records[0].Timestamp.Hour())

	// Bad pub_date keeps the record but drops it from time grouping.
	assert.Equal(t, "a3", records[1].DocumentID)
	assert.Equal(t, "Politics", records[1].Category)
	assert.True(t, records[1].Timestamp.IsZero())
}

func TestMergeSnapshotsKeepsExistingWhenNothingFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	existing := RecordsFromArchive([]models.ArchiveDoc{
		archiveDoc("a1", "Markets rallied today.", "Business", "2024-05-01T14:30:00+0000"),
		archiveDoc("a2", "A quiet day in the capital.", "Politics", "2024-05-01T15:00:00+0000"),
	})
	require.NoError(t, WriteSnapshot(path, existing))

	// Re-fetching an already-captured month yields no fresh records; the
	// rewritten snapshot must still hold everything captured before.
	loaded, err := ReadSnapshot(path)
	require.NoError(t, err)
	merged := MergeSnapshots(loaded, nil)
	require.NoError(t, WriteSnapshot(path, merged))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].DocumentID)
	assert.Equal(t, "a2", got[1].DocumentID)
}

func TestMergeSnapshotsAppendsOnlyNewDocuments(t *testing.T) {
	existing := RecordsFromArchive([]models.ArchiveDoc{
		archiveDoc("a1", "Markets rallied today.", "Business", "2024-05-01T14:30:00+0000"),
	})
	fresh := RecordsFromArchive([]models.ArchiveDoc{
		archiveDoc("a1", "Markets rallied today.", "Business", "2024-05-01T14:30:00+0000"),
		archiveDoc("a2", "A quiet day in the capital.", "Politics", "2024-05-01T15:00:00+0000"),
	})

	merged := MergeSnapshots(existing, fresh)

	require.Len(t, merged, 2)
	assert.Equal(t, "a1", merged[0].DocumentID)
	assert.Equal(t, "a2", merged[1].DocumentID)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	records := RecordsFromArchive([]models.ArchiveDoc{
		archiveDoc("a1", "Markets rallied today.", "Business", "2024-05-01T14:30:00+0000"),
	})

	require.NoError(t, WriteSnapshot(path, records))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, records[0].DocumentID, got[0].DocumentID)
	assert.Equal(t, records[0].Category, got[0].Category)
	assert.Equal(t, records[0].Text, got[0].Text)
	assert.True(t, records[0].Timestamp.Equal(got[0].Timestamp))
}
