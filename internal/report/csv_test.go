package report

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/corpusmood/internal/models"
)

func TestWriteBucketsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buckets.csv")
	buckets := []models.SentimentBucket{
		{Key: "Business", PositiveCount: 3, NegativeCount: 1, TotalWords: 4, Net: 2, Percentage: 50, MeanScore: 0.5, StdDev: 1.29},
		{Key: "Empty", Percentage: math.NaN(), MeanScore: math.NaN(), StdDev: math.NaN()},
	}

	require.NoError(t, WriteBucketsCSV(path, buckets))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "bucket_key", rows[0][0])

	assert.Equal(t, "Business", rows[1][0])
	assert.Equal(t, "50.00", rows[1][5])

	// Empty buckets carry the documented NaN marker, never a blank cell.
	assert.Equal(t, "Empty", rows[2][0])
	assert.Equal(t, "NaN", rows[2][5])
	assert.Equal(t, "0", rows[2][3])
}

func TestWriteVaderCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vader.csv")
	results := []models.VaderResult{
		{DocumentID: "a1", Category: "Business", SentimentScore: 0.64, SentimentLabel: "positive"},
	}

	require.NoError(t, WriteVaderCSV(path, results))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a1", "Business", "0.64", "positive"}, rows[1])
}
