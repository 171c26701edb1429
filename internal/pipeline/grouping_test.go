package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/corpusmood/internal/models"
)

func scoredAt(doc string, line int, value float64) models.ScoredToken {
	return models.ScoredToken{
		Token: models.Token{DocumentID: doc, LineNumber: line},
		Value: value,
	}
}

func TestLineWindow(t *testing.T) {
	scored := []models.ScoredToken{
		scoredAt("book", 1, 1),
		scoredAt("book", 79, -1),
		scoredAt("book", 80, 1),
		scoredAt("book", 161, 1),
	}

	groups := GroupBy(scored, LineWindow(80))

	require.Len(t, groups, 3)
	assert.Len(t, groups["book#00000"], 2)
	assert.Len(t, groups["book#00001"], 1)
	assert.Len(t, groups["book#00002"], 1)
}

func TestLineWindowSeparatesDocuments(t *testing.T) {
	scored := []models.ScoredToken{
		scoredAt("alpha", 5, 1),
		scoredAt("beta", 5, -1),
	}

	groups := GroupBy(scored, LineWindow(80))

	require.Len(t, groups, 2)
	assert.Contains(t, groups, "alpha#00000")
	assert.Contains(t, groups, "beta#00000")
}

func TestByCategorySkipsUnlabeled(t *testing.T) {
	scored := []models.ScoredToken{
		{Token: models.Token{Category: "Sports"}, Value: 1},
		{Token: models.Token{Category: ""}, Value: -1},
	}

	groups := GroupBy(scored, ByCategory)

	require.Len(t, groups, 1)
	assert.Equal(t, []float64{1}, groups["Sports"])
}

func TestByHourSkipsZeroTimestamps(t *testing.T) {
	ts := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
	scored := []models.ScoredToken{
		{Token: models.Token{Timestamp: ts}, Value: 1},
		{Token: models.Token{}, Value: -1},
	}

	groups := GroupBy(scored, ByHour)

	require.Len(t, groups, 1)
	assert.Equal(t, []float64{1}, groups["14"])
}
