package db

import (
	"math"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/corpusmood/internal/models"
)

func TestBucketToDynamoDBItem(t *testing.T) {
	bucket := models.SentimentBucket{
		Key:           "Business",
		PositiveCount: 3,
		NegativeCount: 1,
		TotalWords:    4,
		Net:           2,
		Percentage:    50,
		MeanScore:     0.5,
	}

	item := BucketToDynamoDBItem("run-1", "news_sections", "bing", bucket)

	key, ok := item["bucket_key"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "news_sections#Business", key.Value)

	runID, ok := item["run_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "run-1", runID.Value)

	pct, ok := item["percentage"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "50.00", pct.Value)

	total, ok := item["total_words"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "4", total.Value)
}

func TestBucketToDynamoDBItemOmitsNaN(t *testing.T) {
	bucket := models.SentimentBucket{
		Key:        "Empty",
		Percentage: math.NaN(),
		MeanScore:  math.NaN(),
	}

	item := BucketToDynamoDBItem("run-1", "news_sections", "bing", bucket)

	// NaN has no DynamoDB number representation; the attributes are
	// omitted rather than written as an invalid value.
	assert.NotContains(t, item, "percentage")
	assert.NotContains(t, item, "mean_score")
	assert.Contains(t, item, "total_words")
}
