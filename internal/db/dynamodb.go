package db

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/corvid-labs/corpusmood/internal/clients"
	"github.com/corvid-labs/corpusmood/internal/models"
)

const BUCKETS_TABLE_NAME = "SentimentBuckets"

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// StoreBuckets batch-writes one run's aggregated bucket table. DynamoDB
// caps batch writes at 25 items, so the table is chunked and unprocessed
// items are retried with backoff.
func StoreBuckets(ctx context.Context, runID, grouping, lexiconName string, buckets []models.SentimentBucket) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(buckets); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:

			end := i + maxBatchSize
			if end > len(buckets) {
				end = len(buckets)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for _, bucket := range buckets[i:end] {
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{
						Item: BucketToDynamoDBItem(runID, grouping, lexiconName, bucket),
					},
				})
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					BUCKETS_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write buckets: %w", err)
			}

			retryCount := 0
			backoffDuration := time.Millisecond * 500
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoffDuration)
				backoffDuration *= 2
				slog.Warn("[DynamoDB] Retrying unprocessed items...",
					slog.Int("retry_attempt", retryCount+1),
					slog.Int("remaining_items", len(out.UnprocessedItems[BUCKETS_TABLE_NAME])),
				)

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					slog.Error("[DynamoDB] Error retrying batch write",
						slog.String("error", err.Error()))
					return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
				}
				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some buckets were not written even after retries",
					slog.Int("remaining_items", len(out.UnprocessedItems[BUCKETS_TABLE_NAME])))
			}
		}
	}
	slog.Info("[DynamoDB] Successfully stored bucket table",
		slog.String("run_id", runID),
		slog.String("grouping", grouping),
		slog.Int("buckets", len(buckets)))
	return nil
}

// GetBucketsForRun scans the table for one run's rows.
func GetBucketsForRun(ctx context.Context, runID string) ([]models.SentimentBucket, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var buckets []models.SentimentBucket
	input := &dynamodb.ScanInput{
		TableName:        aws.String(BUCKETS_TABLE_NAME),
		FilterExpression: aws.String("run_id = :run_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":run_id": &types.AttributeValueMemberS{Value: runID},
		},
	}

	paginator := dynamodb.NewScanPaginator(dbClient, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for buckets failed: %w", err)
		}
		var page []models.SentimentBucket
		err = attributevalue.UnmarshalListOfMaps(out.Items, &page)
		if err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal bucket page", slog.String("error", err.Error()))
			return nil, err
		}
		buckets = append(buckets, page...)
	}
	slog.Info("[DynamoDB] Successfully retrieved buckets", slog.Int("count", len(buckets)))
	return buckets, nil
}

// BucketToDynamoDBItem flattens a bucket row. NaN percentages (empty
// buckets) have no numeric representation in DynamoDB, so the attribute is
// omitted for them.
func BucketToDynamoDBItem(runID, grouping, lexiconName string, bucket models.SentimentBucket) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue)

	item["run_id"] = &types.AttributeValueMemberS{Value: runID}
	item["bucket_key"] = &types.AttributeValueMemberS{Value: grouping + "#" + bucket.Key}
	item["grouping"] = &types.AttributeValueMemberS{Value: grouping}
	item["lexicon"] = &types.AttributeValueMemberS{Value: lexiconName}
	item["positive_count"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", bucket.PositiveCount)}
	item["negative_count"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", bucket.NegativeCount)}
	item["total_words"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", bucket.TotalWords)}
	item["net"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", bucket.Net)}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}

	if !math.IsNaN(bucket.Percentage) {
		item["percentage"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%.2f", bucket.Percentage)}
	}
	if !math.IsNaN(bucket.MeanScore) {
		item["mean_score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", bucket.MeanScore)}
	}

	return item
}
