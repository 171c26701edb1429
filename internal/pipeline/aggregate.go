package pipeline

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/corvid-labs/corpusmood/internal/models"
)

// Aggregate turns grouped lexicon values into sentiment buckets, sorted by
// key so repeated runs over the same input produce identical tables.
//
// Classification is by sign: positive values count as positive, negative
// as negative, and exact zeros are excluded from both counts (they still
// feed the mean). A bucket with no counted words has an undefined
// percentage, reported as NaN rather than a division failure. StdDev is
// the sample statistic (n-1 divisor), so a single-value bucket reports
// NaN there while its mean stays defined.
func Aggregate(groups map[string][]float64) []models.SentimentBucket {
	buckets := make([]models.SentimentBucket, 0, len(groups))
	for key, values := range groups {
		buckets = append(buckets, aggregateOne(key, values))
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// Run is the whole pipeline tail after the join: group then aggregate.
func Run(scored []models.ScoredToken, keyFn KeyFunc) []models.SentimentBucket {
	return Aggregate(GroupBy(scored, keyFn))
}

func aggregateOne(key string, values []float64) models.SentimentBucket {
	bucket := models.SentimentBucket{Key: key}

	for _, v := range values {
		switch {
		case v > 0:
			bucket.PositiveCount++
		case v < 0:
			bucket.NegativeCount++
		}
	}

	bucket.TotalWords = bucket.PositiveCount + bucket.NegativeCount
	bucket.Net = bucket.PositiveCount - bucket.NegativeCount

	if bucket.TotalWords == 0 {
		bucket.Percentage = math.NaN()
	} else {
		pct := float64(bucket.Net) / float64(bucket.TotalWords) * 100
		bucket.Percentage = math.Round(pct*100) / 100
	}

	if len(values) == 0 {
		bucket.MeanScore = math.NaN()
		bucket.StdDev = math.NaN()
	} else {
		bucket.MeanScore = stat.Mean(values, nil)
		bucket.StdDev = stat.StdDev(values, nil)
	}

	return bucket
}
