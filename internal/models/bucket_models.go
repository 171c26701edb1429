package models

// SentimentBucket is one row of an aggregated sentiment table.
// Percentage is NaN when TotalWords is zero. MeanScore and StdDev are
// computed over the raw lexicon values; both are NaN for empty buckets,
// and StdDev is the sample statistic so single-value buckets report
// NaN as well.
type SentimentBucket struct {
	Key           string  `json:"key" dynamodbav:"bucket_key"`
	PositiveCount int     `json:"positive_count" dynamodbav:"positive_count"`
	NegativeCount int     `json:"negative_count" dynamodbav:"negative_count"`
	TotalWords    int     `json:"total_words" dynamodbav:"total_words"`
	Net           int     `json:"net" dynamodbav:"net"`
	Percentage    float64 `json:"percentage" dynamodbav:"-"`
	MeanScore     float64 `json:"mean_score" dynamodbav:"-"`
	StdDev        float64 `json:"std_dev" dynamodbav:"-"`
}
