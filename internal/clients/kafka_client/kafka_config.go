package kafka_client

import "github.com/corvid-labs/corpusmood/internal/utils"

const KAFKA_TOPIC_SENTIMENT_BUCKETS = "sentiment-buckets"

type KafkaConfig struct {
	Broker string
	Topic  string
}

func GetKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Broker: utils.GetEnv("KAFKA_BROKER", "localhost:29092"),
		Topic:  utils.GetEnv("KAFKA_BUCKETS_TOPIC", KAFKA_TOPIC_SENTIMENT_BUCKETS),
	}
}
