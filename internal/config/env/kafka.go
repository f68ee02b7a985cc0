package envconfig

import (
	"errors"

	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled              bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers              []string `env:"KAFKA_BROKERS"`
	InvoicePaidTopicName string   `env:"INVOICE_PAID_TOPIC_NAME" envDefault:"invoice.paid"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Enabled && len(raw.Brokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool            { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string        { return cfg.raw.Brokers }
func (cfg *kafka) InvoicePaidTopic() string { return cfg.raw.InvoicePaidTopicName }

func (cfg *kafka) InvoicePaidProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
