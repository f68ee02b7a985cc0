package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	StoreReadTimeout() time.Duration
	StoreWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Store interface {
	Driver() string
}

type Moneta interface {
	MerchantID() string
	IntegrityCode() string
	ReceiptItemName() string
	ReceiptVATTag() string
}

type Airtable interface {
	APIKey() string
	BaseID() string
	TableName() string
	APIURL() string
	OwnerField() string
	EmailField() string
	Timeout() time.Duration
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Auth interface {
	ServiceURL() string
	PublicKeyPEM() string
	TokenCookie() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	InvoicePaidTopic() string
	InvoicePaidProducerConfig() *sarama.Config
}
