package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/paybridge/internal/config/env"
)

const (
	StoreDriverAirtable = envconfig.StoreDriverAirtable
	StoreDriverPostgres = envconfig.StoreDriverPostgres
)

// Config is built once at startup and treated as read-only afterwards.
// Airtable is nil unless the airtable driver is selected; Postgres is nil
// unless the postgres driver is selected.
type Config struct {
	Server   Server
	Logger   Logger
	Store    Store
	Moneta   Moneta
	Airtable Airtable
	Postgres Database
	Auth     Auth
	Kafka    Kafka
}

func Load(path ...string) (*Config, error) {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return nil, fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return nil, fmt.Errorf("%s Logger: %w", op, err)
	}

	storeCfg, err := envconfig.NewStoreConfig()
	if err != nil {
		return nil, fmt.Errorf("%s Store: %w", op, err)
	}

	monetaCfg, err := envconfig.NewMonetaConfig()
	if err != nil {
		return nil, fmt.Errorf("%s Moneta: %w", op, err)
	}

	authCfg, err := envconfig.NewAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("%s Auth: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return nil, fmt.Errorf("%s Kafka: %w", op, err)
	}

	cfg := &Config{
		Server: serverCfg,
		Logger: loggerCfg,
		Store:  storeCfg,
		Moneta: monetaCfg,
		Auth:   authCfg,
		Kafka:  kafkaCfg,
	}

	switch storeCfg.Driver() {
	case StoreDriverPostgres:
		postgresCfg, err := envconfig.NewPostgresConfig()
		if err != nil {
			return nil, fmt.Errorf("%s Postgres: %w", op, err)
		}
		cfg.Postgres = postgresCfg
	default:
		airtableCfg, err := envconfig.NewAirtableConfig()
		if err != nil {
			return nil, fmt.Errorf("%s Airtable: %w", op, err)
		}
		cfg.Airtable = airtableCfg
	}

	return cfg, nil
}

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
