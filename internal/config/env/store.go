package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDriverAirtable = "airtable"
	StoreDriverPostgres = "postgres"
)

type storeEnv struct {
	Driver string `env:"STORE_DRIVER" envDefault:"airtable"`
}

type store struct {
	raw storeEnv
}

func NewStoreConfig() (*store, error) {
	var raw storeEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Driver {
	case StoreDriverAirtable, StoreDriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", raw.Driver)
	}

	return &store{raw: raw}, nil
}

func (cfg *store) Driver() string { return cfg.raw.Driver }
