package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type airtableEnv struct {
	APIKey    string `env:"AIRTABLE_API_KEY,required,notEmpty"`
	BaseID    string `env:"AIRTABLE_BASE_ID,required,notEmpty"`
	TableName string `env:"AIRTABLE_TABLE_NAME" envDefault:"Payments"`
	APIURL    string `env:"AIRTABLE_API_URL" envDefault:"https://api.airtable.com/v0"`

	OwnerField string `env:"AIRTABLE_OWNER_FIELD" envDefault:"Owner"`
	EmailField string `env:"AIRTABLE_EMAIL_FIELD" envDefault:"Email (from Resident)"`

	Timeout time.Duration `env:"AIRTABLE_TIMEOUT" envDefault:"10s"`
}

type airtable struct {
	raw airtableEnv
}

func NewAirtableConfig() (*airtable, error) {
	var raw airtableEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &airtable{raw: raw}, nil
}

func (cfg *airtable) APIKey() string         { return cfg.raw.APIKey }
func (cfg *airtable) BaseID() string         { return cfg.raw.BaseID }
func (cfg *airtable) TableName() string      { return cfg.raw.TableName }
func (cfg *airtable) APIURL() string         { return cfg.raw.APIURL }
func (cfg *airtable) OwnerField() string     { return cfg.raw.OwnerField }
func (cfg *airtable) EmailField() string     { return cfg.raw.EmailField }
func (cfg *airtable) Timeout() time.Duration { return cfg.raw.Timeout }
