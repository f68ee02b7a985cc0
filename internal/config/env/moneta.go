package envconfig

import "github.com/caarlos0/env/v11"

type monetaEnv struct {
	MerchantID    string `env:"MNT_ID,required,notEmpty"`
	IntegrityCode string `env:"MNT_INTEGRITY_CODE,required,notEmpty"`

	ReceiptItemName string `env:"MNT_RECEIPT_ITEM_NAME" envDefault:"Подписка на мероприятия"`
	ReceiptVATTag   string `env:"MNT_RECEIPT_VAT_TAG" envDefault:"1105"`
}

type moneta struct {
	raw monetaEnv
}

func NewMonetaConfig() (*moneta, error) {
	var raw monetaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &moneta{raw: raw}, nil
}

func (cfg *moneta) MerchantID() string      { return cfg.raw.MerchantID }
func (cfg *moneta) IntegrityCode() string   { return cfg.raw.IntegrityCode }
func (cfg *moneta) ReceiptItemName() string { return cfg.raw.ReceiptItemName }
func (cfg *moneta) ReceiptVATTag() string   { return cfg.raw.ReceiptVATTag }
