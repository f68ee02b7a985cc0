package envconfig

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

type authEnv struct {
	ServiceURL string `env:"AUTH_SERVICE_URL,required,notEmpty"`
	// PEM with line breaks written as literal "\n", as env files cannot hold them.
	PublicKey   string `env:"AUTH_PUBLIC_KEY,required,notEmpty"`
	TokenCookie string `env:"AUTH_TOKEN_COOKIE" envDefault:"access_token"`
}

type auth struct {
	raw       authEnv
	publicKey string
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &auth{
		raw:       raw,
		publicKey: strings.ReplaceAll(raw.PublicKey, `\n`, "\n"),
	}, nil
}

func (cfg *auth) ServiceURL() string   { return cfg.raw.ServiceURL }
func (cfg *auth) PublicKeyPEM() string { return cfg.publicKey }
func (cfg *auth) TokenCookie() string  { return cfg.raw.TokenCookie }
