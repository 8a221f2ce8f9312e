package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_SYNADM_USER is a user known to the homeserver; the suite is skipped when empty.
	User         string `envconfig:"E2E_SYNADM_USER"`
	SynadmBin    string `envconfig:"E2E_SYNADM_BIN" default:"synadm"`
	SynadmConfig string `envconfig:"E2E_SYNADM_CONFIG"`
	// E2E_DEBUG_JSON dumps the raw synadm bodies in the test log
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized step headers
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
