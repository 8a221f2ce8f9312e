package internal

import (
	"fmt"
	"os"
	"strings"

	"matrix-contacts/errors"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	SynadmBin    string `env:"SYNADM_BIN,default=synadm" validate:"required"`
	SynadmConfig string `env:"SYNADM_CONFIG"`
	// SynadmOutput is passed as "-o"; both values produce JSON.
	SynadmOutput string `env:"SYNADM_OUTPUT,default=json" validate:"omitempty,oneof=json minified"`
	LogLevel     string `env:"LOG_LEVEL,default=ERROR" validate:"oneof=DEBUG INFO WARN ERROR"`
	Format       string `env:"CONTACTS_FORMAT,default=plain" validate:"oneof=plain table json"`
	Colours      bool   `env:"CONTACTS_COLOURS,default=true"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return ParseConfig(es)
}

func ParseConfig(es env.EnvSet) (Config, error) {
	var config Config
	if err := env.Unmarshal(es, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)
	config.Format = strings.ToLower(config.Format)

	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return config, nil
}

// WithArgs applies command-line overrides on top of the environment.
func (c Config) WithArgs(args Args) (Config, error) {
	if args.Format == "" {
		return c, nil
	}
	c.Format = strings.ToLower(args.Format)
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrUsage, err)
	}
	return c, nil
}
