package adapter

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable libwizard reads.
const EnvPrefix = "LIBWIZARD_"

// EnvConfig holds the settings that can come from the environment. Command
// line flags take precedence over these values.
type EnvConfig struct {
	ExcludeFile string   `env:"EXCLUDE_FILE"`
	Template    string   `env:"TEMPLATE"`
	Extensions  []string `env:"EXTENSIONS" envSeparator:","`
	Branch      string   `env:"BRANCH"`
	Verbose     bool     `env:"VERBOSE" envDefault:"false"`
	NoTUI       bool     `env:"NO_TUI" envDefault:"false"`
}

// LoadEnvConfig loads the given dotenv files (".env" when none are given)
// and parses the LIBWIZARD_ variables. Missing dotenv files are ignored.
func LoadEnvConfig(dotenvFiles ...string) (EnvConfig, error) {
	_ = godotenv.Load(dotenvFiles...)

	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return EnvConfig{}, err
	}

	return cfg, nil
}
