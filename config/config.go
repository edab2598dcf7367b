package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"go-currency-converter/catalog"
	"go-currency-converter/domain"
)

// EnvPrefix prefix of the environment variables read by Load
const EnvPrefix = "CONVERTER"

// Config settings for a converter process
type Config struct {
	// LogLevel one of debug, info, warn, error, none
	LogLevel string `mapstructure:"log_level"`

	// LogFormat logfmt or json
	LogFormat string `mapstructure:"log_format"`

	// Currencies replaces the default catalog when not empty
	Currencies []Currency `mapstructure:"currencies"`
}

// Currency a catalog entry as written in a config file
type Currency struct {
	Name string  `mapstructure:"name"`
	Rate float64 `mapstructure:"rate"`
}

// Load reads .env files (".env" if none are given, missing files are skipped),
// then CONVERTER_* environment variables and the optional file named by CONVERTER_CONFIG.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, "loading %v", f)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_level", "error")
	v.SetDefault("log_format", "logfmt")
	if err := v.BindEnv("config"); err != nil {
		return Config{}, errors.WithStack(err)
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(filepath.Clean(file))
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %v", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, nil
}

// Catalog builds the currency catalog, falling back to catalog.Default.
func (c Config) Catalog() (*catalog.Catalog, error) {
	if len(c.Currencies) == 0 {
		return catalog.Default(), nil
	}

	currencies := make([]domain.Currency, 0, len(c.Currencies))
	for _, cur := range c.Currencies {
		currencies = append(currencies, domain.Currency{Name: cur.Name, Rate: domain.Rate(cur.Rate)})
	}
	return catalog.New(currencies...)
}
