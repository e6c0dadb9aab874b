package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/beanfolio"
	"github.com/google/subcommands"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the content of the configuration file.
type Config struct {
	Currency string                 `toml:"currency"`
	Cutoff   beanfolio.CutoffPolicy `toml:"cutoff"`
	Symbols  []string               `toml:"symbols"`
	Start    string                 `toml:"start"` // first day of the price history
	Ledger   LedgerConfig           `toml:"ledger"`
	Prices   PricesConfig           `toml:"prices"`
	Logging  LoggingConfig          `toml:"logging"`
}

// LedgerConfig tells where the ledger comes from: a JSON export, or a
// beancount file converted remotely when File is empty.
type LedgerConfig struct {
	File      string `toml:"file"`
	Beancount string `toml:"beancount"`
	Converter string `toml:"converter"`
}

// PricesConfig tells where prices come from: a JSON file, or the prices API
// when File is empty.
type PricesConfig struct {
	File    string `toml:"file"`
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Cache   string `toml:"cache"` // directory of the daily HTTP cache
}

// LoggingConfig holds the logger configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Currency: beanfolio.DefaultCurrency,
		Cutoff:   beanfolio.Literal,
		Symbols:  []string{"VTI", "VXUS", "BND"},
		Start:    "2020-01-08",
		Ledger: LedgerConfig{
			File:      "ibkr.json",
			Converter: beanfolio.DefaultConverterURL,
		},
		Prices: PricesConfig{
			File:    "prices.json",
			BaseURL: beanfolio.DefaultPricesURL,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads the configuration file at path over the defaults. A
// missing file is not an error. The API key falls back to the environment.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return config, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &config); err != nil {
				return config, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}
	if config.Prices.APIKey == "" {
		config.Prices.APIKey = os.Getenv(beanfolio.APIKeyEnv)
	}
	return config, nil
}

type configCmd struct{}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "print the effective configuration" }
func (*configCmd) Usage() string {
	return `bfo config

  Prints the configuration after the config file, the environment and the
  global flags have been applied, in TOML. The API key is masked.
`
}

func (*configCmd) SetFlags(f *flag.FlagSet) {}

func (*configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	config, err := effectiveConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if config.Prices.APIKey != "" {
		config.Prices.APIKey = "********"
	}
	data, err := toml.Marshal(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	os.Stdout.Write(data)
	return subcommands.ExitSuccess
}
