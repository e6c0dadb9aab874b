// Package cmd implements the CLI application to value a beancount portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/beanfolio"
	"github.com/etnz/beanfolio/date"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands() {
		c.Register(cmd, group(cmd))
	}
}

func commands() []subcommands.Command {
	return []subcommands.Command{
		&valueCmd{},
		&returnsCmd{},
		&chartCmd{},
		&txCmd{},
		&fetchCmd{},
		&configCmd{},
	}
}

func group(c subcommands.Command) string {
	switch c.(type) {
	case *fetchCmd, *configCmd:
		return "setup"
	default:
		return "reports"
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile   = flag.String("config", "beanfolio.toml", "Path to the TOML configuration file")
	ledgerFlag   = flag.String("ledger", "", "Path to the ledger JSON export, overrides the config")
	pricesFlag   = flag.String("prices", "", "Path to the prices JSON file, overrides the config")
	cutoffFlag   = flag.String("cutoff", "", "Cutoff policy (literal, chronological), overrides the config")
	currencyFlag = flag.String("currency", "", "Currency of the reported values, overrides the config")
	apiKeyFlag   = flag.String("fmp-api-key", "", "Prices API key, defaults to the "+beanfolio.APIKeyEnv+" environment variable")
	logLevelFlag = flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the config")
)

// effectiveConfig loads the config file and applies the global flags.
func effectiveConfig() (Config, error) {
	config, err := LoadConfig(*configFile)
	if err != nil {
		return config, err
	}
	if *ledgerFlag != "" {
		config.Ledger.File = *ledgerFlag
	}
	if *pricesFlag != "" {
		config.Prices.File = *pricesFlag
	}
	if *cutoffFlag != "" {
		if config.Cutoff, err = beanfolio.ParseCutoffPolicy(*cutoffFlag); err != nil {
			return config, err
		}
	}
	if *currencyFlag != "" {
		config.Currency = *currencyFlag
	}
	if *apiKeyFlag != "" {
		config.Prices.APIKey = *apiKeyFlag
	}
	if *logLevelFlag != "" {
		config.Logging.Level = *logLevelFlag
	}
	return config, nil
}

// session is everything a report command needs.
type session struct {
	config  Config
	logger  zerolog.Logger
	journal *beanfolio.Journal
	prices  *beanfolio.PriceIndex
	engine  *beanfolio.Engine
}

// openSession loads the ledger and the prices and builds the engine.
func openSession(ctx context.Context) (*session, error) {
	config, err := effectiveConfig()
	if err != nil {
		return nil, err
	}
	logger := beanfolio.NewLogger(config.Logging.Level, os.Stderr)
	snap, err := load(ctx, config, logger)
	if err != nil {
		return nil, err
	}
	s := &session{
		config:  config,
		logger:  logger,
		journal: beanfolio.NewJournal(snap.Ledger, beanfolio.WithJournalLogger(logger)),
		prices:  beanfolio.NewPriceIndex(snap.Prices),
	}
	s.engine = beanfolio.NewEngine(s.journal, s.prices,
		beanfolio.WithCutoff(config.Cutoff),
		beanfolio.WithCurrency(config.Currency))
	return s, nil
}

func load(ctx context.Context, config Config, logger zerolog.Logger) (*beanfolio.Snapshot, error) {
	start, err := date.Parse(config.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date in config: %w", err)
	}
	return beanfolio.Load(ctx, beanfolio.LoadOptions{
		Client:        beanfolio.Daily(config.Prices.Cache, logger),
		Logger:        logger,
		LedgerFile:    config.Ledger.File,
		BeancountFile: config.Ledger.Beancount,
		ConverterURL:  config.Ledger.Converter,
		PricesFile:    config.Prices.File,
		PricesURL:     config.Prices.BaseURL,
		APIKey:        config.Prices.APIKey,
		Symbols:       config.Symbols,
		From:          start,
		To:            date.Today(),
	})
}

// symbols returns the comma separated list in flag, or the configured
// symbols, or every symbol traded in the ledger.
func (s *session) symbols(flag string) []string {
	if list := splitList(flag); len(list) > 0 {
		return list
	}
	if len(s.config.Symbols) > 0 {
		return s.config.Symbols
	}
	return s.journal.Symbols()
}

// month parses a month flag. An empty flag is the last month with prices,
// or the current month without prices.
func (s *session) month(flag string) (date.Period, error) {
	if flag != "" {
		return date.ParsePeriod(flag)
	}
	if _, last, ok := s.prices.Span(); ok {
		return last.Period(), nil
	}
	return date.ThisMonth(), nil
}

// firstMonth parses a start month flag. An empty flag is the configured
// start date's month.
func (s *session) firstMonth(flag string) (date.Period, error) {
	if flag != "" {
		return date.ParsePeriod(flag)
	}
	return date.ParsePeriod(s.config.Start)
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// printMarkdown renders md for the terminal, or prints it raw when it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
