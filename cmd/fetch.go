package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/beanfolio"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	ledgerOut string
	pricesOut string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download the ledger export and the prices to local files" }
func (*fetchCmd) Usage() string {
	return `bfo fetch [-ledger-out <file>] [-prices-out <file>]

  Converts the configured beancount file with the remote converter and
  downloads the daily prices of the configured symbols since the configured
  start date. Both run concurrently. The results are written to the ledger
  and prices files of the configuration, so that other commands can work
  offline.

  The prices API key is read from the configuration, the --fmp-api-key flag
  or the FMP_API_KEY environment variable.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerOut, "ledger-out", "", "ledger export file to write, defaults to the configured ledger file")
	f.StringVar(&c.pricesOut, "prices-out", "", "prices file to write, defaults to the configured prices file")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	config, err := effectiveConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if config.Ledger.Beancount == "" {
		fmt.Fprintln(os.Stderr, "no beancount file configured: set [ledger] beancount")
		return subcommands.ExitUsageError
	}
	ledgerOut, pricesOut := config.Ledger.File, config.Prices.File
	if c.ledgerOut != "" {
		ledgerOut = c.ledgerOut
	}
	if c.pricesOut != "" {
		pricesOut = c.pricesOut
	}

	logger := beanfolio.NewLogger(config.Logging.Level, os.Stderr)
	// force the remote sources.
	config.Ledger.File, config.Prices.File = "", ""
	snap, err := load(ctx, config, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := writeFile(ledgerOut, func(f *os.File) error { return beanfolio.EncodeLedger(f, snap.Ledger) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := writeFile(pricesOut, func(f *os.File) error { return beanfolio.EncodePrices(f, snap.Prices) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	logger.Info().Str("ledger", ledgerOut).Str("prices", pricesOut).Msg("fetched")
	return subcommands.ExitSuccess
}

func writeFile(name string, encode func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	return f.Close()
}
