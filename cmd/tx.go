package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/beanfolio"
	"github.com/etnz/beanfolio/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	symbol string
	asJSON bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the classified ledger transactions" }
func (*txCmd) Usage() string {
	return `bfo tx [-s <symbol>] [-json]

  Lists the stock trades, dividend payments and commission charges found in
  the ledger, in chronological order, followed by the ledger transactions
  that were dropped because they are malformed.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "only list the transactions of this symbol")
	f.BoolVar(&c.asJSON, "json", false, "print the transactions as JSON")
}

// forSymbol reports whether tx is about symbol. Commissions are not
// attributed to a symbol.
func forSymbol(tx beanfolio.Transaction, symbol string) bool {
	switch v := tx.(type) {
	case beanfolio.StockTrade:
		return v.Symbol == symbol
	case beanfolio.DividendPayment:
		return v.Symbol == symbol
	default:
		return false
	}
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	txs := s.journal.Transactions()
	if c.symbol != "" {
		txs = slices.DeleteFunc(txs, func(tx beanfolio.Transaction) bool { return !forSymbol(tx, c.symbol) })
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(txs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TransactionsMarkdown(txs, s.journal.Dropped()))
	return subcommands.ExitSuccess
}
