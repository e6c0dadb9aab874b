package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/beanfolio"
	"github.com/etnz/beanfolio/renderer"
	"github.com/google/subcommands"
)

// optionFlags are the valuation toggles shared by value and chart.
type optionFlags struct {
	includeDividends bool
	onlyDividends    bool
	onlyReturns      bool
}

func (o *optionFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.includeDividends, "include-dividends", false, "add accumulated dividend cash to the values")
	f.BoolVar(&o.onlyDividends, "only-dividends", false, "report accumulated dividend cash only")
	f.BoolVar(&o.onlyReturns, "only-returns", false, "value shares at the price change within the month")
}

func (o *optionFlags) Options() beanfolio.Options {
	return beanfolio.Options{
		IncludeDividends: o.includeDividends,
		OnlyDividends:    o.onlyDividends,
		OnlyReturns:      o.onlyReturns,
	}
}

type valueCmd struct {
	optionFlags
	month   string
	symbols string
	open    bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the value of each holding at a month end" }
func (*valueCmd) Usage() string {
	return `bfo value [-m <month>] [-s <symbols>] [-open] [-include-dividends | -only-dividends] [-only-returns]

  Values every holding as of a month cutoff: the position up to the cutoff
  times the month's closing price (or opening price with -open), and the
  total net of the commissions paid so far.

  The month defaults to the last month with prices. Symbols default to the
  configured ones.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	c.optionFlags.SetFlags(f)
	f.StringVar(&c.month, "m", "", "month cutoff (YYYY-MM)")
	f.StringVar(&c.symbols, "s", "", "comma separated list of symbols")
	f.BoolVar(&c.open, "open", false, "value shares at the opening price of the month")
}

func (c *valueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.includeDividends && c.onlyDividends {
		fmt.Fprintln(os.Stderr, "-include-dividends and -only-dividends are mutually exclusive")
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	month, err := s.month(c.month)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	o := c.Options()
	o.UseOpenPrice = c.open

	v := renderer.NewValuation(s.engine, s.symbols(c.symbols), month, o)
	printMarkdown(renderer.RenderValuation(v))
	return subcommands.ExitSuccess
}
