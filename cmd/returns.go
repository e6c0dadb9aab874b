package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/beanfolio"
	"github.com/etnz/beanfolio/renderer"
	"github.com/google/subcommands"
)

type returnsCmd struct {
	from      string
	to        string
	symbols   string
	noSymbols bool
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display total, ex-dividend and dividend-only returns" }
func (*returnsCmd) Usage() string {
	return `bfo returns [-from <month>] [-to <month>] [-s <symbols>] [-no-symbols]

  Computes the returns of the portfolio from the open of the first month to
  the close of the last month. The ending values are net of the commissions
  paid up to the last month.

  -from defaults to the configured start, -to to the last month with prices.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "first month (YYYY-MM)")
	f.StringVar(&c.to, "to", "", "last month (YYYY-MM)")
	f.StringVar(&c.symbols, "s", "", "comma separated list of symbols")
	f.BoolVar(&c.noSymbols, "no-symbols", false, "do not display the per symbol performance")
}

func (c *returnsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	from, err := s.firstMonth(c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	to, err := s.month(c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	r, err := s.engine.PeriodReturn(s.symbols(c.symbols), from, to)
	if errors.Is(err, beanfolio.ErrZeroBasis) {
		// still worth displaying: values are known, percentages are n/a.
		s.logger.Warn().Err(err).Msg("returns are undefined")
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderReturns(&r, renderer.ReturnsRenderOptions{SkipSymbols: c.noSymbols}))
	return subcommands.ExitSuccess
}
