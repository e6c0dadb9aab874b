package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/beanfolio"
	"github.com/etnz/beanfolio/date"
	"github.com/etnz/beanfolio/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	optionFlags
	from    string
	to      string
	symbols string
	gross   bool
	png     string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the portfolio value month by month" }
func (*chartCmd) Usage() string {
	return `bfo chart [-from <month>] [-to <month>] [-s <symbols>] [-include-dividends | -only-dividends] [-only-returns] [-gross] [-png <file>]

  Values the portfolio at the close of every month of the range. Only
  symbols with prices in a month contribute to it, and months without any
  price are skipped. Values are net of commissions unless -gross is set.

  The series is displayed as a markdown table, or written as a PNG chart
  with -png.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.optionFlags.SetFlags(f)
	f.StringVar(&c.from, "from", "", "first month (YYYY-MM)")
	f.StringVar(&c.to, "to", "", "last month (YYYY-MM)")
	f.StringVar(&c.symbols, "s", "", "comma separated list of symbols")
	f.BoolVar(&c.gross, "gross", false, "do not subtract commissions")
	f.StringVar(&c.png, "png", "", "write the chart to this PNG file")
}

func (c *chartCmd) title() string {
	switch {
	case c.onlyDividends:
		return "Dividends"
	case c.onlyReturns:
		return "Monthly returns"
	case c.includeDividends:
		return "Value with dividends"
	default:
		return "Value"
	}
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.includeDividends && c.onlyDividends {
		fmt.Fprintln(os.Stderr, "-include-dividends and -only-dividends are mutually exclusive")
		return subcommands.ExitUsageError
	}
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

	series := s.engine.MonthlySeries(s.symbols(c.symbols), date.NewRange(from, to), beanfolio.SeriesOptions{
		Options:            c.Options(),
		GrossOfCommissions: c.gross,
	})

	if c.png == "" {
		printMarkdown(renderer.SeriesMarkdown(c.title(), series))
		return subcommands.ExitSuccess
	}
	png, err := renderer.RenderSeriesChart(c.title(), series)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.png, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart %q: %v\n", c.png, err)
		return subcommands.ExitFailure
	}
	s.logger.Info().Str("file", c.png).Int("months", len(series)).Msg("chart written")
	return subcommands.ExitSuccess
}
