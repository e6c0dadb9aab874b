package beanfolio

import "github.com/etnz/beanfolio/date"

// SeriesOptions selects what MonthlySeries reports.
type SeriesOptions struct {
	Options
	// GrossOfCommissions leaves commissions in the monthly totals.
	GrossOfCommissions bool
}

// MonthValue is the portfolio value for one month.
type MonthValue struct {
	Month       date.Period
	Value       Money
	Commissions Money // commissions netted from Value
}

// MonthlySeries values the symbols once per month of r.
//
// Only symbols with price data in a month contribute to it, and months
// without any price data are left out. Commissions accumulated up to each
// month are subtracted once from the month total, unless only dividends are
// reported or opts.GrossOfCommissions is set.
func (e *Engine) MonthlySeries(symbols []string, r date.Range, opts SeriesOptions) []MonthValue {
	var series []MonthValue
	for month := range r.Months() {
		total := M(0, e.currency)
		priced := false
		for _, symbol := range symbols {
			if !e.prices.Has(symbol, month) {
				continue
			}
			priced = true
			total = total.Add(e.ValueOf(symbol, month, opts.Options))
		}
		if !priced {
			continue
		}
		mv := MonthValue{Month: month, Commissions: M(0, e.currency)}
		if !opts.OnlyDividends && !opts.GrossOfCommissions {
			mv.Commissions = e.CommissionTotal(month)
		}
		mv.Value = total.Sub(mv.Commissions)
		series = append(series, mv)
	}
	return series
}
