package beanfolio

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/beanfolio/date"
	"github.com/shopspring/decimal"
)

// ErrZeroBasis is returned when a return is computed from a zero beginning
// value: there is no position to measure a percentage against.
var ErrZeroBasis = errors.New("zero beginning value")

// Totals are the values of a position at one cutoff.
type Totals struct {
	Total       Money // position value with dividends
	ExDividends Money // position value without dividends
	Dividends   Money // dividend cash only
}

// Sub returns the difference t - u, field by field.
func (t Totals) Sub(u Totals) Totals {
	return Totals{
		Total:       t.Total.Sub(u.Total),
		ExDividends: t.ExDividends.Sub(u.ExDividends),
		Dividends:   t.Dividends.Sub(u.Dividends),
	}
}

// SymbolReturn holds the beginning and ending values of one symbol.
type SymbolReturn struct {
	Symbol         string
	Beginning, End Totals
}

// Change returns the gain of the symbol over the period, gross of
// commissions.
func (s SymbolReturn) Change() Totals { return s.End.Sub(s.Beginning) }

// Returns are the performance figures of a set of symbols between two
// cutoffs.
type Returns struct {
	From, To    date.Period
	Symbols     []SymbolReturn
	Beginning   Totals // portfolio totals at From, valued at the open
	End         Totals // portfolio totals at To, net of commissions
	Commissions Money  // commissions accumulated up to To

	TotalReturn        Percent
	ExDividendReturn   Percent
	DividendOnlyReturn Percent
}

// PeriodReturn computes the total, ex-dividend and dividend-only returns of
// symbols from the open of month from to the close of month to.
//
// Commissions accumulated up to the end cutoff are subtracted from the
// ending totals. A percentage whose beginning total is zero is NaN, and so is
// the dividend-only one that derives from it; the error then wraps
// ErrZeroBasis while every other field is still filled.
func (e *Engine) PeriodReturn(symbols []string, from, to date.Period) (Returns, error) {
	zero := M(0, e.currency)
	r := Returns{
		From:      from,
		To:        to,
		Beginning: Totals{zero, zero, zero},
		End:       Totals{zero, zero, zero},
	}
	for _, symbol := range symbols {
		s := SymbolReturn{
			Symbol: symbol,
			Beginning: Totals{
				Total:       e.ValueOf(symbol, from, Options{UseOpenPrice: true, IncludeDividends: true}),
				ExDividends: e.ValueOf(symbol, from, Options{UseOpenPrice: true}),
				Dividends:   e.ValueOf(symbol, from, Options{OnlyDividends: true}),
			},
			End: Totals{
				Total:       e.ValueOf(symbol, to, Options{IncludeDividends: true}),
				ExDividends: e.ValueOf(symbol, to, Options{}),
				Dividends:   e.ValueOf(symbol, to, Options{OnlyDividends: true}),
			},
		}
		r.Symbols = append(r.Symbols, s)
		r.Beginning.Total = r.Beginning.Total.Add(s.Beginning.Total)
		r.Beginning.ExDividends = r.Beginning.ExDividends.Add(s.Beginning.ExDividends)
		r.Beginning.Dividends = r.Beginning.Dividends.Add(s.Beginning.Dividends)
		r.End.Total = r.End.Total.Add(s.End.Total)
		r.End.ExDividends = r.End.ExDividends.Add(s.End.ExDividends)
		r.End.Dividends = r.End.Dividends.Add(s.End.Dividends)
	}
	r.Commissions = e.CommissionTotal(to)
	r.End.Total = r.End.Total.Sub(r.Commissions)
	r.End.ExDividends = r.End.ExDividends.Sub(r.Commissions)

	r.TotalReturn = percentChange(r.Beginning.Total, r.End.Total)
	r.ExDividendReturn = percentChange(r.Beginning.ExDividends, r.End.ExDividends)
	r.DividendOnlyReturn = r.TotalReturn - r.ExDividendReturn
	if r.TotalReturn.IsNaN() || r.ExDividendReturn.IsNaN() {
		return r, fmt.Errorf("cannot compute returns from %s to %s: %w", from, to, ErrZeroBasis)
	}
	return r, nil
}

// percentChange returns (end - begin) / begin * 100, or NaN when begin is zero.
func percentChange(begin, end Money) Percent {
	if begin.IsZero() {
		return Percent(math.NaN())
	}
	hundred := decimal.NewFromInt(100)
	ratio := end.Decimal().Sub(begin.Decimal()).Div(begin.Decimal()).Mul(hundred)
	return Percent(ratio.InexactFloat64())
}
