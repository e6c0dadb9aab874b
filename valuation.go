package beanfolio

import (
	"github.com/etnz/beanfolio/date"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency prices are quoted in unless WithCurrency
// says otherwise.
const DefaultCurrency = "USD"

// Options selects what ValueOf reports.
type Options struct {
	// IncludeDividends adds accumulated dividend cash to the position value.
	IncludeDividends bool
	// OnlyDividends reports accumulated dividend cash alone.
	OnlyDividends bool
	// OnlyReturns values each share at the price change within the cutoff
	// month (close - open) instead of its close.
	OnlyReturns bool
	// UseOpenPrice values each share at the cutoff month's open instead of
	// its close.
	UseOpenPrice bool
}

// Engine values positions as of monthly cutoffs.
//
// An Engine has no mutable state: every method is a pure function of the
// journal and the price index it was built with, and can be called
// concurrently.
type Engine struct {
	journal  *Journal
	prices   *PriceIndex
	cutoff   CutoffPolicy
	currency string
}

// EngineOption configures NewEngine.
type EngineOption func(*Engine)

// WithCutoff sets how transaction dates are compared to cutoffs.
func WithCutoff(c CutoffPolicy) EngineOption { return func(e *Engine) { e.cutoff = c } }

// WithCurrency sets the currency of the values returned by the engine.
func WithCurrency(cur string) EngineOption { return func(e *Engine) { e.currency = cur } }

// NewEngine creates a valuation engine.
func NewEngine(j *Journal, prices *PriceIndex, opts ...EngineOption) *Engine {
	e := &Engine{journal: j, prices: prices, cutoff: Literal, currency: DefaultCurrency}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Cutoff returns the cutoff policy in use.
func (e *Engine) Cutoff() CutoffPolicy { return e.cutoff }

// Currency returns the currency of the values.
func (e *Engine) Currency() string { return e.currency }

// Position returns the number of shares of symbol held up to the cutoff.
func (e *Engine) Position(symbol string, upTo date.Period) Quantity {
	var q Quantity
	for _, t := range e.journal.stocks[symbol] {
		if e.cutoff.Includes(upTo, t.Date) {
			q = q.Add(t.Quantity)
		}
	}
	return q
}

// Dividends returns the dividend cash accumulated for symbol up to the
// cutoff, signed as the cash postings in the ledger.
func (e *Engine) Dividends(symbol string, upTo date.Period) Money {
	total := decimal.Zero
	for _, d := range e.journal.dividends[symbol] {
		if e.cutoff.Includes(upTo, d.Date) {
			total = total.Add(d.Cash.Number)
		}
	}
	return M(total, e.currency)
}

// SharePrice returns the per-share price ValueOf uses for symbol in upTo.
func (e *Engine) SharePrice(symbol string, upTo date.Period, o Options) Money {
	open, close := e.prices.PricesFor(symbol, upTo)
	price := close
	if o.UseOpenPrice {
		price = open
	}
	if o.OnlyReturns {
		price = price.Sub(open)
	}
	return M(price, e.currency)
}

// ValueOf returns the value of the symbol position up to the cutoff.
//
// The value is quantity * price, plus dividend cash when requested. It is
// gross of commissions: see CommissionTotal. Missing prices count as zero and
// never make ValueOf fail.
func (e *Engine) ValueOf(symbol string, upTo date.Period, o Options) Money {
	value := M(0, e.currency)
	if !o.OnlyDividends {
		if q := e.Position(symbol, upTo); !q.IsZero() {
			value = e.SharePrice(symbol, upTo, o).Mul(q)
		}
	}
	if o.IncludeDividends || o.OnlyDividends {
		value = value.Add(e.Dividends(symbol, upTo))
	}
	return value
}

// CommissionTotal returns the commissions paid up to the cutoff, across all
// symbols. Fees paid are positive.
func (e *Engine) CommissionTotal(upTo date.Period) Money {
	total := decimal.Zero
	for _, c := range e.journal.commissions {
		if e.cutoff.Includes(upTo, c.Date) {
			total = total.Add(c.Amount.Number)
		}
	}
	return M(total, e.currency)
}
