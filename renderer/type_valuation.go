package renderer

import (
	"github.com/etnz/beanfolio"
	"github.com/etnz/beanfolio/date"
)

// Valuation is the value of each holding at a monthly cutoff.
type Valuation struct {
	Month    date.Period
	Cutoff   beanfolio.CutoffPolicy
	Currency string
	// Holdings is one line per symbol, in the order requested.
	Holdings []ValuationHolding
	// Commissions accumulated up to Month, netted from Total.
	Commissions beanfolio.Money
	Total       beanfolio.Money
}

// ValuationHolding is the value of a single symbol.
type ValuationHolding struct {
	Symbol    string
	Position  beanfolio.Quantity
	Price     beanfolio.Money
	Dividends beanfolio.Money
	Value     beanfolio.Money
}

// NewValuation values symbols as of upTo with the engine.
//
// Commissions are netted from the total once, unless o reports dividends only.
func NewValuation(e *beanfolio.Engine, symbols []string, upTo date.Period, o beanfolio.Options) *Valuation {
	zero := beanfolio.M(0, e.Currency())
	v := &Valuation{
		Month:       upTo,
		Cutoff:      e.Cutoff(),
		Currency:    e.Currency(),
		Commissions: zero,
		Total:       zero,
	}
	for _, symbol := range symbols {
		h := ValuationHolding{
			Symbol:    symbol,
			Position:  e.Position(symbol, upTo),
			Price:     e.SharePrice(symbol, upTo, o),
			Dividends: e.Dividends(symbol, upTo),
			Value:     e.ValueOf(symbol, upTo, o),
		}
		v.Holdings = append(v.Holdings, h)
		v.Total = v.Total.Add(h.Value)
	}
	if !o.OnlyDividends {
		v.Commissions = e.CommissionTotal(upTo)
		v.Total = v.Total.Sub(v.Commissions)
	}
	return v
}
