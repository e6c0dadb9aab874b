package beanfolio

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact amount in a currency. An empty currency is a wildcard:
// it takes the currency of whatever it is added to, so the zero value is a
// neutral element.
type Money struct {
	amount decimal.Decimal
	cur    string
}

// M returns value units of currency.
func M[T numeric](value T, currency string) Money {
	return Money{amount: toDecimal(value), cur: currency}
}

// String formats the amount with the currency's symbol and grouping, e.g.
// "$1,600.00" or "-$25.00". Amounts without a currency print as plain
// two-decimal numbers.
func (m Money) String() string {
	if m.cur == "" {
		return m.amount.StringFixed(2)
	}
	c := money.GetCurrency(m.cur)
	if c == nil {
		return m.amount.StringFixed(2) + " " + m.cur
	}
	minor := m.amount.Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(minor.IntPart())
}

// SignedString is String with an explicit "+" for gains. Zero prints as "-".
func (m Money) SignedString() string {
	switch m.amount.Sign() {
	case 0:
		return "-"
	case 1:
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.amount }
func (m Money) IsZero() bool             { return m.amount.IsZero() }
func (m Money) Equal(n Money) bool       { return m.cur == n.cur && m.amount.Equal(n.amount) }
func (m Money) LessThan(n Money) bool    { return m.amount.LessThan(n.amount) }
func (m Money) Neg() Money               { return Money{amount: m.amount.Neg(), cur: m.cur} }

// AsFloat is an approximation meant for charts.
func (m Money) AsFloat() float64 { return m.amount.InexactFloat64() }

// Mul returns the value of q shares priced at m.
func (m Money) Mul(q Quantity) Money { return Money{amount: m.amount.Mul(q.shares), cur: m.cur} }

func (m Money) Add(n Money) Money { return Money{amount: m.amount.Add(n.amount), cur: common(m, n)} }
func (m Money) Sub(n Money) Money { return Money{amount: m.amount.Sub(n.amount), cur: common(m, n)} }

// common panics on mixed currencies: the engine only ever sums amounts of
// its reference currency.
func common(a, b Money) string {
	switch {
	case a.cur == "":
		return b.cur
	case b.cur == "", a.cur == b.cur:
		return a.cur
	}
	panic(fmt.Sprintf("currency mismatch: %s and %s", a.cur, b.cur))
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.amount)
	return w.MarshalJSON()
}
