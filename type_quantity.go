package beanfolio

import "github.com/shopspring/decimal"

// numeric lists the literal types accepted by the Q and M constructors.
type numeric interface {
	int | int32 | int64 | uint | uint32 | uint64 | float32 | float64 | decimal.Decimal
}

func toDecimal[T numeric](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int64:
		return decimal.NewFromInt(v)
	case int32:
		return decimal.NewFromInt32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint:
		return decimal.NewFromUint64(uint64(v))
	}
	panic("unreachable")
}

// Quantity is a signed number of shares: purchases are positive, sales
// negative. The zero value is an empty position.
type Quantity struct {
	shares decimal.Decimal
}

// Q returns a quantity of value shares.
func Q[T numeric](value T) Quantity { return Quantity{shares: toDecimal(value)} }

func (q Quantity) Decimal() decimal.Decimal { return q.shares }
func (q Quantity) Equal(r Quantity) bool    { return q.shares.Equal(r.shares) }
func (q Quantity) Add(r Quantity) Quantity  { return Quantity{shares: q.shares.Add(r.shares)} }
func (q Quantity) Sub(r Quantity) Quantity  { return Quantity{shares: q.shares.Sub(r.shares)} }
func (q Quantity) Neg() Quantity            { return Quantity{shares: q.shares.Neg()} }
func (q Quantity) IsZero() bool             { return q.shares.IsZero() }
func (q Quantity) IsNegative() bool         { return q.shares.IsNegative() }
func (q Quantity) String() string           { return q.shares.String() }

func (q Quantity) MarshalJSON() ([]byte, error)  { return q.shares.MarshalJSON() }
func (q *Quantity) UnmarshalJSON(b []byte) error { return q.shares.UnmarshalJSON(b) }
