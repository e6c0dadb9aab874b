package date

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of months.
type Range struct{ From, To Period }

// NewRange returns the range between two months, whatever their order.
func NewRange(a, b Period) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{From: a, To: b}
}

// Contains return true if the month is included in the range (boundaries included).
func (r Range) Contains(p Period) bool { return !p.Before(r.From) && !p.After(r.To) }

// Len returns the number of months in the range.
func (r Range) Len() int {
	n := (r.To.Year-r.From.Year)*12 + int(r.To.Month) - int(r.From.Month) + 1
	return max(n, 0)
}

// Months iterates over every month of the range in chronological order.
func (r Range) Months() iter.Seq[Period] {
	return func(yield func(Period) bool) {
		for p := r.From; !p.After(r.To); p = p.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// String returns "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
