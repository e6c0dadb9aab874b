package beanfolio

import (
	"fmt"
	"math"
)

// Percent is a percentage value: 10 means 10%.
//
// NaN is a legal value and means the percentage is undefined.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	if p.IsNaN() || q.IsNaN() {
		return p.IsNaN() && q.IsNaN()
	}
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsNaN reports whether the percentage is undefined.
func (p Percent) IsNaN() bool { return math.IsNaN(float64(p)) }

func (p Percent) String() string {
	if p.IsNaN() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	if p.IsNaN() {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
