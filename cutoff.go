package beanfolio

import (
	"fmt"
	"strings"

	"github.com/etnz/beanfolio/date"
)

// CutoffPolicy decides whether a transaction dated on is included when
// valuing up to a month.
type CutoffPolicy int

const (
	// Literal compares month and year independently: a transaction is
	// included when its month is <= the cutoff month AND its year is <= the
	// cutoff year. A November 2020 trade is therefore excluded from a March
	// 2021 cutoff. This reproduces the historical figures of the ledger
	// reports and is the default.
	Literal CutoffPolicy = iota
	// Chronological includes every transaction dated on or before the last
	// day of the cutoff month.
	Chronological
)

func (c CutoffPolicy) String() string {
	switch c {
	case Literal:
		return "literal"
	case Chronological:
		return "chronological"
	default:
		return "unknown"
	}
}

// ParseCutoffPolicy parses "literal" or "chronological".
func ParseCutoffPolicy(s string) (CutoffPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return Literal, nil
	case "chronological", "chrono":
		return Chronological, nil
	default:
		return Literal, fmt.Errorf("unknown cutoff policy %q", s)
	}
}

// Includes reports whether a transaction dated on counts when valuing up to
// the month upTo.
func (c CutoffPolicy) Includes(upTo date.Period, on date.Date) bool {
	if c == Chronological {
		return !on.Period().After(upTo)
	}
	return upTo.Month >= on.Month() && upTo.Year >= on.Year()
}

// MarshalText implements encoding.TextMarshaler.
func (c CutoffPolicy) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CutoffPolicy) UnmarshalText(b []byte) error {
	p, err := ParseCutoffPolicy(string(b))
	if err != nil {
		return err
	}
	*c = p
	return nil
}
