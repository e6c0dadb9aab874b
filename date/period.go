package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar month used as a valuation cutoff.
//
// A Period is a marker, not a range: valuing "up to" a Period means
// everything from the beginning of the ledger through the end of that month.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod returns the normalized Period for year and month, so that
// NewPeriod(2020, 13) is January 2021.
func NewPeriod(year int, month time.Month) Period {
	return New(year, month, 1).Period()
}

// ThisMonth returns the current calendar month.
func ThisMonth() Period { return Today().Period() }

// First returns the first day of the month.
func (p Period) First() Date { return New(p.Year, p.Month, 1) }

// Last returns the last day of the month.
func (p Period) Last() Date { return New(p.Year, p.Month+1, 0) }

// Next returns the following month.
func (p Period) Next() Period { return NewPeriod(p.Year, p.Month+1) }

// Prev returns the previous month.
func (p Period) Prev() Period { return NewPeriod(p.Year, p.Month-1) }

// Contains reports whether d falls within the month.
func (p Period) Contains(d Date) bool { return d.y == p.Year && d.m == p.Month }

// Before reports whether p is chronologically before q.
func (p Period) Before(q Period) bool {
	return p.Year < q.Year || (p.Year == q.Year && p.Month < q.Month)
}

// After reports whether p is chronologically after q.
func (p Period) After(q Period) bool { return q.Before(p) }

// IsZero reports whether p is the zero Period.
func (p Period) IsZero() bool { return p == Period{} }

// Time returns midnight UTC on the first day of the month.
func (p Period) Time() time.Time { return p.First().Time() }

// String returns the month in "2006-01" format.
func (p Period) String() string { return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month)) }

// ParsePeriod parses a month as "2020-03", "2020-3" or a full date, in which
// case the month containing that date is returned.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if d, err := Parse(s); err == nil {
		return d.Period(), nil
	}
	on, err := time.Parse("2006-1", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q want format %q: %w", s, "2006-01", err)
	}
	return Period{Year: on.Year(), Month: on.Month()}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(b []byte) error {
	q, err := ParsePeriod(string(b))
	if err != nil {
		return err
	}
	*p = q
	return nil
}
