// Package date provides the calendar types used to date ledger transactions
// and to express monthly valuation cutoffs.
package date

import (
	"cmp"
	"fmt"
	"time"
)

// Layout is the ISO-8601 form dates are written in. Parsing also accepts
// single-digit months and days ("2025-7-1").
const Layout = "2006-01-02"

const lenientLayout = "2006-1-2"

// Date is a calendar day, without time or location. Its zero value is
// reported by IsZero and is not a valid day.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the date for year, month and day, normalized the way
// time.Date does it: New(2020, 2, 30) is March 1st.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Today returns the current local date.
func Today() Date { return New(time.Now().Date()) }

func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Period() Period     { return Period{Year: d.y, Month: d.m} }
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }
func (d Date) After(x Date) bool  { return d.Compare(x) > 0 }

// Compare orders dates chronologically, for slices.SortFunc.
func (d Date) Compare(x Date) int {
	if c := cmp.Compare(d.y, x.y); c != 0 {
		return c
	}
	if c := cmp.Compare(d.m, x.m); c != 0 {
		return c
	}
	return cmp.Compare(d.d, x.d)
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) String() string { return d.Time().Format(Layout) }

// Parse reads a date in Layout, or its lenient single-digit form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(lenientLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", s, err)
	}
	return New(t.Date()), nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MarshalText makes dates plain strings in JSON and TOML.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
