package beanfolio

import (
	"errors"
	"testing"
)

func TestPeriodReturn(t *testing.T) {
	// 10 VTI bought in January, opened at 100, closed in March at 111 with
	// 10 of commissions: 1000 -> 1100.
	e := engine(
		[]Entry{buy("2020-01-02", "VTI", 10, 100, 10)},
		[]PriceSeries{prices("VTI",
			point("2020-01-02", 100, 101),
			point("2020-03-31", 110, 111),
		)},
	)
	r, err := e.PeriodReturn([]string{"VTI"}, month(2020, 1), month(2020, 3))
	if err != nil {
		t.Fatalf("PeriodReturn() error = %v", err)
	}
	if !r.Beginning.Total.Equal(USD(1000)) || !r.End.Total.Equal(USD(1100)) {
		t.Errorf("totals = %v -> %v, want $1,000.00 -> $1,100.00", r.Beginning.Total, r.End.Total)
	}
	if !r.Commissions.Equal(USD(10)) {
		t.Errorf("Commissions = %v, want $10.00", r.Commissions)
	}
	if !r.TotalReturn.Equal(10) {
		t.Errorf("TotalReturn = %v, want 10%%", r.TotalReturn)
	}
	if !r.ExDividendReturn.Equal(10) || !r.DividendOnlyReturn.Equal(0) {
		t.Errorf("ExDividendReturn = %v, DividendOnlyReturn = %v, want 10%%, 0%%", r.ExDividendReturn, r.DividendOnlyReturn)
	}
	if len(r.Symbols) != 1 {
		t.Fatalf("len(Symbols) = %d, want 1", len(r.Symbols))
	}
	// per symbol figures are gross of commissions.
	if got := r.Symbols[0].Change().Total; !got.Equal(USD(110)) {
		t.Errorf("VTI change = %v, want $110.00", got)
	}
}

func TestPeriodReturnWithDividends(t *testing.T) {
	e := engine(
		[]Entry{
			buy("2020-01-02", "VTI", 10, 100, 0),
			dividend("2020-02-15", "VTI", 50),
			buy("2020-01-02", "BND", 10, 100, 0),
		},
		[]PriceSeries{
			prices("VTI", point("2020-01-02", 100, 100), point("2020-03-31", 100, 110)),
			prices("BND", point("2020-01-02", 100, 100), point("2020-03-31", 100, 100)),
		},
	)
	r, err := e.PeriodReturn([]string{"VTI", "BND"}, month(2020, 1), month(2020, 3))
	if err != nil {
		t.Fatalf("PeriodReturn() error = %v", err)
	}
	// begin 2000, end ex-dividends 2100, end with dividends 2150.
	tests := []struct {
		name string
		got  Percent
		want Percent
	}{
		{"total", r.TotalReturn, 7.5},
		{"ex-dividends", r.ExDividendReturn, 5},
		{"dividends only", r.DividendOnlyReturn, 2.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
	if !r.End.Dividends.Equal(USD(50)) {
		t.Errorf("End.Dividends = %v, want $50.00", r.End.Dividends)
	}
}

func TestPeriodReturnZeroBasis(t *testing.T) {
	e := engine(
		[]Entry{buy("2020-03-02", "VTI", 10, 100, 0)},
		[]PriceSeries{prices("VTI", point("2020-01-02", 90, 95), point("2020-03-31", 100, 110))},
	)
	r, err := e.PeriodReturn([]string{"VTI"}, month(2020, 1), month(2020, 3))
	if !errors.Is(err, ErrZeroBasis) {
		t.Fatalf("PeriodReturn() error = %v, want ErrZeroBasis", err)
	}
	if !r.TotalReturn.IsNaN() || !r.ExDividendReturn.IsNaN() || !r.DividendOnlyReturn.IsNaN() {
		t.Errorf("returns = %v, %v, %v, want NaN", r.TotalReturn, r.ExDividendReturn, r.DividendOnlyReturn)
	}
	// values are still reported.
	if !r.End.Total.Equal(USD(1100)) {
		t.Errorf("End.Total = %v, want $1,100.00", r.End.Total)
	}
	if got := r.TotalReturn.String(); got != "n/a" {
		t.Errorf("TotalReturn.String() = %q, want n/a", got)
	}
}

func TestPeriodReturnDividendOnlyBasis(t *testing.T) {
	// a 50 dividend is cashed in January, shares are only bought in
	// February: the total return has a basis, the ex-dividend one has not.
	e := engine(
		[]Entry{
			dividend("2020-01-15", "VTI", 50),
			buy("2020-02-02", "VTI", 10, 100, 0),
		},
		[]PriceSeries{prices("VTI", point("2020-01-02", 100, 100), point("2020-03-31", 110, 110))},
	)
	r, err := e.PeriodReturn([]string{"VTI"}, month(2020, 1), month(2020, 3))
	if !errors.Is(err, ErrZeroBasis) {
		t.Fatalf("PeriodReturn() error = %v, want ErrZeroBasis", err)
	}
	if !r.Beginning.Total.Equal(USD(50)) || !r.Beginning.ExDividends.Equal(USD(0)) {
		t.Errorf("Beginning = %v / %v, want $50.00 / $0.00", r.Beginning.Total, r.Beginning.ExDividends)
	}
	if !r.End.Total.Equal(USD(1150)) {
		t.Errorf("End.Total = %v, want $1,150.00", r.End.Total)
	}
	// (1150 - 50) / 50
	if !r.TotalReturn.Equal(2200) {
		t.Errorf("TotalReturn = %v, want 2200%%", r.TotalReturn)
	}
	if !r.ExDividendReturn.IsNaN() || !r.DividendOnlyReturn.IsNaN() {
		t.Errorf("ExDividendReturn, DividendOnlyReturn = %v, %v, want NaN", r.ExDividendReturn, r.DividendOnlyReturn)
	}
}

func TestPeriodReturnNoSymbols(t *testing.T) {
	e := engine(nil, nil)
	if _, err := e.PeriodReturn(nil, month(2020, 1), month(2020, 3)); !errors.Is(err, ErrZeroBasis) {
		t.Errorf("PeriodReturn() error = %v, want ErrZeroBasis", err)
	}
}
