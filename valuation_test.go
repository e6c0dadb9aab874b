package beanfolio

import (
	"fmt"
	"sync"
	"testing"
)

// vtiFebruary is one VTI trade priced in February 2020 at 150 -> 160.
func vtiFebruary() *Engine {
	return engine(
		[]Entry{buy("2020-02-10", "VTI", 10, 150, 0)},
		[]PriceSeries{prices("VTI", point("2020-02-03", 150, 151), point("2020-02-28", 158, 160))},
	)
}

func TestValueOf(t *testing.T) {
	e := vtiFebruary()
	tests := []struct {
		name string
		opts Options
		want Money
	}{
		{"close", Options{}, USD(1600)},
		{"only returns", Options{OnlyReturns: true}, USD(100)},
		{"open", Options{UseOpenPrice: true}, USD(1500)},
		{"open only returns", Options{UseOpenPrice: true, OnlyReturns: true}, USD(0)},
		{"include dividends without any", Options{IncludeDividends: true}, USD(1600)},
		{"only dividends", Options{OnlyDividends: true}, USD(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.ValueOf("VTI", month(2020, 2), tc.opts); !got.Equal(tc.want) {
				t.Errorf("ValueOf(VTI, 2020-02, %+v) = %v, want %v", tc.opts, got, tc.want)
			}
		})
	}
}

func TestValueOfDividendSign(t *testing.T) {
	tests := []struct {
		name string
		cash float64
		want Money
	}{
		// the cash posting is added as recorded.
		{"negative cash posting", -25, USD(-25)},
		{"positive cash posting", 25, USD(25)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := engine([]Entry{dividend("2020-03-15", "VTI", tc.cash)}, nil)
			if got := e.ValueOf("VTI", month(2020, 3), Options{OnlyDividends: true}); !got.Equal(tc.want) {
				t.Errorf("ValueOf(VTI, 2020-03, only dividends) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValueOfWithDividends(t *testing.T) {
	e := engine(
		[]Entry{
			buy("2020-02-10", "VTI", 10, 150, 0),
			dividend("2020-03-15", "VTI", 25),
		},
		[]PriceSeries{prices("VTI", point("2020-03-02", 160, 170))},
	)
	tests := []struct {
		name string
		upTo int
		opts Options
		want Money
	}{
		{"before the dividend", 2, Options{IncludeDividends: true}, USD(0)}, // no price in February
		{"include dividends", 3, Options{IncludeDividends: true}, USD(1725)},
		{"exclude dividends", 3, Options{}, USD(1700)},
		{"only dividends", 3, Options{OnlyDividends: true}, USD(25)},
		{"only dividends wins over only returns", 3, Options{OnlyDividends: true, OnlyReturns: true}, USD(25)},
		{"only returns with dividends", 3, Options{OnlyReturns: true, IncludeDividends: true}, USD(125)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.ValueOf("VTI", month(2020, tc.upTo), tc.opts); !got.Equal(tc.want) {
				t.Errorf("ValueOf() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValueOfOnlyDividendsIgnoresPrices(t *testing.T) {
	entries := []Entry{buy("2020-02-10", "VTI", 10, 150, 0), dividend("2020-03-15", "VTI", 25)}
	with := engine(entries, []PriceSeries{prices("VTI", point("2020-03-02", 160, 170))})
	without := engine(entries, nil)

	o := Options{OnlyDividends: true}
	a, b := with.ValueOf("VTI", month(2020, 3), o), without.ValueOf("VTI", month(2020, 3), o)
	if !a.Equal(b) {
		t.Errorf("only dividends depends on prices: %v with, %v without", a, b)
	}
}

func TestValueOfMissingPrice(t *testing.T) {
	e := engine([]Entry{buy("2020-02-10", "VTI", 10, 150, 0)}, nil)
	if got := e.ValueOf("VTI", month(2020, 2), Options{}); !got.IsZero() {
		t.Errorf("ValueOf() without prices = %v, want 0", got)
	}
	if got := e.Position("VTI", month(2020, 2)); !got.Equal(Q(10)) {
		t.Errorf("Position() = %v, want 10", got)
	}
}

func TestValueOfNoTransactions(t *testing.T) {
	e := engine(
		[]Entry{buy("2020-05-10", "BND", 10, 80, 1)},
		[]PriceSeries{prices("VTI", point("2020-02-03", 150, 160))},
	)
	for _, inc := range []bool{false, true} {
		for _, only := range []bool{false, true} {
			for _, ret := range []bool{false, true} {
				for _, open := range []bool{false, true} {
					o := Options{IncludeDividends: inc, OnlyDividends: only, OnlyReturns: ret, UseOpenPrice: open}
					t.Run(fmt.Sprintf("%+v", o), func(t *testing.T) {
						got := e.ValueOf("VTI", month(2020, 2), o)
						if !got.IsZero() {
							t.Errorf("ValueOf() = %v, want 0", got)
						}
						if got.String() != "$0.00" {
							t.Errorf("ValueOf() = %q, want $0.00", got)
						}
					})
				}
			}
		}
	}
}

func TestValueOfSoldOut(t *testing.T) {
	e := engine(
		[]Entry{
			buy("2020-01-10", "VTI", 10, 150, 0),
			buy("2020-02-10", "VTI", -10, 155, 0),
		},
		[]PriceSeries{prices("VTI", point("2020-02-03", 150, 160))},
	)
	if got := e.ValueOf("VTI", month(2020, 2), Options{}); !got.IsZero() {
		t.Errorf("ValueOf() of a closed position = %v, want 0", got)
	}
}

func TestValueOfIsIdempotent(t *testing.T) {
	e := vtiFebruary()
	o := Options{IncludeDividends: true, OnlyReturns: true}
	first := e.ValueOf("VTI", month(2020, 2), o)
	for range 3 {
		if got := e.ValueOf("VTI", month(2020, 2), o); !got.Equal(first) {
			t.Fatalf("ValueOf() = %v, then %v", first, got)
		}
	}
}

func TestValueOfCutoffPolicy(t *testing.T) {
	entries := []Entry{buy("2020-11-20", "VTI", 10, 150, 0)}
	series := []PriceSeries{prices("VTI", point("2021-03-01", 190, 200))}

	literal := engine(entries, series)
	chrono := engine(entries, series, WithCutoff(Chronological))
	if got := literal.ValueOf("VTI", month(2021, 3), Options{}); !got.IsZero() {
		t.Errorf("literal ValueOf() = %v, want 0", got)
	}
	if got := chrono.ValueOf("VTI", month(2021, 3), Options{}); !got.Equal(USD(2000)) {
		t.Errorf("chronological ValueOf() = %v, want $2,000.00", got)
	}
	if literal.Cutoff() != Literal || chrono.Cutoff() != Chronological {
		t.Error("Cutoff() does not report the engine policy")
	}
}

func TestValueOfCurrency(t *testing.T) {
	e := engine([]Entry{buy("2020-02-10", "VTI", 10, 150, 0)}, nil, WithCurrency("EUR"))
	if got := e.ValueOf("VTI", month(2020, 2), Options{}).Currency(); got != "EUR" {
		t.Errorf("currency = %s, want EUR", got)
	}
}

func TestCommissionTotal(t *testing.T) {
	e := engine([]Entry{
		buy("2020-01-10", "VTI", 10, 150, 1),
		charge("2020-03-05", 2.5),
		buy("2020-06-10", "BND", 10, 80, 1),
		charge("2020-12-31", 4),
	}, nil)

	tests := []struct {
		month int
		want  Money
	}{
		{1, USD(1)},
		{2, USD(1)},
		{3, USD(3.5)},
		{6, USD(4.5)},
		{12, USD(8.5)},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.month), func(t *testing.T) {
			if got := e.CommissionTotal(month(2020, tc.month)); !got.Equal(tc.want) {
				t.Errorf("CommissionTotal(2020-%02d) = %v, want %v", tc.month, got, tc.want)
			}
		})
	}

	// monotonic within a year.
	prev := e.CommissionTotal(month(2020, 1))
	for m := 2; m <= 12; m++ {
		cur := e.CommissionTotal(month(2020, m))
		if cur.LessThan(prev) {
			t.Errorf("CommissionTotal(2020-%02d) = %v < %v", m, cur, prev)
		}
		prev = cur
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	e := engine(
		[]Entry{
			buy("2020-01-02", "VTI", 10, 100, 1),
			dividend("2020-02-15", "VTI", 25),
			buy("2020-03-02", "BND", 5, 80, 1),
		},
		[]PriceSeries{
			prices("VTI", point("2020-01-02", 100, 101), point("2020-03-31", 110, 111)),
			prices("BND", point("2020-03-02", 80, 81)),
		},
	)
	symbols := []string{"VTI", "BND"}
	wantValue := e.ValueOf("VTI", month(2020, 3), Options{IncludeDividends: true})
	wantFees := e.CommissionTotal(month(2020, 3))
	want, _ := e.PeriodReturn(symbols, month(2020, 1), month(2020, 3))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.ValueOf("VTI", month(2020, 3), Options{IncludeDividends: true}); !got.Equal(wantValue) {
				t.Errorf("ValueOf() = %v, want %v", got, wantValue)
			}
			if got := e.CommissionTotal(month(2020, 3)); !got.Equal(wantFees) {
				t.Errorf("CommissionTotal() = %v, want %v", got, wantFees)
			}
			got, _ := e.PeriodReturn(symbols, month(2020, 1), month(2020, 3))
			if !got.End.Total.Equal(want.End.Total) || !got.TotalReturn.Equal(want.TotalReturn) {
				t.Errorf("PeriodReturn() = %v %v, want %v %v", got.End.Total, got.TotalReturn, want.End.Total, want.TotalReturn)
			}
		}()
	}
	wg.Wait()
}
