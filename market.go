package beanfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/beanfolio/date"
	"github.com/shopspring/decimal"
)

// PricePoint is one day of market data for a symbol.
//
// Only Open and Close are used for valuation, the other fields are carried
// as provided.
type PricePoint struct {
	Date     date.Date       `json:"date"`
	Label    string          `json:"label,omitempty"`
	Open     decimal.Decimal `json:"open"`
	High     decimal.Decimal `json:"high"`
	Low      decimal.Decimal `json:"low"`
	Close    decimal.Decimal `json:"close"`
	AdjClose decimal.Decimal `json:"adjClose"`
	Volume   decimal.Decimal `json:"volume"`
}

// PriceSeries is the daily history of one symbol.
type PriceSeries struct {
	Symbol     string       `json:"symbol"`
	Historical []PricePoint `json:"historical"`
}

// historicalListPath locates the series list in a multi-symbol provider
// response.
const historicalListPath = "$.historicalStockList"

// DecodePrices reads price series from r.
//
// It accepts a JSON array of series, a provider envelope holding that array
// under "historicalStockList", or a single series object.
func DecodePrices(r io.Reader) ([]PriceSeries, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode prices: %w", err)
	}
	return pricesFromJSON(doc)
}

func pricesFromJSON(doc any) ([]PriceSeries, error) {
	if obj, ok := doc.(map[string]any); ok {
		if len(obj) == 0 {
			// unknown symbols get an empty object
			return nil, nil
		}
		if _, isEnvelope := obj["historicalStockList"]; isEnvelope {
			list, err := jsonpath.Get(historicalListPath, doc)
			if err != nil {
				return nil, fmt.Errorf("cannot read %s: %w", historicalListPath, err)
			}
			doc = list
		} else {
			doc = []any{obj}
		}
	}
	// decode the generic tree again into typed series
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var series []PriceSeries
	if err := json.Unmarshal(raw, &series); err != nil {
		return nil, fmt.Errorf("cannot decode price series: %w", err)
	}
	return series, nil
}

// EncodePrices writes the series as a JSON array.
func EncodePrices(w io.Writer, series []PriceSeries) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(series)
}

// PriceIndex organizes price series by symbol and date.
//
// It is read-only after NewPriceIndex and safe for concurrent use.
type PriceIndex struct {
	points map[string][]PricePoint // sorted by date
}

// NewPriceIndex indexes the series. Several series for the same symbol are
// merged.
func NewPriceIndex(series []PriceSeries) *PriceIndex {
	x := &PriceIndex{points: make(map[string][]PricePoint)}
	for _, s := range series {
		x.points[s.Symbol] = append(x.points[s.Symbol], s.Historical...)
	}
	for _, pts := range x.points {
		slices.SortStableFunc(pts, func(a, b PricePoint) int { return a.Date.Compare(b.Date) })
	}
	return x
}

// month returns the points of symbol within the month p.
func (x *PriceIndex) month(symbol string, p date.Period) []PricePoint {
	pts := x.points[symbol]
	first, last := p.First(), p.Last()
	lo := sort.Search(len(pts), func(i int) bool { return !pts[i].Date.Before(first) })
	hi := sort.Search(len(pts), func(i int) bool { return pts[i].Date.After(last) })
	if lo >= hi {
		return nil
	}
	return pts[lo:hi]
}

// PricesFor returns the open of the first trading day and the close of the
// last trading day of symbol in the month p.
//
// Missing data is not an error: both prices are zero when there is no point
// for that month.
func (x *PriceIndex) PricesFor(symbol string, p date.Period) (open, close decimal.Decimal) {
	pts := x.month(symbol, p)
	if len(pts) == 0 {
		return decimal.Zero, decimal.Zero
	}
	return pts[0].Open, pts[len(pts)-1].Close
}

// Has reports whether there is at least one price point for symbol in p.
func (x *PriceIndex) Has(symbol string, p date.Period) bool {
	return len(x.month(symbol, p)) > 0
}

// Symbols returns the sorted indexed symbols.
func (x *PriceIndex) Symbols() []string { return slices.Sorted(maps.Keys(x.points)) }

// Span returns the first and last dates covered by any series. ok is false
// for an empty index.
func (x *PriceIndex) Span() (first, last date.Date, ok bool) {
	for _, pts := range x.points {
		if len(pts) == 0 {
			continue
		}
		if !ok || pts[0].Date.Before(first) {
			first = pts[0].Date
		}
		if !ok || pts[len(pts)-1].Date.After(last) {
			last = pts[len(pts)-1].Date
		}
		ok = true
	}
	return
}
