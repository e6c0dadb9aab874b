package beanfolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/beanfolio/date"
)

const (
	// DefaultConverterURL is the bean-to-json conversion service.
	DefaultConverterURL = "https://us-central1-plain-text-accounting.cloudfunctions.net/converter"
	// DefaultPricesURL is the financialmodelingprep API root.
	DefaultPricesURL = "https://financialmodelingprep.com/api/v3"
	// APIKeyEnv is the environment variable holding the prices API key.
	APIKeyEnv = "FMP_API_KEY"

	beancountContentType = "application/vnd+beancount"
)

// ErrAPIKeyMissing is returned when prices are fetched without an API key.
var ErrAPIKeyMissing = errors.New(APIKeyEnv + " not set")

// FetchLedger converts beancount source text into a ledger export using the
// remote converter.
func FetchLedger(ctx context.Context, client *http.Client, converterURL string, beancount io.Reader) (*Ledger, error) {
	if converterURL == "" {
		converterURL = DefaultConverterURL
	}
	addr := strings.TrimSuffix(converterURL, "/") + "/bean_to_json"
	var l Ledger
	if err := postJSON(ctx, client, addr, beancountContentType, beancount, &l); err != nil {
		return nil, fmt.Errorf("cannot convert ledger: %w", err)
	}
	return &l, nil
}

// FetchPrices returns the daily prices of symbols between from and to
// (inclusive) from the financialmodelingprep historical API.
func FetchPrices(ctx context.Context, client *http.Client, baseURL, apiKey string, symbols []string, from, to date.Date) ([]PriceSeries, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}
	if len(symbols) == 0 {
		return nil, nil
	}
	if baseURL == "" {
		baseURL = DefaultPricesURL
	}
	q := url.Values{}
	q.Set("from", from.String())
	q.Set("to", to.String())
	q.Set("apikey", apiKey)
	escaped := make([]string, len(symbols))
	for i, s := range symbols {
		escaped[i] = url.PathEscape(s)
	}
	addr := fmt.Sprintf("%s/historical-price-full/%s?%s",
		strings.TrimSuffix(baseURL, "/"), strings.Join(escaped, ","), q.Encode())

	var doc any
	if err := getJSON(ctx, client, addr, &doc); err != nil {
		return nil, fmt.Errorf("cannot fetch prices for %s: %w", strings.Join(symbols, ","), err)
	}
	return pricesFromJSON(doc)
}
