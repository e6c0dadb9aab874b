package beanfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/etnz/beanfolio/date"
	"github.com/rs/zerolog"
)

// Snapshot is a ledger export and the price series it is valued with.
type Snapshot struct {
	Ledger *Ledger
	Prices []PriceSeries
}

// LoadOptions tells Load where to get the ledger and the prices.
//
// The ledger comes from LedgerFile (a JSON export) or, when empty, from
// BeancountFile converted by the remote converter. Prices come from
// PricesFile or, when empty, from the prices API.
type LoadOptions struct {
	Client *http.Client
	Logger zerolog.Logger

	LedgerFile    string
	BeancountFile string
	ConverterURL  string

	PricesFile string
	PricesURL  string
	APIKey     string
	Symbols    []string
	From, To   date.Date
}

// Load acquires the ledger and the prices concurrently and returns when both
// are available.
func Load(ctx context.Context, o LoadOptions) (*Snapshot, error) {
	if o.Client == nil {
		o.Client = http.DefaultClient
	}
	var (
		wg                  sync.WaitGroup
		snap                Snapshot
		ledgerErr, priceErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		start := time.Now()
		snap.Ledger, ledgerErr = loadLedger(ctx, o)
		if ledgerErr == nil {
			o.Logger.Debug().Int("entries", len(snap.Ledger.Entries)).Dur("elapsed", time.Since(start)).Msg("ledger loaded")
		}
	}()
	go func() {
		defer wg.Done()
		start := time.Now()
		snap.Prices, priceErr = loadPrices(ctx, o)
		if priceErr == nil {
			o.Logger.Debug().Int("series", len(snap.Prices)).Dur("elapsed", time.Since(start)).Msg("prices loaded")
		}
	}()
	wg.Wait()
	if err := errors.Join(ledgerErr, priceErr); err != nil {
		return nil, err
	}
	return &snap, nil
}

func loadLedger(ctx context.Context, o LoadOptions) (*Ledger, error) {
	switch {
	case o.LedgerFile != "":
		f, err := os.Open(o.LedgerFile)
		if err != nil {
			return nil, fmt.Errorf("could not open ledger file %q: %w", o.LedgerFile, err)
		}
		defer f.Close()
		return DecodeLedger(f)
	case o.BeancountFile != "":
		f, err := os.Open(o.BeancountFile)
		if err != nil {
			return nil, fmt.Errorf("could not open beancount file %q: %w", o.BeancountFile, err)
		}
		defer f.Close()
		return FetchLedger(ctx, o.Client, o.ConverterURL, f)
	default:
		return nil, errors.New("no ledger source: set a ledger file or a beancount file")
	}
}

func loadPrices(ctx context.Context, o LoadOptions) ([]PriceSeries, error) {
	if o.PricesFile != "" {
		f, err := os.Open(o.PricesFile)
		if err != nil {
			return nil, fmt.Errorf("could not open prices file %q: %w", o.PricesFile, err)
		}
		defer f.Close()
		return DecodePrices(f)
	}
	return FetchPrices(ctx, o.Client, o.PricesURL, o.APIKey, o.Symbols, o.From, o.To)
}
