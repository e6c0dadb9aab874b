package beanfolio

import (
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/beanfolio/date"
	"github.com/rs/zerolog"
)

// Journal holds the classified transactions of a ledger, indexed by symbol.
//
// A Journal is built once per ledger snapshot by NewJournal and is read-only
// afterwards, so it can be shared between goroutines.
type Journal struct {
	stocks      map[string][]StockTrade
	dividends   map[string][]DividendPayment
	commissions []CommissionCharge
	all         []Transaction
	dropped     []error
}

type journalConfig struct {
	logger zerolog.Logger
}

// JournalOption configures NewJournal.
type JournalOption func(*journalConfig)

// WithJournalLogger sets the logger that reports dropped transactions.
func WithJournalLogger(l zerolog.Logger) JournalOption {
	return func(c *journalConfig) { c.logger = l }
}

// NewJournal extracts stock trades, dividend payments and commission charges
// from the ledger transactions.
//
// Each source transaction yields at most one record per kind. Transactions
// that cannot be extracted are logged, reported by Dropped, and otherwise
// ignored.
func NewJournal(l *Ledger, opts ...JournalOption) *Journal {
	cfg := journalConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	j := &Journal{
		stocks:    make(map[string][]StockTrade),
		dividends: make(map[string][]DividendPayment),
	}
	for d := range l.Transactions() {
		j.extract(d, cfg.logger)
	}

	for _, trades := range j.stocks {
		slices.SortStableFunc(trades, func(a, b StockTrade) int { return a.Date.Compare(b.Date) })
	}
	for _, divs := range j.dividends {
		slices.SortStableFunc(divs, func(a, b DividendPayment) int { return a.Date.Compare(b.Date) })
	}
	slices.SortStableFunc(j.commissions, func(a, b CommissionCharge) int { return a.Date.Compare(b.Date) })
	slices.SortStableFunc(j.all, func(a, b Transaction) int { return a.When().Compare(b.When()) })
	return j
}

// postingIndex locates the postings of one transaction that matter to the
// extraction passes. -1 means not found.
type postingIndex struct {
	stock, dividend, commission, cash int
}

func indexPostings(postings []Posting) postingIndex {
	idx := postingIndex{-1, -1, -1, -1}
	for i, p := range postings {
		kind := Classify(p)
		switch kind {
		case StockLot:
			if idx.stock < 0 {
				idx.stock = i
			}
		case Dividend:
			if idx.dividend < 0 {
				idx.dividend = i
			}
		case Commission:
			if idx.commission < 0 {
				idx.commission = i
			}
		case Unclassified:
		}
		if kind != Dividend && kind != Commission && idx.cash < 0 {
			idx.cash = i
		}
	}
	return idx
}

func (j *Journal) extract(d *Directive, logger zerolog.Logger) {
	idx := indexPostings(d.Postings)
	if idx.stock < 0 && idx.dividend < 0 && idx.commission < 0 {
		return
	}

	drop := func(err error) {
		err = fmt.Errorf("transaction %s %q: %w", d.Date, d.Narration, err)
		logger.Warn().Err(err).Str("date", d.Date).Msg("dropping transaction")
		j.dropped = append(j.dropped, err)
	}

	on, dateErr := date.Parse(d.Date)

	var commission *Amount
	if idx.commission >= 0 {
		c := d.Postings[idx.commission].Units
		commission = &c
	}

	if idx.stock >= 0 {
		if dateErr != nil {
			drop(fmt.Errorf("%w: %w", ErrMalformedStock, dateErr))
		} else {
			p := d.Postings[idx.stock]
			tx := StockTrade{
				Symbol:     p.Units.Currency,
				Date:       on,
				Quantity:   Q(p.Units.Number),
				Price:      *p.Price,
				Commission: commission,
			}
			j.stocks[tx.Symbol] = append(j.stocks[tx.Symbol], tx)
			j.all = append(j.all, tx)
		}
	}

	if idx.dividend >= 0 {
		symbol := ParseAccount(d.Postings[idx.dividend].Account).Symbol
		switch {
		case dateErr != nil:
			drop(fmt.Errorf("%w: %w", ErrMalformedDividend, dateErr))
		case idx.cash < 0:
			drop(fmt.Errorf("%w: no cash posting", ErrMalformedDividend))
		case symbol == "":
			drop(fmt.Errorf("%w: no symbol in account %q", ErrMalformedDividend, d.Postings[idx.dividend].Account))
		default:
			tx := DividendPayment{
				Symbol:     symbol,
				Date:       on,
				Cash:       d.Postings[idx.cash].Units,
				Commission: commission,
			}
			j.dividends[symbol] = append(j.dividends[symbol], tx)
			j.all = append(j.all, tx)
		}
	}

	if idx.commission >= 0 {
		if dateErr != nil {
			drop(fmt.Errorf("commission: %w", dateErr))
		} else {
			tx := CommissionCharge{Date: on, Amount: *commission}
			j.commissions = append(j.commissions, tx)
			j.all = append(j.all, tx)
		}
	}
}

// StockTrades returns the trades of symbol in chronological order.
func (j *Journal) StockTrades(symbol string) []StockTrade { return slices.Clone(j.stocks[symbol]) }

// DividendPayments returns the dividends of symbol in chronological order.
func (j *Journal) DividendPayments(symbol string) []DividendPayment {
	return slices.Clone(j.dividends[symbol])
}

// CommissionCharges returns all commission charges in chronological order.
func (j *Journal) CommissionCharges() []CommissionCharge { return slices.Clone(j.commissions) }

// Transactions returns every classified transaction in chronological order.
func (j *Journal) Transactions() []Transaction { return slices.Clone(j.all) }

// Symbols returns the sorted list of symbols traded or paying dividends.
func (j *Journal) Symbols() []string {
	set := make(map[string]struct{})
	for s := range j.stocks {
		set[s] = struct{}{}
	}
	for s := range j.dividends {
		set[s] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Dropped returns the reasons why transactions were left out of the journal.
func (j *Journal) Dropped() []error { return slices.Clone(j.dropped) }
