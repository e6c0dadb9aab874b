package beanfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/shopspring/decimal"
)

// EntryTransaction is the only entry type that participates in valuation.
// Other directives (Open, Close, Balance, Price, ...) are carried but ignored.
const EntryTransaction = "Transaction"

// Amount is a signed number of units of a currency or commodity.
type Amount struct {
	Number   decimal.Decimal `json:"number"`
	Currency string          `json:"currency"`
}

func (a Amount) String() string { return a.Number.String() + " " + a.Currency }

// Posting is one account-and-amount line of a transaction.
type Posting struct {
	Account string         `json:"account"`
	Units   Amount         `json:"units"`
	Price   *Amount        `json:"price,omitempty"` // per-unit price, when units are priced in another currency
	Flag    string         `json:"flag,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Directive is the body of a ledger entry. For transactions it holds the
// postings; other directive kinds only use a subset of these fields.
type Directive struct {
	Date      string         `json:"date"` // ISO date, decoded when the entry is used
	Flag      string         `json:"flag,omitempty"`
	Payee     string         `json:"payee,omitempty"`
	Narration string         `json:"narration,omitempty"`
	Account   string         `json:"account,omitempty"`
	Postings  []Posting      `json:"postings,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// Entry is a typed ledger directive.
type Entry struct {
	Type  string    `json:"type"`
	Entry Directive `json:"entry"`
	Hash  string    `json:"hash,omitempty"`
}

// Ledger is the structured export of a double-entry ledger, as produced by
// the bean-to-json converter.
//
// A Ledger is never modified once decoded.
type Ledger struct {
	Entries []Entry        `json:"entries"`
	Errors  []any          `json:"errors,omitempty"`
	Options map[string]any `json:"options,omitempty"`
	Variant string         `json:"variant,omitempty"`
	Version string         `json:"version,omitempty"`
}

// DecodeLedger reads a ledger export from r.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var l Ledger
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("cannot decode ledger: %w", err)
	}
	return &l, nil
}

// EncodeLedger writes the ledger export to w.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// Transactions iterates over the transaction directives of the ledger, in
// file order.
func (l *Ledger) Transactions() iter.Seq[*Directive] {
	return func(yield func(*Directive) bool) {
		for i := range l.Entries {
			if l.Entries[i].Type != EntryTransaction {
				continue
			}
			if !yield(&l.Entries[i].Entry) {
				return
			}
		}
	}
}
