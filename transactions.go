package beanfolio

import (
	"errors"

	"github.com/etnz/beanfolio/date"
)

var (
	// ErrMalformedStock reports a stock transaction that cannot be extracted.
	ErrMalformedStock = errors.New("malformed stock transaction")
	// ErrMalformedDividend reports a dividend transaction without a cash
	// posting, without a symbol, or with an unreadable date.
	ErrMalformedDividend = errors.New("malformed dividend transaction")
)

// Transaction is a ledger transaction classified for valuation.
//
// The set of implementations is closed: StockTrade, DividendPayment and
// CommissionCharge.
type Transaction interface {
	When() date.Date // When returns the date of the source transaction.
	Kind() PostingKind
	isTransaction()
}

// StockTrade is a purchase (positive Quantity) or sale (negative Quantity) of
// shares.
type StockTrade struct {
	Symbol     string
	Date       date.Date
	Quantity   Quantity
	Price      Amount  // per-share price at trade time
	Commission *Amount // commission paid in the same transaction, if any
}

// DividendPayment is dividend cash received for a symbol.
//
// Cash is the signed amount of the cash posting, as recorded in the ledger.
type DividendPayment struct {
	Symbol     string
	Date       date.Date
	Cash       Amount
	Commission *Amount
}

// CommissionCharge is a commission posting. Amount is signed as in the
// ledger, so a fee paid is positive.
type CommissionCharge struct {
	Date   date.Date
	Amount Amount
}

func (t StockTrade) When() date.Date       { return t.Date }
func (t DividendPayment) When() date.Date  { return t.Date }
func (t CommissionCharge) When() date.Date { return t.Date }

func (StockTrade) Kind() PostingKind       { return StockLot }
func (DividendPayment) Kind() PostingKind  { return Dividend }
func (CommissionCharge) Kind() PostingKind { return Commission }

func (StockTrade) isTransaction()       {}
func (DividendPayment) isTransaction()  {}
func (CommissionCharge) isTransaction() {}

// MarshalJSON implements the json.Marshaler interface for StockTrade.
func (t StockTrade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind().String())
	w.Append("date", t.Date)
	w.Append("symbol", t.Symbol)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Optional("commission", t.Commission)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for DividendPayment.
func (t DividendPayment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind().String())
	w.Append("date", t.Date)
	w.Append("symbol", t.Symbol)
	w.Append("cash", t.Cash)
	w.Optional("commission", t.Commission)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for CommissionCharge.
func (t CommissionCharge) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind().String())
	w.Append("date", t.Date)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}
