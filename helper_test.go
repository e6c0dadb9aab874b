package beanfolio

import (
	"time"

	"github.com/etnz/beanfolio/date"
	"github.com/shopspring/decimal"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// amt is a helper for test to create a ledger amount.
func amt(v float64, currency string) Amount {
	return Amount{Number: decimal.NewFromFloat(v), Currency: currency}
}

// tx is a helper for test to create a ledger transaction entry.
func tx(on, narration string, postings ...Posting) Entry {
	return Entry{
		Type:  EntryTransaction,
		Entry: Directive{Date: on, Flag: "*", Narration: narration, Postings: postings},
	}
}

// buy creates a transaction trading qty shares of symbol at price USD
// through the IB account. A non zero fee adds a commission posting.
func buy(on, symbol string, qty, price, fee float64) Entry {
	unit := amt(price, "USD")
	postings := []Posting{
		{Account: "Assets:Investments:IB:" + symbol, Units: amt(qty, symbol), Price: &unit},
		{Account: "Assets:Investments:IB:Cash", Units: amt(-qty*price-fee, "USD")},
	}
	if fee != 0 {
		postings = append(postings, Posting{Account: "Expenses:Investments:IB:" + symbol + ":Commissions", Units: amt(fee, "USD")})
	}
	return tx(on, "trade "+symbol, postings...)
}

// dividend creates a transaction paying cash USD of dividend for symbol. The
// cash posting is signed as given, the income posting balances it.
func dividend(on, symbol string, cash float64) Entry {
	return tx(on, "dividend "+symbol,
		Posting{Account: "Income:Investments:IB:" + symbol + ":DIVIDEND", Units: amt(-cash, "USD")},
		Posting{Account: "Assets:Investments:IB:Cash", Units: amt(cash, "USD")},
	)
}

// charge creates a standalone commission charge.
func charge(on string, v float64) Entry {
	return tx(on, "fee",
		Posting{Account: "Expenses:Investments:IB:VTI:Commissions", Units: amt(v, "USD")},
		Posting{Account: "Assets:Investments:IB:Cash", Units: amt(-v, "USD")},
	)
}

func ledgerOf(entries ...Entry) *Ledger { return &Ledger{Entries: entries} }

// point creates a daily price with only open and close set.
func point(on string, open, close float64) PricePoint {
	return PricePoint{
		Date:  date.MustParse(on),
		Open:  decimal.NewFromFloat(open),
		Close: decimal.NewFromFloat(close),
	}
}

func prices(symbol string, points ...PricePoint) PriceSeries {
	return PriceSeries{Symbol: symbol, Historical: points}
}

// engine builds an engine over the ledger entries and price series.
func engine(entries []Entry, series []PriceSeries, opts ...EngineOption) *Engine {
	return NewEngine(NewJournal(ledgerOf(entries...)), NewPriceIndex(series), opts...)
}

func month(year, m int) date.Period { return date.NewPeriod(year, time.Month(m)) }
