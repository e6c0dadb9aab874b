package beanfolio

// PostingKind is the classification of a single posting.
type PostingKind int

const (
	// Unclassified postings (cash, equity, non-investment accounts) are
	// invisible to valuation.
	Unclassified PostingKind = iota
	// StockLot is a movement of shares priced in another currency.
	StockLot
	// Dividend is a posting to a dividend income account.
	Dividend
	// Commission is a posting to a commission expense account.
	Commission
)

func (k PostingKind) String() string {
	switch k {
	case StockLot:
		return "stock"
	case Dividend:
		return "dividend"
	case Commission:
		return "commission"
	default:
		return "unclassified"
	}
}

// IsStockLotPosting reports whether p moves shares of a symbol held in an
// investment account.
//
// The posting must carry a price in a currency different from its units:
// "10 VTI @ 150 USD" is a stock lot, "-1500 USD" in the same account is cash.
func IsStockLotPosting(p Posting) bool {
	path := ParseAccount(p.Account)
	return path.Type == AssetsType &&
		path.SubType == InvestmentsSubType &&
		path.Has(SymbolSegment) &&
		p.Price != nil &&
		p.Units.Currency != p.Price.Currency
}

// IsDividendAccount reports whether the account receives dividend income.
func IsDividendAccount(path AccountPath) bool {
	return path.Type == IncomeType &&
		path.SubType == InvestmentsSubType &&
		path.InvestmentType == DividendMarker
}

// IsCommissionAccount reports whether the account records trading commissions.
func IsCommissionAccount(path AccountPath) bool {
	return path.Type == ExpensesType &&
		path.SubType == InvestmentsSubType &&
		path.InvestmentType == CommissionsMarker
}

// Classify returns the kind of the posting.
//
// The three account shapes have distinct top segments so at most one kind
// applies to a given posting.
func Classify(p Posting) PostingKind {
	path := ParseAccount(p.Account)
	switch {
	case IsStockLotPosting(p):
		return StockLot
	case IsDividendAccount(path):
		return Dividend
	case IsCommissionAccount(path):
		return Commission
	default:
		return Unclassified
	}
}
