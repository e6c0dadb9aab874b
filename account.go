package beanfolio

import "strings"

// Account naming taxonomy. These are fixed: the classifier only recognizes
// ledgers that follow this layout.
//
//	Assets:Investments:<institution>:<symbol>
//	Income:Investments:<institution>:<symbol>:DIVIDEND
//	Expenses:Investments:<institution>:<symbol>:Commissions
const (
	AccountDelimiter   = ":"
	AssetsType         = "Assets"
	IncomeType         = "Income"
	ExpensesType       = "Expenses"
	InvestmentsSubType = "Investments"
	DividendMarker     = "DIVIDEND"
	CommissionsMarker  = "Commissions"
)

// Segment identifies a position in an account path.
type Segment int

const (
	TypeSegment Segment = iota
	SubTypeSegment
	InstitutionSegment
	SymbolSegment
	InvestmentTypeSegment
)

// AccountPath is a decoded account name.
//
// Segments beyond what the account name provides are absent: Has reports
// false for them and their field is "". Segments after the investment type
// are ignored.
type AccountPath struct {
	Type           string
	SubType        string
	Institution    string
	Symbol         string
	InvestmentType string

	n int // number of segments present
}

// ParseAccount splits an account name on AccountDelimiter. It never fails.
func ParseAccount(name string) AccountPath {
	parts := strings.SplitN(name, AccountDelimiter, int(InvestmentTypeSegment)+2)
	var p AccountPath
	p.n = min(len(parts), int(InvestmentTypeSegment)+1)
	fields := []*string{&p.Type, &p.SubType, &p.Institution, &p.Symbol, &p.InvestmentType}
	for i := 0; i < p.n; i++ {
		*fields[i] = parts[i]
	}
	return p
}

// Has reports whether the segment is present in the account name.
func (p AccountPath) Has(s Segment) bool { return int(s) < p.n }

// Len returns the number of segments present.
func (p AccountPath) Len() int { return p.n }
