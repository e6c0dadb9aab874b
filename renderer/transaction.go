package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/beanfolio"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one line description.
func Transaction(tx beanfolio.Transaction) string {
	switch v := tx.(type) {
	case beanfolio.StockTrade:
		verb := "Bought"
		q := v.Quantity
		if q.IsNegative() {
			verb, q = "Sold", q.Neg()
		}
		s := fmt.Sprintf("%s %s %s at %s", verb, q, v.Symbol, v.Price)
		if v.Commission != nil {
			s += fmt.Sprintf(" (commission %s)", v.Commission)
		}
		return s
	case beanfolio.DividendPayment:
		return fmt.Sprintf("Dividend of %s for %s", v.Cash, v.Symbol)
	case beanfolio.CommissionCharge:
		return fmt.Sprintf("Commission of %s", v.Amount)
	default:
		return tx.Kind().String()
	}
}

// TransactionsMarkdown renders classified transactions and the ledger
// transactions that could not be classified.
func TransactionsMarkdown(txs []beanfolio.Transaction, dropped []error) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Transactions")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Kind", "Description"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.When().String(),
			tx.Kind().String(),
			Transaction(tx),
		})
	}
	doc.Table(table)

	if len(dropped) > 0 {
		doc.H2("Dropped")
		items := make([]string, len(dropped))
		for i, err := range dropped {
			items[i] = err.Error()
		}
		doc.BulletList(items...)
	}
	return doc.String()
}
