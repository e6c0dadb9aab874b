package renderer

import (
	"bytes"

	"github.com/etnz/beanfolio"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders a monthly series as a markdown table.
func SeriesMarkdown(title string, series []beanfolio.MonthValue) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)

	if len(series) == 0 {
		doc.PlainText("No price data in range.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Value", "Commissions"},
		Rows:   [][]string{},
	}
	for _, mv := range series {
		table.Rows = append(table.Rows, []string{
			mv.Month.String(),
			mv.Value.String(),
			mv.Commissions.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
