// Package renderer turns valuations, returns and monthly series into
// markdown reports and charts.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/beanfolio"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates holds the report templates, rooted at the templates directory.
var templates fs.FS = mustSub(templatesFS, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// ReturnsRenderOptions holds configuration for rendering a returns report.
type ReturnsRenderOptions struct {
	SkipSymbols bool // Do not render the per symbol performance table.
}

// RenderReturns renders period returns to a markdown string.
func RenderReturns(r *beanfolio.Returns, opts ReturnsRenderOptions) string {
	partials := map[string]string{
		"returns_title":   "returns_title.md",
		"returns_summary": "returns_summary.md",
		"returns_symbols": "returns_symbols.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipSymbols {
		partials["returns_symbols"] = ""
	}
	return renderTemplate("returns", "returns.md", partials, r)
}

// RenderValuation renders the value of each holding at a cutoff.
func RenderValuation(v *Valuation) string {
	partials := map[string]string{
		"valuation_title":    "valuation_title.md",
		"valuation_holdings": "valuation_holdings.md",
	}
	return renderTemplate("valuation", "valuation.md", partials, v)
}

// renderTemplate executes the template in mainFile under name, with each
// partial parsed as an associated template. A partial mapped to "" renders
// nothing. Failures are returned as the rendered text.
func renderTemplate(name, mainFile string, partials map[string]string, data any) string {
	tmpl := template.New(name)
	if err := parseFile(tmpl, mainFile); err != nil {
		return err.Error()
	}
	for partial, file := range partials {
		t := tmpl.New(partial)
		if file == "" {
			t.Parse("")
			continue
		}
		if err := parseFile(t, file); err != nil {
			return err.Error()
		}
	}
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("%s: %v", name, err)
	}
	return b.String()
}

func parseFile(t *template.Template, file string) error {
	src, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Errorf("template %s: %w", file, err)
	}
	if _, err := t.Parse(string(src)); err != nil {
		return fmt.Errorf("template %s: %w", file, err)
	}
	return nil
}
