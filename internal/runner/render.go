package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/URDev4ever/dorkfactory"
)

var (
	headerColor  = color.New(color.FgMagenta, color.Bold)
	engineColor  = color.New(color.FgCyan, color.Bold)
	indexColor   = color.New(color.FgYellow)
	urlColor     = color.New(color.FgCyan)
	summaryColor = color.New(color.FgGreen, color.Bold)
)

// Renderer prints a result set grouped by category and engine, with a
// ready-to-open search URL under each dork.
type Renderer struct {
	out      io.Writer
	catalog  *dorkfactory.Catalog
	ShowURLs bool
}

func NewRenderer(out io.Writer, catalog *dorkfactory.Catalog) *Renderer {
	return &Renderer{out: out, catalog: catalog, ShowURLs: true}
}

func (r *Renderer) Render(results *dorkfactory.ResultSet) {
	if results.IsEmpty() {
		fmt.Fprintln(r.out, "no dorks generated, check category/filter selection")
		return
	}
	for _, categoryID := range results.Categories() {
		r.renderHeader(categoryID)
		for _, engine := range results.Engines(categoryID) {
			engineColor.Fprintf(r.out, "  [%s]\n", engine)
			for i, d := range results.Bucket(categoryID, engine) {
				indexColor.Fprintf(r.out, "  [%02d] ", i+1)
				fmt.Fprintln(r.out, d.Query)
				if r.ShowURLs {
					urlColor.Fprintf(r.out, "       -> %s\n", dorkfactory.DorkURL(d))
				}
			}
			fmt.Fprintln(r.out)
		}
	}
	summaryColor.Fprintf(r.out, "Generated %d dorks across %d categories\n", results.Total(), len(results.Categories()))
}

func (r *Renderer) renderHeader(categoryID string) {
	label := categoryID
	if cat, ok := r.catalog.Category(categoryID); ok {
		label = cat.Label
	}
	headerColor.Fprintf(r.out, "%s\n%s\n", label, strings.Repeat("=", len(label)))
}
