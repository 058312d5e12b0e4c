package renderer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io/fs"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// InvoiceMarkdown renders the invoice as a markdown document: a title with
// the grand total, then one section per category with its total and a table
// of its receipts.
func InvoiceMarkdown(inv *Invoice) string {
	partials := map[string]string{
		"invoice_category": "invoice_category.md",
	}
	return renderTemplate("invoice", "invoice.md", partials, inv)
}

// InvoiceHTML renders the invoice as a standalone HTML page.
func InvoiceHTML(inv *Invoice) (string, error) {
	var body bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(InvoiceMarkdown(inv)), &body); err != nil {
		return "", fmt.Errorf("could not convert invoice %q to html: %w", inv.Name, err)
	}

	page, err := fs.ReadFile(templates, "invoice.html")
	if err != nil {
		return "", fmt.Errorf("error reading template %q: %w", "invoice.html", err)
	}
	tmpl, err := htmltemplate.New("invoice.html").Parse(string(page))
	if err != nil {
		return "", fmt.Errorf("error parsing template %q: %w", "invoice.html", err)
	}

	var b bytes.Buffer
	err = tmpl.Execute(&b, struct {
		Name string
		Body htmltemplate.HTML
	}{
		Name: inv.Name,
		Body: htmltemplate.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("error executing template %q: %w", "invoice.html", err)
	}
	return b.String(), nil
}
