package receipts

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Invoice is the aggregated view of a directory of receipts, ready to be rendered.
type Invoice struct {
	Name       string
	Categories []ExpenseCategory
	Total      decimal.Decimal
}

// NewInvoice groups records by category and computes the grand total.
func NewInvoice(name string, records []Record) *Invoice {
	categories := GroupByCategory(records)
	return &Invoice{
		Name:       name,
		Categories: categories,
		Total:      TotalCost(categories),
	}
}

// LoadInvoice loads the receipts of dir into a new Invoice.
func LoadInvoice(dir, name string) (*Invoice, error) {
	records, err := LoadRecords(dir)
	if err != nil {
		return nil, err
	}
	return NewInvoice(name, records), nil
}

// FileName returns the document file name for the invoice:
// the lowercase name with spaces replaced by underscores, plus ext (".md").
func (inv *Invoice) FileName(ext string) string {
	return strings.ReplaceAll(strings.ToLower(inv.Name), " ", "_") + ext
}

// Len returns the number of receipts in the invoice.
func (inv *Invoice) Len() int {
	n := 0
	for _, c := range inv.Categories {
		n += len(c.Records)
	}
	return n
}
