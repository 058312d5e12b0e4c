package renderer

import (
	"github.com/etnz/receipts"
)

// Invoice is the data rendered in an invoice document.
// Amounts are Money so that templates print them with their currency.
type Invoice struct {
	// Name of the invoice, used as its title.
	Name string `json:"name"`
	// Total is the grand total of all receipts.
	Total receipts.Money `json:"total"`
	// Categories in the order they were first seen.
	Categories []InvoiceCategory `json:"categories"`
}

// InvoiceCategory is a section of the invoice.
type InvoiceCategory struct {
	Name  string         `json:"name"`
	Total receipts.Money `json:"total"`
	Items []InvoiceItem  `json:"items"`
}

// InvoiceItem is a single receipt line.
type InvoiceItem struct {
	Date        string            `json:"date"`
	Vendor      string            `json:"vendor"`
	Description string            `json:"description"`
	Location    receipts.Location `json:"location"`
	Cost        receipts.Money    `json:"cost"`
}

// NewInvoice creates the Invoice view of inv, amounts in currency.
func NewInvoice(inv *receipts.Invoice, currency string) *Invoice {
	v := &Invoice{
		Name:       inv.Name,
		Total:      receipts.M(inv.Total, currency),
		Categories: make([]InvoiceCategory, 0, len(inv.Categories)),
	}
	for _, c := range inv.Categories {
		vc := InvoiceCategory{
			Name:  c.Name,
			Total: receipts.M(c.Total, currency),
			Items: make([]InvoiceItem, 0, len(c.Records)),
		}
		for _, r := range c.Records {
			vc.Items = append(vc.Items, InvoiceItem{
				Date:        r.Date(),
				Vendor:      r.Vendor(),
				Description: r.Description(),
				Location:    r.Location(),
				Cost:        receipts.M(r.Cost(), currency),
			})
		}
		v.Categories = append(v.Categories, vc)
	}
	return v
}
