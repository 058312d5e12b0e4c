package receipts

import "github.com/shopspring/decimal"

// ExpenseCategory groups the records sharing a category label.
type ExpenseCategory struct {
	Name    string
	Records []Record
	Total   decimal.Decimal // exact sum of the records cost
}

// GroupByCategory groups records by category.
//
// Categories come in the order they are first seen in records, and records
// keep their relative order inside each category.
func GroupByCategory(records []Record) []ExpenseCategory {
	var names []string
	seen := make(map[string]bool)
	for _, r := range records {
		if seen[r.Category()] {
			continue
		}
		seen[r.Category()] = true
		names = append(names, r.Category())
	}

	categories := make([]ExpenseCategory, 0, len(names))
	for _, name := range names {
		c := ExpenseCategory{Name: name, Total: decimal.Zero}
		for _, r := range records {
			if r.Category() != name {
				continue
			}
			c.Records = append(c.Records, r)
			c.Total = c.Total.Add(r.Cost())
		}
		categories = append(categories, c)
	}
	return categories
}

// TotalCost returns the sum of the categories total.
func TotalCost(categories []ExpenseCategory) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Total)
	}
	return total
}

// SumCost returns the sum of the records cost.
func SumCost(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Cost())
	}
	return total
}
