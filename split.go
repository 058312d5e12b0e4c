package receipts

import "github.com/shopspring/decimal"

// Allocator divides the cost of split receipts between Southroads and Utica.
// The zero value allocates in DefaultCurrency.
type Allocator struct {
	Currency string
}

// Allocate returns the Southroads and Utica shares of a split record.
//
// The cost is converted to minor units (cents). An even amount is shared
// equally; for an odd amount the extra unit always goes to Utica, so that
// 10.01 gives 5.00 to Southroads and 5.01 to Utica.
// Both shares always sum exactly to the original cost: a cost with digits
// below the minor unit (1.005) cannot be shared and is reported as a
// SplitInvariantViolation.
func (a Allocator) Allocate(r Record) (southroads, utica Record, err error) {
	if !r.IsSplit() {
		return Record{}, Record{}, newError(InvalidSplitInput, r.Name(), nil, "only receipts marked 'split' can be allocated, got %q", r.Location())
	}
	cur := a.Currency
	if cur == "" {
		cur = DefaultCurrency
	}

	// costs are never negative, so the truncated half is the smaller share.
	units := MinorUnits(r.Cost(), cur)
	southUnits, _ := units.QuoRem(decimal.NewFromInt(2), 0)
	uticaUnits := units.Sub(southUnits)

	southCost := FromMinorUnits(southUnits, cur)
	uticaCost := FromMinorUnits(uticaUnits, cur)
	if !southCost.Add(uticaCost).Equal(r.Cost()) {
		return Record{}, Record{}, newError(SplitInvariantViolation, r.Name(), nil, "%s + %s != %s", southCost, uticaCost, r.Cost())
	}

	southroads, err = r.WithCost(southCost).WithLocation(Southroads)
	if err != nil {
		return Record{}, Record{}, err
	}
	utica, err = r.WithCost(uticaCost).WithLocation(Utica)
	if err != nil {
		return Record{}, Record{}, err
	}
	return southroads, utica, nil
}
