package receipts

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency receipts are denominated in unless configured otherwise.
const DefaultCurrency = money.USD

// Money represents a monetary value for display.
// Arithmetic on receipts is done on decimal.Decimal, Money only adds a currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a decimal value.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// lookupCurrency returns the go-money currency for code, falling back to
// DefaultCurrency for unknown codes.
func lookupCurrency(code string) *money.Currency {
	if cur := money.GetCurrency(code); cur != nil {
		return cur
	}
	return money.GetCurrency(DefaultCurrency)
}

// String returns the string representation of the money value, e.g. "$12.50".
func (m Money) String() string {
	cur := lookupCurrency(m.cur)
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: m.cur} }

// MarshalJSON renders the amount rounded to the currency fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(lookupCurrency(m.cur).Fraction)))
	return w.MarshalJSON()
}

// MinorUnits converts a major unit amount into the smallest unit of currency
// (cents for USD), rounding half away from zero.
// The result is an integral decimal so that no amount overflows.
func MinorUnits(d decimal.Decimal, currency string) decimal.Decimal {
	return d.Shift(int32(lookupCurrency(currency).Fraction)).Round(0)
}

// FromMinorUnits converts an integral amount of minor units back to a major
// unit decimal. The result carries exactly the currency fraction digits
// ("3.50", not "3.5").
func FromMinorUnits(units decimal.Decimal, currency string) decimal.Decimal {
	return units.Round(0).Shift(-int32(lookupCurrency(currency).Fraction))
}
