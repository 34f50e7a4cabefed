package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Precision used when rendering values into invoice XML
const (
	AmountPlaces   = 2
	PricePlaces    = 4
	QuantityPlaces = 4
	PercentPlaces  = 2
)

// Zero is decimal zero
var Zero = decimal.Zero

var hundred = decimal.NewFromInt(100)

// FromInt creates decimal from int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Ptr returns a pointer to d, for optional model fields
func Ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// Parse reads a decimal from XML text. Surrounding whitespace is ignored.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// ParseOptional returns nil for blank or unparsable text
func ParseOptional(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// Format renders d with exactly places fractional digits.
// Halves round away from zero (1.995 -> "2.00", -1.995 -> "-2.00").
func Format(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

// FormatAmount renders a monetary amount with two decimals
func FormatAmount(d decimal.Decimal) string {
	return Format(d, AmountPlaces)
}

// FormatPrice renders a unit price with four decimals
func FormatPrice(d decimal.Decimal) string {
	return Format(d, PricePlaces)
}

// FormatQuantity renders a quantity with four decimals
func FormatQuantity(d decimal.Decimal) string {
	return Format(d, QuantityPlaces)
}

// FormatPercent renders a percentage with two decimals
func FormatPercent(d decimal.Decimal) string {
	return Format(d, PercentPlaces)
}

// CalculateTax computes basis * (percent/100) rounded to cents
func CalculateTax(basis, percent decimal.Decimal) decimal.Decimal {
	return basis.Mul(percent).Div(hundred).Round(AmountPlaces)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// EqualPtr reports whether two optional values are both absent or numerically equal
func EqualPtr(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// IsNonZero reports whether an optional value is present and not zero
func IsNonZero(d *decimal.Decimal) bool {
	return d != nil && !d.IsZero()
}
