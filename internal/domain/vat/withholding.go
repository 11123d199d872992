package vat

import "github.com/shopspring/decimal"

// WithholdingKind distinguishes the two statutory withholding categories.
type WithholdingKind string

const (
	WithholdingGoods    WithholdingKind = "goods"
	WithholdingServices WithholdingKind = "services"
)

// Statutory withholding rule: 2% is withheld on payments for goods of
// 10,000 ETB or more and for services of 3,000 ETB or more.
var (
	withholdingRate      = decimal.NewFromFloat(0.02)
	goodsThreshold       = decimal.NewFromInt(10_000)
	servicesThreshold    = decimal.NewFromInt(3_000)
	withholdingThreshold = map[WithholdingKind]decimal.Decimal{
		WithholdingGoods:    goodsThreshold,
		WithholdingServices: servicesThreshold,
	}
)

// Valid reports whether the kind is a known withholding category.
func (k WithholdingKind) Valid() bool {
	_, ok := withholdingThreshold[k]
	return ok
}

// ComputeWithholding returns the amount to withhold on a payment and
// whether withholding applies at all. Payments below the category threshold
// are not subject to withholding.
func ComputeWithholding(kind WithholdingKind, base decimal.Decimal) (decimal.Decimal, bool) {
	threshold, ok := withholdingThreshold[kind]
	if !ok || base.LessThan(threshold) {
		return decimal.Zero, false
	}
	return base.Mul(withholdingRate).Round(2), true
}
