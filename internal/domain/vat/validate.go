package vat

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ValidateValues checks user-edited override pairs and manual adjustment
// fields before they may be saved. It returns a list of human-readable
// messages; an empty list means valid. It never panics and never returns an
// error value — callers are responsible for blocking the save while the
// list is non-empty.
func ValidateValues(overrides EditableValues, adj ManualAdjustments) []string {
	var errs []string

	codes := make([]string, 0, len(overrides))
	for code := range overrides {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		override := overrides[code]
		if override.Total.IsNegative() {
			errs = append(errs, fmt.Sprintf("nature code %s: total must not be negative", code))
		}
		if override.VAT.IsNegative() {
			errs = append(errs, fmt.Sprintf("nature code %s: VAT must not be negative", code))
		}
		// A VAT amount can never exceed its own base amount; only enforced
		// for codes that carry a VAT line on the declaration.
		if mapping, ok := NatureCodeTable[code]; ok && mapping.VATLine != 0 {
			if override.VAT.GreaterThan(override.Total) {
				errs = append(errs, fmt.Sprintf("nature code %s: VAT exceeds total", code))
			}
		}
	}

	adjustments := []struct {
		name  string
		value decimal.Decimal
	}{
		{"VAT on government voucher", adj.VATOnGovernmentVoucher},
		{"other credits", adj.OtherCredits},
		{"credit carried forward", adj.CreditCarriedForward},
	}
	for _, a := range adjustments {
		if a.value.IsNegative() {
			errs = append(errs, fmt.Sprintf("%s must not be negative", a.name))
		}
	}

	return errs
}
