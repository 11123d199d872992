package vat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValues_Valid(t *testing.T) {
	errs := ValidateValues(EditableValues{
		"60": {Total: dec("100"), VAT: dec("15")},
		"65": {Total: dec("200"), VAT: dec("30")},
	}, ManualAdjustments{
		VATOnGovernmentVoucher: dec("10"),
		OtherCredits:           dec("0"),
		CreditCarriedForward:   dec("5"),
	})
	assert.Empty(t, errs)
}

func TestValidateValues_NegativeOverrideRejected(t *testing.T) {
	errs := ValidateValues(EditableValues{
		"65": {Total: dec("-5"), VAT: dec("0")},
	}, ManualAdjustments{})

	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "65", "message names the offending nature code")
}

func TestValidateValues_NegativeVATRejected(t *testing.T) {
	errs := ValidateValues(EditableValues{
		"60": {Total: dec("100"), VAT: dec("-1")},
	}, ManualAdjustments{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "60")
}

func TestValidateValues_VATExceedsTotal(t *testing.T) {
	// "65" carries a VAT line on the declaration, so vat > total is an error
	errs := ValidateValues(EditableValues{
		"65": {Total: dec("100"), VAT: dec("120")},
	}, ManualAdjustments{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "VAT exceeds total")
}

func TestValidateValues_VATExceedsTotalIgnoredWithoutVATLine(t *testing.T) {
	// "70" has no VAT line number, so the cross-field rule does not apply
	errs := ValidateValues(EditableValues{
		"70": {Total: dec("100"), VAT: dec("120")},
	}, ManualAdjustments{})
	assert.Empty(t, errs)
}

func TestValidateValues_NegativeAdjustmentsRejected(t *testing.T) {
	errs := ValidateValues(nil, ManualAdjustments{
		VATOnGovernmentVoucher: dec("-1"),
		OtherCredits:           dec("-2"),
		CreditCarriedForward:   dec("-3"),
	})
	assert.Len(t, errs, 3)
}

func TestValidateValues_NeverMutatesAndCollectsAll(t *testing.T) {
	overrides := EditableValues{
		"60": {Total: dec("-1"), VAT: dec("-1")},
		"65": {Total: dec("10"), VAT: dec("20")},
	}
	errs := ValidateValues(overrides, ManualAdjustments{OtherCredits: dec("-4")})
	assert.Len(t, errs, 4, "all failures are collected, none thrown")
}
