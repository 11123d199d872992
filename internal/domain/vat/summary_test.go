package vat

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateVATSummary_RegularVATLine(t *testing.T) {
	receipts := []Receipt{
		{
			ID:   "r1",
			Date: "2025-03-10",
			Items: []LineItem{
				{Nature: "60", TaxType: enum.TaxTypeVAT, Subtotal: dec("1000"), TaxAmount: dec("150")},
			},
		},
	}

	summary := CalculateVATSummary(receipts)
	data := summary.Codes["60"]
	require.NotNil(t, data)
	assert.True(t, data.Total.Equal(dec("1000")), "total = %s", data.Total)
	assert.True(t, data.VAT.Equal(dec("150")), "vat = %s", data.VAT)
	assert.Equal(t, 1, data.Count)
	assert.Len(t, data.Receipts, 1)
}

func TestCalculateVATSummary_EmptyTaxTypeIsImplicitVAT(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-10", Items: []LineItem{
			{Nature: "60", Subtotal: dec("200"), TaxAmount: dec("30")},
		}},
	}

	summary := CalculateVATSummary(receipts)
	data := summary.Codes["60"]
	require.NotNil(t, data)
	assert.True(t, data.Total.Equal(dec("200")))
	assert.True(t, data.VAT.Equal(dec("30")))
}

func TestCalculateVATSummary_TOTFoldsTaxIntoTotal(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-10", Items: []LineItem{
			{Nature: "60", TaxType: enum.TaxTypeTOT, Subtotal: dec("100"), TaxAmount: dec("10")},
		}},
	}

	summary := CalculateVATSummary(receipts)
	data := summary.Codes["60"]
	require.NotNil(t, data)
	assert.True(t, data.Total.Equal(dec("110")), "TOT total folds tax: %s", data.Total)
	assert.True(t, data.VAT.IsZero(), "TOT never inflates the VAT column")
}

func TestCalculateVATSummary_ExemptedContributesZeroVAT(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-10", Items: []LineItem{
			{Nature: "60", TaxType: enum.TaxTypeExempted, Subtotal: dec("500"), TaxAmount: dec("75")},
		}},
	}

	summary := CalculateVATSummary(receipts)
	data := summary.Codes["60"]
	require.NotNil(t, data)
	assert.True(t, data.Total.Equal(dec("500")))
	assert.True(t, data.VAT.IsZero())
}

func TestCalculateVATSummary_ExclusionOverridesEverything(t *testing.T) {
	// "70" is in the exclusion set. The VAT accumulator must stay exactly
	// zero even with a non-zero tax amount and a VAT tax type, and the TOT
	// branch must not fold the tax amount into the total.
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-10", Items: []LineItem{
			{Nature: "70", TaxType: enum.TaxTypeVAT, Subtotal: dec("300"), TaxAmount: dec("45")},
			{Nature: "70", TaxType: enum.TaxTypeTOT, Subtotal: dec("100"), TaxAmount: dec("10")},
		}},
	}

	summary := CalculateVATSummary(receipts)
	data := summary.Codes["70"]
	require.NotNil(t, data)
	assert.True(t, data.Total.Equal(dec("400")), "only subtotals count: %s", data.Total)
	assert.True(t, data.VAT.IsZero())
	assert.Equal(t, 2, data.Count)
}

func TestCalculateVATSummary_FallbackTaxType(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-10", Items: []LineItem{
			// line-level empty, nested item value used
			{Nature: "60", ItemTaxType: enum.TaxTypeTOT, Subtotal: dec("100"), TaxAmount: dec("10")},
			// line-level wins over nested value
			{Nature: "65", TaxType: enum.TaxTypeVAT, ItemTaxType: enum.TaxTypeTOT, Subtotal: dec("200"), TaxAmount: dec("30")},
		}},
	}

	summary := CalculateVATSummary(receipts)
	assert.True(t, summary.Codes["60"].Total.Equal(dec("110")))
	assert.True(t, summary.Codes["60"].VAT.IsZero())
	assert.True(t, summary.Codes["65"].Total.Equal(dec("200")))
	assert.True(t, summary.Codes["65"].VAT.Equal(dec("30")))
}

func TestCalculateVATSummary_ReceiptDedup(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-10", Items: []LineItem{
			{Nature: "60", TaxType: enum.TaxTypeVAT, Subtotal: dec("100"), TaxAmount: dec("15")},
			{Nature: "60", TaxType: enum.TaxTypeVAT, Subtotal: dec("200"), TaxAmount: dec("30")},
		}},
		{ID: "r2", Date: "2025-03-11", Items: []LineItem{
			{Nature: "60", TaxType: enum.TaxTypeVAT, Subtotal: dec("50"), TaxAmount: dec("7.50")},
		}},
	}

	summary := CalculateVATSummary(receipts)
	data := summary.Codes["60"]
	require.NotNil(t, data)
	assert.Equal(t, 3, data.Count, "count increments per item")
	assert.Len(t, data.Receipts, 2, "receipt list dedups by id")
	assert.True(t, data.Total.Equal(dec("350")))
	assert.True(t, data.VAT.Equal(dec("52.50")))
}

func TestCalculateVATSummary_EmptyReceiptContributesNothing(t *testing.T) {
	summary := CalculateVATSummary([]Receipt{{ID: "r1", Date: "2025-03-10"}})
	assert.Empty(t, summary.Codes)
	assert.Zero(t, summary.UnmappedItems)
}

func TestCalculateVATSummary_UnmappedCodeStillAccumulates(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-10", Items: []LineItem{
			{Nature: "999", TaxType: enum.TaxTypeVAT, Subtotal: dec("100"), TaxAmount: dec("15")},
		}},
	}

	summary := CalculateVATSummary(receipts)
	data := summary.Codes["999"]
	require.NotNil(t, data)
	assert.True(t, data.Total.Equal(dec("100")))
	assert.Equal(t, 1, summary.UnmappedItems)
}

func TestCalculateVATSummary_Idempotent(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-10", Items: []LineItem{
			{Nature: "60", TaxType: enum.TaxTypeVAT, Subtotal: dec("100"), TaxAmount: dec("15")},
			{Nature: "70", TaxType: enum.TaxTypeTOT, Subtotal: dec("80"), TaxAmount: dec("1.60")},
		}},
	}

	first := CalculateVATSummary(receipts)
	second := CalculateVATSummary(receipts)

	require.Equal(t, len(first.Codes), len(second.Codes))
	for code, data := range first.Codes {
		other := second.Codes[code]
		require.NotNil(t, other)
		assert.True(t, data.Total.Equal(other.Total))
		assert.True(t, data.VAT.Equal(other.VAT))
		assert.Equal(t, data.Count, other.Count)
	}
	assert.Equal(t, first.UnmappedItems, second.UnmappedItems)
}
