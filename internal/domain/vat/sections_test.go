package vat

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
)

func TestCalculateSectionTotals_RollsUpBySection(t *testing.T) {
	receipts := []Receipt{
		{ID: "sale", Date: "2025-03-02", Items: []LineItem{
			{Nature: "5", TaxType: enum.TaxTypeVAT, Subtotal: dec("10000"), TaxAmount: dec("1500")},
		}},
		{ID: "asset", Date: "2025-03-05", Items: []LineItem{
			{Nature: "50", TaxType: enum.TaxTypeVAT, Subtotal: dec("4000"), TaxAmount: dec("600")},
		}},
		{ID: "input", Date: "2025-03-09", Items: []LineItem{
			{Nature: "60", TaxType: enum.TaxTypeVAT, Subtotal: dec("2000"), TaxAmount: dec("300")},
		}},
	}

	totals := CalculateSectionTotals(CalculateVATSummary(receipts), nil)

	assert.True(t, totals.Output.Total.Equal(dec("10000")))
	assert.True(t, totals.Output.VAT.Equal(dec("1500")))
	assert.Equal(t, 1, totals.Output.Count)
	assert.True(t, totals.Capital.Total.Equal(dec("4000")))
	assert.True(t, totals.Capital.VAT.Equal(dec("600")))
	assert.True(t, totals.NonCapital.Total.Equal(dec("2000")))
	assert.True(t, totals.NonCapital.VAT.Equal(dec("300")))
}

func TestCalculateSectionTotals_RollupMatchesDetail(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-02", Items: []LineItem{
			{Nature: "5", TaxType: enum.TaxTypeVAT, Subtotal: dec("100"), TaxAmount: dec("15")},
			{Nature: "15", TaxType: enum.TaxTypeVAT, Subtotal: dec("40"), TaxAmount: dec("6")},
			{Nature: "60", Subtotal: dec("70"), TaxAmount: dec("10.50")},
			{Nature: "999", TaxType: enum.TaxTypeVAT, Subtotal: dec("1000"), TaxAmount: dec("150")},
		}},
	}

	summary := CalculateVATSummary(receipts)
	totals := CalculateSectionTotals(summary, nil)

	sectionSum := totals.Output.Total.Add(totals.Capital.Total).Add(totals.NonCapital.Total)
	detailSum := decimal.Zero
	for code, data := range summary.Codes {
		if _, ok := NatureCodeTable[code]; ok {
			detailSum = detailSum.Add(data.Total)
		}
	}
	assert.True(t, sectionSum.Equal(detailSum),
		"section rollup %s must equal mapped detail sum %s", sectionSum, detailSum)

	// the unmapped code is on neither side of the equality
	assert.True(t, sectionSum.Equal(dec("210")))
	assert.Equal(t, 1, summary.UnmappedItems)
}

func TestCalculateSectionTotals_OverridesTakePrecedence(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-02", Items: []LineItem{
			{Nature: "60", TaxType: enum.TaxTypeVAT, Subtotal: dec("100"), TaxAmount: dec("15")},
		}},
	}
	summary := CalculateVATSummary(receipts)

	totals := CalculateSectionTotals(summary, EditableValues{
		"60": {Total: dec("250"), VAT: dec("37.50")},
	})

	assert.True(t, totals.NonCapital.Total.Equal(dec("250")))
	assert.True(t, totals.NonCapital.VAT.Equal(dec("37.50")))
	assert.Equal(t, 1, totals.NonCapital.Count, "count is not overridable")
}

func TestCalculateSectionTotals_OverrideCannotReintroduceExcludedVAT(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-02", Items: []LineItem{
			{Nature: "70", Subtotal: dec("100")},
		}},
	}
	summary := CalculateVATSummary(receipts)

	totals := CalculateSectionTotals(summary, EditableValues{
		"70": {Total: dec("100"), VAT: dec("15")},
	})

	assert.True(t, totals.NonCapital.Total.Equal(dec("100")))
	assert.True(t, totals.NonCapital.VAT.IsZero(),
		"exclusion is re-enforced even when an override supplies VAT")
}

func TestCalculateSectionTotals_UnmappedCodesSilentlySkipped(t *testing.T) {
	receipts := []Receipt{
		{ID: "r1", Date: "2025-03-02", Items: []LineItem{
			{Nature: "999", TaxType: enum.TaxTypeVAT, Subtotal: dec("100"), TaxAmount: dec("15")},
		}},
	}

	totals := CalculateSectionTotals(CalculateVATSummary(receipts), nil)

	assert.True(t, totals.Output.Total.IsZero())
	assert.True(t, totals.Capital.Total.IsZero())
	assert.True(t, totals.NonCapital.Total.IsZero())
}
