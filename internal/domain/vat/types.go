package vat

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
)

// LineItem is a single receipt line as seen by the derivation engine.
// TaxType is the line-level value; ItemTaxType is the value nested on the
// catalog item, used as a fallback when the line-level one is empty.
type LineItem struct {
	Nature      string
	TaxType     enum.TaxType
	ItemTaxType enum.TaxType
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
}

// EffectiveTaxType resolves the tax type for the line, line-level taking
// priority over the nested item-level value.
func (li LineItem) EffectiveTaxType() enum.TaxType {
	if !li.TaxType.IsEmpty() {
		return li.TaxType
	}
	return li.ItemTaxType
}

// Receipt is the engine's read-only view of a fetched receipt. Date is the
// raw ISO date string as stored; receipts with malformed dates are skipped
// by the period filters.
type Receipt struct {
	ID    string
	Date  string
	Items []LineItem
}

// ParsedDate parses the receipt date. It accepts plain calendar dates and
// RFC 3339 timestamps.
func (r Receipt) ParsedDate() (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SummaryData accumulates the per-nature-code figures. Receipts holds each
// contributing receipt once, in first-seen order.
type SummaryData struct {
	Total    decimal.Decimal `json:"total"`
	VAT      decimal.Decimal `json:"vat"`
	Count    int             `json:"count"`
	Receipts []Receipt       `json:"-"`
}

// Summary is the result of a calculation pass: per-code figures plus a
// diagnostic count of items whose nature code has no mapping entry. Those
// items still accumulate under their code but are invisible to section
// rollups.
type Summary struct {
	Codes         map[string]*SummaryData
	UnmappedItems int
}

// Override carries a user-edited (total, vat) pair that takes precedence
// over the computed figures for one nature code.
type Override struct {
	Total decimal.Decimal `json:"total"`
	VAT   decimal.Decimal `json:"vat"`
}

// EditableValues maps nature codes to user-edited override pairs.
type EditableValues map[string]Override

// ManualAdjustments are the user-entered worksheet fields that are not
// derived from receipts.
type ManualAdjustments struct {
	VATOnGovernmentVoucher decimal.Decimal `json:"vat_on_government_voucher"`
	OtherCredits           decimal.Decimal `json:"other_credits"`
	CreditCarriedForward   decimal.Decimal `json:"credit_carried_forward"`
}

// Bucket is one section's rolled-up figures.
type Bucket struct {
	Total decimal.Decimal `json:"total"`
	VAT   decimal.Decimal `json:"vat"`
	Count int             `json:"count"`
}

// SectionTotals is an ephemeral view over the summary, recomputed on each
// pass. Never a source of truth.
type SectionTotals struct {
	Output     Bucket `json:"output"`
	Capital    Bucket `json:"capital"`
	NonCapital Bucket `json:"non_capital"`
}

// bucketFor returns the bucket a section rolls into.
func (st *SectionTotals) bucketFor(s Section) *Bucket {
	switch s {
	case SectionOutput:
		return &st.Output
	case SectionCapital:
		return &st.Capital
	case SectionNonCapital:
		return &st.NonCapital
	}
	return nil
}
