package vat

import "github.com/shopspring/decimal"

// Statutory line numbers of the VAT declaration worksheet.
const (
	LineVATOnGovernmentVoucher = 175
	LineOtherCredits           = 180
	LineVATDueForMonth         = 185
	LineVATCreditForMonth      = 190
	LineCreditCarriedForward   = 195
	LineAmountToBePaid         = 200
	LineCreditAvailable        = 205
)

// FinalCalculation holds the derived worksheet figures. AdjustedVATDue is
// the signed line-185 quantity; the remaining fields are the values shown in
// the corresponding cells. Lines 185 and 190 are mutually exclusive
// presentations of the same signed quantity.
type FinalCalculation struct {
	AdjustedVATDue  decimal.Decimal `json:"adjusted_vat_due"`
	VATDueCell      decimal.Decimal `json:"vat_due_cell"`     // line 185 display
	VATCreditCell   decimal.Decimal `json:"vat_credit_cell"`  // line 190 display
	VATDue          decimal.Decimal `json:"vat_due"`          // line 200 display (floored at 0)
	CreditAvailable decimal.Decimal `json:"credit_available"` // line 205 display
}

// ComputeFinal combines the section VAT totals with the manual adjustment
// fields into the fixed 7-line VAT-due/credit/carry-forward computation.
//
//	line 185 = outputVAT - inputVAT - vatOnGovernmentVoucher - otherCredits
//	line 190 = |line 185| when line 185 is negative, else 0
//	line 200 = max(line 185, 0) - creditCarriedForward, floored at 0
//	line 205 = |line 185| + creditCarriedForward - max(line 185, 0) when the
//	           raw line 200 value is negative, else creditCarriedForward
func ComputeFinal(totalOutputVAT, totalInputVAT decimal.Decimal, adj ManualAdjustments) FinalCalculation {
	adjusted := totalOutputVAT.
		Sub(totalInputVAT).
		Sub(adj.VATOnGovernmentVoucher).
		Sub(adj.OtherCredits)

	duePart := decimal.Max(adjusted, decimal.Zero)

	creditCell := decimal.Zero
	if adjusted.IsNegative() {
		creditCell = adjusted.Abs()
	}

	rawPayable := duePart.Sub(adj.CreditCarriedForward)

	creditAvailable := adj.CreditCarriedForward
	if rawPayable.IsNegative() {
		creditAvailable = adjusted.Abs().Add(adj.CreditCarriedForward).Sub(duePart)
	}

	return FinalCalculation{
		AdjustedVATDue:  adjusted,
		VATDueCell:      duePart,
		VATCreditCell:   creditCell,
		VATDue:          decimal.Max(rawPayable, decimal.Zero),
		CreditAvailable: creditAvailable,
	}
}
