package request

import "github.com/shopspring/decimal"

// OverrideRequest represents one user-edited (total, vat) pair for a
// nature code
type OverrideRequest struct {
	Total decimal.Decimal `json:"total"`
	VAT   decimal.Decimal `json:"vat"`
}

// SaveFilingRequest represents the user-entered figures of a monthly VAT
// declaration
type SaveFilingRequest struct {
	Overrides              map[string]OverrideRequest `json:"overrides"`
	VATOnGovernmentVoucher decimal.Decimal            `json:"vat_on_government_voucher"`
	OtherCredits           decimal.Decimal            `json:"other_credits"`
	CreditCarriedForward   decimal.Decimal            `json:"credit_carried_forward"`
	Submit                 bool                       `json:"submit"`
}

// WithholdingRequest represents a withholding computation request
type WithholdingRequest struct {
	Kind string          `json:"kind" binding:"required"`
	Base decimal.Decimal `json:"base" binding:"required"`
}
