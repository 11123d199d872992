package request

import "github.com/shopspring/decimal"

// ReceiptItemRequest represents one line item on a captured receipt
type ReceiptItemRequest struct {
	Description string          `json:"description" binding:"max=255"`
	Nature      string          `json:"nature" binding:"required"`
	TaxType     string          `json:"tax_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal" binding:"required"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
}

// CreateReceiptRequest represents a receipt capture request
type CreateReceiptRequest struct {
	ReceiptNo     string               `json:"receipt_no" binding:"required,max=100"`
	ReceiptType   string               `json:"receipt_type" binding:"required"`
	ReceiptDate   string               `json:"receipt_date" binding:"required"`
	SellerName    string               `json:"seller_name" binding:"max=255"`
	SellerTIN     string               `json:"seller_tin" binding:"omitempty,len=10,numeric"`
	BuyerName     string               `json:"buyer_name" binding:"max=255"`
	BuyerTIN      string               `json:"buyer_tin" binding:"omitempty,len=10,numeric"`
	MachineNo     string               `json:"machine_no" binding:"max=50"`
	PaymentMethod string               `json:"payment_method"`
	BankName      string               `json:"bank_name"`
	Items         []ReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateReceiptRequest represents a receipt update request. Omitted fields
// are left unchanged; a present items array replaces all line items.
type UpdateReceiptRequest struct {
	ReceiptType   *string              `json:"receipt_type"`
	ReceiptDate   *string              `json:"receipt_date"`
	SellerName    *string              `json:"seller_name"`
	SellerTIN     *string              `json:"seller_tin"`
	BuyerName     *string              `json:"buyer_name"`
	BuyerTIN      *string              `json:"buyer_tin"`
	MachineNo     *string              `json:"machine_no"`
	PaymentMethod *string              `json:"payment_method"`
	BankName      *string              `json:"bank_name"`
	Items         []ReceiptItemRequest `json:"items"`
}

// ListReceiptsRequest represents receipt list query parameters
type ListReceiptsRequest struct {
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
	Search      string `form:"search"`
	ReceiptType string `form:"receipt_type"`
	TaxType     string `form:"tax_type"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	SortBy      string `form:"sort_by"`
	SortOrder   string `form:"sort_order"`
}
