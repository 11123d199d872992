package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Receipt represents a captured tax receipt: local, import/export or
// warehouse. Line items are ordered by LineNo.
type Receipt struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	ReceiptNo     string           `gorm:"size:100;not null;uniqueIndex:idx_receipts_user_no" json:"receipt_no"`
	ReceiptType   enum.ReceiptType `gorm:"size:20;not null;index" json:"receipt_type"`
	ReceiptDate   time.Time        `gorm:"type:date;not null;index" json:"receipt_date"`
	SellerName    string           `gorm:"size:255" json:"seller_name"`
	SellerTIN     string           `gorm:"size:20" json:"seller_tin"`
	BuyerName     string           `gorm:"size:255" json:"buyer_name"`
	BuyerTIN      string           `gorm:"size:20" json:"buyer_tin"`
	MachineNo     string           `gorm:"size:50" json:"machine_no"`
	PaymentMethod string           `gorm:"size:50" json:"payment_method"`
	BankName      string           `gorm:"size:100" json:"bank_name"`
	// Receipt-level tax type; MIXED when line items carry differing types.
	TaxType    enum.TaxType    `gorm:"size:20" json:"tax_type"`
	SubTotal   decimal.Decimal `gorm:"type:numeric(18,2)" json:"sub_total"`
	TaxTotal   decimal.Decimal `gorm:"type:numeric(18,2)" json:"tax_total"`
	GrandTotal decimal.Decimal `gorm:"type:numeric(18,2)" json:"grand_total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User  User              `gorm:"foreignKey:UserID" json:"-"`
	Items []ReceiptLineItem `gorm:"foreignKey:ReceiptID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptLineItem represents a single line on a receipt. Subtotal and
// TaxAmount are never recomputed after capture; the summary engine only
// reads them.
type ReceiptLineItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"receipt_id"`
	LineNo      int             `gorm:"not null" json:"line_no"`
	Description string          `gorm:"size:255" json:"description"`
	Nature      string          `gorm:"size:10;not null;index" json:"nature"`
	TaxType     enum.TaxType    `gorm:"size:20" json:"tax_type"`
	Quantity    decimal.Decimal `gorm:"type:numeric(18,3)" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(18,2)" json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(18,2)" json:"subtotal"`
	TaxAmount   decimal.Decimal `gorm:"type:numeric(18,2)" json:"tax_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Receipt Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *ReceiptLineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptLineItem model
func (ReceiptLineItem) TableName() string {
	return "receipt_line_items"
}
