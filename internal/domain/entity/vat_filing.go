package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"gorm.io/gorm"
)

// VATFiling persists the user-entered figures of a monthly VAT declaration:
// the manual adjustment lines plus any accepted per-nature-code overrides.
// Derived figures are never stored; they are recomputed from receipts on
// every report request.
type VATFiling struct {
	ID                     uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID                 uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_filings_user_period" json:"user_id"`
	Month                  int               `gorm:"not null;uniqueIndex:idx_filings_user_period" json:"month"`
	Year                   int               `gorm:"not null;uniqueIndex:idx_filings_user_period" json:"year"`
	VATOnGovernmentVoucher decimal.Decimal   `gorm:"type:numeric(18,2)" json:"vat_on_government_voucher"`
	OtherCredits           decimal.Decimal   `gorm:"type:numeric(18,2)" json:"other_credits"`
	CreditCarriedForward   decimal.Decimal   `gorm:"type:numeric(18,2)" json:"credit_carried_forward"`
	Status                 enum.FilingStatus `gorm:"default:0" json:"status"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
	DeletedAt              gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User      User              `gorm:"foreignKey:UserID" json:"-"`
	Overrides []FilingOverride  `gorm:"foreignKey:FilingID" json:"overrides,omitempty"`
}

// BeforeCreate generates a UUID before creating a new filing
func (f *VATFiling) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VATFiling model
func (VATFiling) TableName() string {
	return "vat_filings"
}

// FilingOverride stores one accepted per-nature-code (total, vat) override
type FilingOverride struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	FilingID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_overrides_filing_nature" json:"filing_id"`
	Nature   string          `gorm:"size:10;not null;uniqueIndex:idx_overrides_filing_nature" json:"nature"`
	Total    decimal.Decimal `gorm:"type:numeric(18,2)" json:"total"`
	VAT      decimal.Decimal `gorm:"type:numeric(18,2)" json:"vat"`

	// Relationships
	Filing VATFiling `gorm:"foreignKey:FilingID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new override row
func (o *FilingOverride) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FilingOverride model
func (FilingOverride) TableName() string {
	return "vat_filing_overrides"
}
