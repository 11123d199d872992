package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Document represents an uploaded receipt attachment awaiting admin review
type Document struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	ReceiptID   *uuid.UUID          `gorm:"type:uuid;index" json:"receipt_id,omitempty"`
	FileName    string              `gorm:"size:255;not null" json:"file_name"`
	StoredPath  string              `gorm:"size:512;not null" json:"-"`
	ContentType string              `gorm:"size:100" json:"content_type"`
	SizeBytes   int64               `gorm:"not null" json:"size_bytes"`
	Status      enum.DocumentStatus `gorm:"default:0;index" json:"status"`
	ReviewNote  *string             `gorm:"type:text" json:"review_note,omitempty"`
	ReviewedBy  *uuid.UUID          `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Receipt *Receipt `gorm:"foreignKey:ReceiptID" json:"receipt,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}
