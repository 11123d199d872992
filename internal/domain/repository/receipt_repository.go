package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/pkg/pagination"
)

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	GetByReceiptNo(ctx context.Context, userID uuid.UUID, receiptNo string) (*entity.Receipt, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	Update(ctx context.Context, receipt *entity.Receipt) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
	// ListForPeriod returns the user's receipts with items preloaded,
	// unpaginated, for summary derivation.
	ListForPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.Receipt, error)
	CountByType(ctx context.Context, userID uuid.UUID) (map[enum.ReceiptType]int64, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries
type ReceiptFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	ReceiptType *enum.ReceiptType
	TaxType     *enum.TaxType
	StartDate   *time.Time
	EndDate     *time.Time
	SortBy      string
	SortOrder   string
}

// ReceiptLineItemRepository defines the interface for line item operations
type ReceiptLineItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.ReceiptLineItem) error
	GetByReceiptID(ctx context.Context, receiptID uuid.UUID) ([]entity.ReceiptLineItem, error)
	DeleteByReceiptID(ctx context.Context, receiptID uuid.UUID) error
}
