package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/pkg/pagination"
)

// DocumentRepository defines the interface for uploaded document operations
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	Update(ctx context.Context, doc *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *DocumentFilterParams) ([]entity.Document, int64, error)
	// CountByStatus counts documents per review status. A Nil userID counts
	// across all users.
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[enum.DocumentStatus]int64, error)
}

// DocumentFilterParams contains filtering parameters for document queries.
// UserID of uuid.Nil lists across all users (admin review queue).
type DocumentFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     uuid.UUID
	Status     *enum.DocumentStatus
	Search     string
}
