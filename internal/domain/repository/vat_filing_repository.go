package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
)

// VATFilingRepository defines the interface for VAT filing persistence
type VATFilingRepository interface {
	// GetForPeriod returns the filing for a user's month/year with overrides
	// preloaded, or nil when none has been saved yet.
	GetForPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*entity.VATFiling, error)
	// Upsert creates or replaces the filing for its user/period, including
	// its override rows.
	Upsert(ctx context.Context, filing *entity.VATFiling) error
	ListByYear(ctx context.Context, userID uuid.UUID, year int) ([]entity.VATFiling, error)
}
