package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	domainRepo "github.com/tewodrosk/gibir-api/internal/domain/repository"
	"gorm.io/gorm"
)

type vatFilingRepository struct {
	db *gorm.DB
}

// NewVATFilingRepository creates a new VAT filing repository
func NewVATFilingRepository(db *gorm.DB) domainRepo.VATFilingRepository {
	return &vatFilingRepository{db: db}
}

func (r *vatFilingRepository) GetForPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*entity.VATFiling, error) {
	var filing entity.VATFiling
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Preload("Overrides").
		First(&filing, "month = ? AND year = ?", month, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &filing, err
}

func (r *vatFilingRepository) Upsert(ctx context.Context, filing *entity.VATFiling) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.VATFiling
		err := tx.
			Where("user_id = ? AND month = ? AND year = ?", filing.UserID, filing.Month, filing.Year).
			First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(filing).Error
		case err != nil:
			return err
		}

		filing.ID = existing.ID
		if err := tx.
			Where("filing_id = ?", existing.ID).
			Delete(&entity.FilingOverride{}).Error; err != nil {
			return err
		}
		for i := range filing.Overrides {
			filing.Overrides[i].FilingID = existing.ID
		}
		return tx.Save(filing).Error
	})
}

func (r *vatFilingRepository) ListByYear(ctx context.Context, userID uuid.UUID, year int) ([]entity.VATFiling, error) {
	var filings []entity.VATFiling
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Where("year = ?", year).
		Order("month ASC").
		Find(&filings).Error
	return filings, err
}
