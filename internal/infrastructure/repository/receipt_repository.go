package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	domainRepo "github.com/tewodrosk/gibir-api/internal/domain/repository"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetByReceiptNo(ctx context.Context, userID uuid.UUID, receiptNo string) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		First(&receipt, "receipt_no = ?", receiptNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) Update(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Save(receipt).Error
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Receipt{}, "id = ?", id).Error
}

func (r *receiptRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).Scopes(OwnedBy(userID))

	if params.Search != "" {
		query = query.Where("receipt_no ILIKE ? OR seller_name ILIKE ? OR buyer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.ReceiptType != nil {
		query = query.Where("receipt_type = ?", *params.ReceiptType)
	}

	if params.TaxType != nil {
		query = query.Where("tax_type = ?", *params.TaxType)
	}

	if params.StartDate != nil {
		query = query.Where("receipt_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("receipt_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "receipt_date"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		Order(sortBy + " " + sortOrder).
		Find(&receipts).Error

	return receipts, total, err
}

func (r *receiptRepository) ListForPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Where("receipt_date >= ? AND receipt_date <= ?", start, end).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		Order("receipt_date ASC, created_at ASC").
		Find(&receipts).Error
	return receipts, err
}

func (r *receiptRepository) CountByType(ctx context.Context, userID uuid.UUID) (map[enum.ReceiptType]int64, error) {
	type row struct {
		ReceiptType enum.ReceiptType
		Count       int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.Receipt{}).
		Scopes(OwnedBy(userID)).
		Select("receipt_type, COUNT(*) AS count").
		Group("receipt_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.ReceiptType]int64, len(rows))
	for _, r := range rows {
		counts[r.ReceiptType] = r.Count
	}
	return counts, nil
}

type receiptLineItemRepository struct {
	db *gorm.DB
}

// NewReceiptLineItemRepository creates a new line item repository
func NewReceiptLineItemRepository(db *gorm.DB) domainRepo.ReceiptLineItemRepository {
	return &receiptLineItemRepository{db: db}
}

func (r *receiptLineItemRepository) CreateBatch(ctx context.Context, items []entity.ReceiptLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *receiptLineItemRepository) GetByReceiptID(ctx context.Context, receiptID uuid.UUID) ([]entity.ReceiptLineItem, error) {
	var items []entity.ReceiptLineItem
	err := r.db.WithContext(ctx).
		Where("receipt_id = ?", receiptID).
		Order("line_no ASC").
		Find(&items).Error
	return items, err
}

func (r *receiptLineItemRepository) DeleteByReceiptID(ctx context.Context, receiptID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("receipt_id = ?", receiptID).
		Delete(&entity.ReceiptLineItem{}).Error
}
