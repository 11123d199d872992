package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/internal/domain/refdata"
	"github.com/tewodrosk/gibir-api/internal/domain/repository"
	"github.com/tewodrosk/gibir-api/internal/domain/vat"
	"github.com/tewodrosk/gibir-api/pkg/apperror"
	"github.com/tewodrosk/gibir-api/pkg/pagination"
)

// ReceiptService handles receipt capture and retrieval
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	lineRepo    repository.ReceiptLineItemRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	lineRepo repository.ReceiptLineItemRepository,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		lineRepo:    lineRepo,
	}
}

// ReceiptItemInput represents one line on a captured receipt
type ReceiptItemInput struct {
	Description string
	Nature      string
	TaxType     enum.TaxType
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	UserID        uuid.UUID
	ReceiptNo     string
	ReceiptType   enum.ReceiptType
	ReceiptDate   time.Time
	SellerName    string
	SellerTIN     string
	BuyerName     string
	BuyerTIN      string
	MachineNo     string
	PaymentMethod string
	BankName      string
	Items         []ReceiptItemInput
}

// CreateReceipt captures a new receipt with its line items. Line amounts
// are taken as entered; only the receipt-level totals are derived here.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.receiptRepo.GetByReceiptNo(ctx, input.UserID, input.ReceiptNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf("Receipt %s already captured", input.ReceiptNo))
	}

	subTotal := decimal.Zero
	taxTotal := decimal.Zero
	items := make([]entity.ReceiptLineItem, 0, len(input.Items))
	for i, item := range input.Items {
		subTotal = subTotal.Add(item.Subtotal)
		taxTotal = taxTotal.Add(item.TaxAmount)
		items = append(items, entity.ReceiptLineItem{
			LineNo:      i + 1,
			Description: item.Description,
			Nature:      item.Nature,
			TaxType:     item.TaxType,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			TaxAmount:   item.TaxAmount,
		})
	}

	receipt := &entity.Receipt{
		UserID:        input.UserID,
		ReceiptNo:     input.ReceiptNo,
		ReceiptType:   input.ReceiptType,
		ReceiptDate:   input.ReceiptDate,
		SellerName:    input.SellerName,
		SellerTIN:     input.SellerTIN,
		BuyerName:     input.BuyerName,
		BuyerTIN:      input.BuyerTIN,
		MachineNo:     input.MachineNo,
		PaymentMethod: input.PaymentMethod,
		BankName:      input.BankName,
		TaxType:       receiptTaxType(input.Items),
		SubTotal:      subTotal,
		TaxTotal:      taxTotal,
		GrandTotal:    subTotal.Add(taxTotal),
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].ReceiptID = receipt.ID
	}
	if err := s.lineRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.receiptRepo.GetWithItems(ctx, receipt.ID)
}

// GetReceipt retrieves one receipt with its line items
func (s *ReceiptService) GetReceipt(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.UserID != userID {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceipts lists the user's receipts with filtering and pagination
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	receipts, total, err := s.receiptRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, paging), nil
}

// UpdateReceiptInput represents the update receipt input. A nil Items slice
// leaves the existing line items untouched.
type UpdateReceiptInput struct {
	UserID        uuid.UUID
	ID            uuid.UUID
	ReceiptType   *enum.ReceiptType
	ReceiptDate   *time.Time
	SellerName    *string
	SellerTIN     *string
	BuyerName     *string
	BuyerTIN      *string
	MachineNo     *string
	PaymentMethod *string
	BankName      *string
	Items         []ReceiptItemInput
}

// UpdateReceipt updates a captured receipt. Replacing the line items
// recomputes the receipt-level totals.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, input *UpdateReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	if input.ReceiptType != nil {
		if !input.ReceiptType.Valid() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown receipt type %q", *input.ReceiptType))
		}
		receipt.ReceiptType = *input.ReceiptType
	}
	if input.ReceiptDate != nil {
		receipt.ReceiptDate = *input.ReceiptDate
	}
	if input.SellerName != nil {
		receipt.SellerName = *input.SellerName
	}
	if input.SellerTIN != nil {
		receipt.SellerTIN = *input.SellerTIN
	}
	if input.BuyerName != nil {
		receipt.BuyerName = *input.BuyerName
	}
	if input.BuyerTIN != nil {
		receipt.BuyerTIN = *input.BuyerTIN
	}
	if input.MachineNo != nil {
		receipt.MachineNo = *input.MachineNo
	}
	if input.PaymentMethod != nil {
		if !refdata.ValidPaymentMethod(*input.PaymentMethod) {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown payment method %q", *input.PaymentMethod))
		}
		receipt.PaymentMethod = *input.PaymentMethod
	}
	if input.BankName != nil {
		if *input.BankName != "" && !refdata.ValidBankName(*input.BankName) {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown bank %q", *input.BankName))
		}
		receipt.BankName = *input.BankName
	}

	if input.Items != nil {
		if err := validateItems(input.Items); err != nil {
			return nil, err
		}

		if err := s.lineRepo.DeleteByReceiptID(ctx, receipt.ID); err != nil {
			return nil, err
		}

		subTotal := decimal.Zero
		taxTotal := decimal.Zero
		items := make([]entity.ReceiptLineItem, 0, len(input.Items))
		for i, item := range input.Items {
			subTotal = subTotal.Add(item.Subtotal)
			taxTotal = taxTotal.Add(item.TaxAmount)
			items = append(items, entity.ReceiptLineItem{
				ReceiptID:   receipt.ID,
				LineNo:      i + 1,
				Description: item.Description,
				Nature:      item.Nature,
				TaxType:     item.TaxType,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Subtotal:    item.Subtotal,
				TaxAmount:   item.TaxAmount,
			})
		}
		if err := s.lineRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}

		receipt.TaxType = receiptTaxType(input.Items)
		receipt.SubTotal = subTotal
		receipt.TaxTotal = taxTotal
		receipt.GrandTotal = subTotal.Add(taxTotal)
	}

	if err := s.receiptRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}

	return s.receiptRepo.GetWithItems(ctx, receipt.ID)
}

// DeleteReceipt removes a receipt and its line items
func (s *ReceiptService) DeleteReceipt(ctx context.Context, userID, id uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil || receipt.UserID != userID {
		return apperror.NewNotFoundError("Receipt")
	}

	if err := s.lineRepo.DeleteByReceiptID(ctx, id); err != nil {
		return err
	}
	return s.receiptRepo.Delete(ctx, id)
}

func (s *ReceiptService) validateInput(input *CreateReceiptInput) error {
	if input.ReceiptNo == "" {
		return apperror.NewBadRequestError("Receipt number is required")
	}
	if !input.ReceiptType.Valid() {
		return apperror.NewBadRequestError(fmt.Sprintf("Unknown receipt type %q", input.ReceiptType))
	}
	if input.PaymentMethod != "" && !refdata.ValidPaymentMethod(input.PaymentMethod) {
		return apperror.NewBadRequestError(fmt.Sprintf("Unknown payment method %q", input.PaymentMethod))
	}
	if input.BankName != "" && !refdata.ValidBankName(input.BankName) {
		return apperror.NewBadRequestError(fmt.Sprintf("Unknown bank %q", input.BankName))
	}
	if len(input.Items) == 0 {
		return apperror.NewBadRequestError("Receipt needs at least one line item")
	}
	return validateItems(input.Items)
}

func validateItems(items []ReceiptItemInput) error {
	for i, item := range items {
		if item.Nature == "" {
			return apperror.NewBadRequestError(fmt.Sprintf("Line %d: nature code is required", i+1))
		}
		if _, ok := vat.Lookup(item.Nature); !ok {
			return apperror.NewBadRequestError(fmt.Sprintf("Line %d: unknown nature code %q", i+1, item.Nature))
		}
		if !item.TaxType.Valid() || item.TaxType == enum.TaxTypeMixed {
			return apperror.NewBadRequestError(fmt.Sprintf("Line %d: invalid tax type %q", i+1, item.TaxType))
		}
		if item.Subtotal.IsNegative() {
			return apperror.NewBadRequestError(fmt.Sprintf("Line %d: subtotal must not be negative", i+1))
		}
		if item.TaxAmount.IsNegative() {
			return apperror.NewBadRequestError(fmt.Sprintf("Line %d: tax amount must not be negative", i+1))
		}
	}
	return nil
}

// receiptTaxType derives the receipt-level tax type from the lines: the
// common type when all lines agree, MIXED otherwise.
func receiptTaxType(items []ReceiptItemInput) enum.TaxType {
	if len(items) == 0 {
		return enum.TaxTypeNone
	}
	first := items[0].TaxType
	for _, item := range items[1:] {
		if item.TaxType != first {
			return enum.TaxTypeMixed
		}
	}
	return first
}
