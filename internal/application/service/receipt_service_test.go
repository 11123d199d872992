package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/pkg/apperror"
)

func newReceiptService() (*ReceiptService, *fakeReceiptRepo) {
	lines := newFakeLineRepo()
	receipts := newFakeReceiptRepo(lines)
	return NewReceiptService(receipts, lines), receipts
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validCreateInput(userID uuid.UUID) *CreateReceiptInput {
	return &CreateReceiptInput{
		UserID:        userID,
		ReceiptNo:     "FS-0001",
		ReceiptType:   enum.ReceiptTypeLocal,
		ReceiptDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		SellerName:    "Sheger Trading PLC",
		SellerTIN:     "0012345678",
		PaymentMethod: "Cash",
		Items: []ReceiptItemInput{
			{
				Description: "Office chairs",
				Nature:      "60",
				TaxType:     enum.TaxTypeVAT,
				Quantity:    amount("2"),
				UnitPrice:   amount("500.00"),
				Subtotal:    amount("1000.00"),
				TaxAmount:   amount("150.00"),
			},
			{
				Description: "Delivery",
				Nature:      "60",
				TaxType:     enum.TaxTypeVAT,
				Quantity:    amount("1"),
				UnitPrice:   amount("200.00"),
				Subtotal:    amount("200.00"),
				TaxAmount:   amount("30.00"),
			},
		},
	}
}

func TestCreateReceiptComputesTotals(t *testing.T) {
	svc, _ := newReceiptService()
	userID := uuid.New()

	receipt, err := svc.CreateReceipt(context.Background(), validCreateInput(userID))
	require.NoError(t, err)

	assert.True(t, receipt.SubTotal.Equal(amount("1200.00")))
	assert.True(t, receipt.TaxTotal.Equal(amount("180.00")))
	assert.True(t, receipt.GrandTotal.Equal(amount("1380.00")))
	assert.Equal(t, enum.TaxTypeVAT, receipt.TaxType)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, 1, receipt.Items[0].LineNo)
	assert.Equal(t, 2, receipt.Items[1].LineNo)
}

func TestCreateReceiptMixedTaxTypes(t *testing.T) {
	svc, _ := newReceiptService()
	input := validCreateInput(uuid.New())
	input.Items[1].TaxType = enum.TaxTypeTOT

	receipt, err := svc.CreateReceipt(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, enum.TaxTypeMixed, receipt.TaxType)
}

func TestCreateReceiptDuplicateNumber(t *testing.T) {
	svc, _ := newReceiptService()
	userID := uuid.New()

	_, err := svc.CreateReceipt(context.Background(), validCreateInput(userID))
	require.NoError(t, err)

	_, err = svc.CreateReceipt(context.Background(), validCreateInput(userID))
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// Same receipt number under a different user is fine
	_, err = svc.CreateReceipt(context.Background(), validCreateInput(uuid.New()))
	assert.NoError(t, err)
}

func TestCreateReceiptRejectsUnknownNatureCode(t *testing.T) {
	svc, _ := newReceiptService()
	input := validCreateInput(uuid.New())
	input.Items[0].Nature = "999"

	_, err := svc.CreateReceipt(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateReceiptRejectsUnknownPaymentMethod(t *testing.T) {
	svc, _ := newReceiptService()
	input := validCreateInput(uuid.New())
	input.PaymentMethod = "Barter"

	_, err := svc.CreateReceipt(context.Background(), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment method")
}

func TestCreateReceiptRejectsEmptyItems(t *testing.T) {
	svc, _ := newReceiptService()
	input := validCreateInput(uuid.New())
	input.Items = nil

	_, err := svc.CreateReceipt(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateReceiptReplacesItems(t *testing.T) {
	svc, _ := newReceiptService()
	userID := uuid.New()

	receipt, err := svc.CreateReceipt(context.Background(), validCreateInput(userID))
	require.NoError(t, err)

	updated, err := svc.UpdateReceipt(context.Background(), &UpdateReceiptInput{
		UserID: userID,
		ID:     receipt.ID,
		Items: []ReceiptItemInput{
			{
				Description: "Stationery",
				Nature:      "65",
				TaxType:     enum.TaxTypeVAT,
				Quantity:    amount("1"),
				UnitPrice:   amount("400.00"),
				Subtotal:    amount("400.00"),
				TaxAmount:   amount("60.00"),
			},
		},
	})
	require.NoError(t, err)

	assert.True(t, updated.SubTotal.Equal(amount("400.00")))
	assert.True(t, updated.TaxTotal.Equal(amount("60.00")))
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "65", updated.Items[0].Nature)
}

func TestGetReceiptScopedToOwner(t *testing.T) {
	svc, _ := newReceiptService()
	userID := uuid.New()

	receipt, err := svc.CreateReceipt(context.Background(), validCreateInput(userID))
	require.NoError(t, err)

	_, err = svc.GetReceipt(context.Background(), uuid.New(), receipt.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	got, err := svc.GetReceipt(context.Background(), userID, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, receipt.ID, got.ID)
}

func TestDeleteReceiptRemovesLineItems(t *testing.T) {
	svc, repo := newReceiptService()
	userID := uuid.New()

	receipt, err := svc.CreateReceipt(context.Background(), validCreateInput(userID))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReceipt(context.Background(), userID, receipt.ID))

	gone, err := repo.GetWithItems(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
