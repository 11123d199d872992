package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/internal/domain/vat"
	"github.com/tewodrosk/gibir-api/pkg/apperror"
)

func newReportFixture(t *testing.T) (*VATReportService, *ReceiptService, uuid.UUID) {
	t.Helper()
	lines := newFakeLineRepo()
	receipts := newFakeReceiptRepo(lines)
	filings := newFakeFilingRepo()
	return NewVATReportService(receipts, filings),
		NewReceiptService(receipts, lines),
		uuid.New()
}

func captureReceipt(t *testing.T, svc *ReceiptService, userID uuid.UUID, no string, date time.Time, items []ReceiptItemInput) {
	t.Helper()
	_, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		UserID:        userID,
		ReceiptNo:     no,
		ReceiptType:   enum.ReceiptTypeLocal,
		ReceiptDate:   date,
		PaymentMethod: "Cash",
		Items:         items,
	})
	require.NoError(t, err)
}

func TestMonthlyReportDerivesWorksheet(t *testing.T) {
	reports, receipts, userID := newReportFixture(t)
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// An output sale and a non-capital purchase in March
	captureReceipt(t, receipts, userID, "FS-0001", march, []ReceiptItemInput{
		{Description: "Sales", Nature: "10", TaxType: enum.TaxTypeVAT,
			Subtotal: amount("2000.00"), TaxAmount: amount("300.00")},
	})
	captureReceipt(t, receipts, userID, "FS-0002", march.AddDate(0, 0, 5), []ReceiptItemInput{
		{Description: "Supplies", Nature: "60", TaxType: enum.TaxTypeVAT,
			Subtotal: amount("600.00"), TaxAmount: amount("90.00")},
	})
	// An April receipt that must not leak into the March report
	captureReceipt(t, receipts, userID, "FS-0003", march.AddDate(0, 1, 0), []ReceiptItemInput{
		{Description: "Sales", Nature: "10", TaxType: enum.TaxTypeVAT,
			Subtotal: amount("9999.00"), TaxAmount: amount("1499.85")},
	})

	report, err := reports.GetMonthlyReport(context.Background(), userID, 3, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, report.ReceiptsInView)
	assert.True(t, report.Sections.Output.VAT.Equal(amount("300.00")))
	assert.True(t, report.Sections.NonCapital.VAT.Equal(amount("90.00")))
	// 300 output - 90 input
	assert.True(t, report.Final.AdjustedVATDue.Equal(amount("210.00")))
	assert.True(t, report.Final.VATDue.Equal(amount("210.00")))
	assert.True(t, report.Final.VATCreditCell.IsZero())
	assert.Equal(t, enum.FilingStatusDraft, report.FilingStatus)
	assert.Zero(t, report.UnmappedItems)
}

func TestMonthlyReportAppliesSavedFiling(t *testing.T) {
	reports, receipts, userID := newReportFixture(t)
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	captureReceipt(t, receipts, userID, "FS-0001", march, []ReceiptItemInput{
		{Description: "Sales", Nature: "10", TaxType: enum.TaxTypeVAT,
			Subtotal: amount("2000.00"), TaxAmount: amount("300.00")},
	})

	_, err := reports.SaveFiling(context.Background(), &SaveFilingInput{
		UserID: userID,
		Month:  3,
		Year:   2026,
		Overrides: vat.EditableValues{
			"10": {Total: amount("2500.00"), VAT: amount("375.00")},
		},
		Adjustments: vat.ManualAdjustments{
			VATOnGovernmentVoucher: amount("25.00"),
			OtherCredits:           decimal.Zero,
			CreditCarriedForward:   amount("50.00"),
		},
	})
	require.NoError(t, err)

	report, err := reports.GetMonthlyReport(context.Background(), userID, 3, 2026)
	require.NoError(t, err)

	// Override replaces the computed output figures
	assert.True(t, report.Sections.Output.Total.Equal(amount("2500.00")))
	assert.True(t, report.Sections.Output.VAT.Equal(amount("375.00")))
	// 375 - 0 input - 25 voucher = 350; minus 50 carried forward = 300
	assert.True(t, report.Final.AdjustedVATDue.Equal(amount("350.00")))
	assert.True(t, report.Final.VATDue.Equal(amount("300.00")))

	require.Len(t, report.Codes, 1)
	assert.True(t, report.Codes[0].Overridden)
	assert.True(t, report.Codes[0].Total.Equal(amount("2500.00")))
}

func TestSaveFilingBlockedOnValidationErrors(t *testing.T) {
	reports, _, userID := newReportFixture(t)

	_, err := reports.SaveFiling(context.Background(), &SaveFilingInput{
		UserID: userID,
		Month:  3,
		Year:   2026,
		Overrides: vat.EditableValues{
			"10": {Total: amount("100.00"), VAT: amount("150.00")},
		},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.NotEmpty(t, appErr.Errors)
	assert.Contains(t, appErr.Errors[0].Message, "VAT exceeds total")

	// Nothing was persisted
	filing, err := reports.filingRepo.GetForPeriod(context.Background(), userID, 3, 2026)
	require.NoError(t, err)
	assert.Nil(t, filing)
}

func TestSaveFilingReplacesOverrides(t *testing.T) {
	reports, _, userID := newReportFixture(t)

	save := func(overrides vat.EditableValues) *entity.VATFiling {
		filing, err := reports.SaveFiling(context.Background(), &SaveFilingInput{
			UserID:    userID,
			Month:     4,
			Year:      2026,
			Overrides: overrides,
		})
		require.NoError(t, err)
		return filing
	}

	first := save(vat.EditableValues{
		"10": {Total: amount("100.00"), VAT: amount("15.00")},
		"60": {Total: amount("200.00"), VAT: amount("30.00")},
	})
	require.Len(t, first.Overrides, 2)

	second := save(vat.EditableValues{
		"10": {Total: amount("120.00"), VAT: amount("18.00")},
	})
	require.Len(t, second.Overrides, 1)
	assert.Equal(t, "10", second.Overrides[0].Nature)
}

func TestSaveFilingSubmit(t *testing.T) {
	reports, _, userID := newReportFixture(t)

	filing, err := reports.SaveFiling(context.Background(), &SaveFilingInput{
		UserID: userID,
		Month:  5,
		Year:   2026,
		Submit: true,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.FilingStatusSubmitted, filing.Status)
}

func TestMonthlyReportRejectsBadMonth(t *testing.T) {
	reports, _, userID := newReportFixture(t)

	_, err := reports.GetMonthlyReport(context.Background(), userID, 13, 2026)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestMonthlyReportMixedReceiptUsesLineTypes(t *testing.T) {
	reports, receipts, userID := newReportFixture(t)
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// VAT line and TOT line on one receipt: the TOT tax folds into the
	// total instead of the VAT column.
	captureReceipt(t, receipts, userID, "FS-0001", march, []ReceiptItemInput{
		{Description: "Sales", Nature: "10", TaxType: enum.TaxTypeVAT,
			Subtotal: amount("1000.00"), TaxAmount: amount("150.00")},
		{Description: "Turnover sales", Nature: "10", TaxType: enum.TaxTypeTOT,
			Subtotal: amount("100.00"), TaxAmount: amount("10.00")},
	})

	report, err := reports.GetMonthlyReport(context.Background(), userID, 3, 2026)
	require.NoError(t, err)

	assert.True(t, report.Sections.Output.Total.Equal(amount("1110.00")))
	assert.True(t, report.Sections.Output.VAT.Equal(amount("150.00")))
}

func TestRangeReportIgnoresFilingAndBoundsDates(t *testing.T) {
	reports, receipts, userID := newReportFixture(t)
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	captureReceipt(t, receipts, userID, "FS-0001", march, []ReceiptItemInput{
		{Description: "Sales", Nature: "10", TaxType: enum.TaxTypeVAT,
			Subtotal: amount("2000.00"), TaxAmount: amount("300.00")},
	})
	captureReceipt(t, receipts, userID, "FS-0002", march.AddDate(0, 0, 10), []ReceiptItemInput{
		{Description: "Sales", Nature: "10", TaxType: enum.TaxTypeVAT,
			Subtotal: amount("500.00"), TaxAmount: amount("75.00")},
	})

	// A saved filing for March must not bleed into range-mode figures
	_, err := reports.SaveFiling(context.Background(), &SaveFilingInput{
		UserID: userID,
		Month:  3,
		Year:   2026,
		Overrides: vat.EditableValues{
			"10": {Total: amount("9000.00"), VAT: amount("1350.00")},
		},
	})
	require.NoError(t, err)

	report, err := reports.GetRangeReport(context.Background(), userID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 1, report.ReceiptsInView)
	assert.True(t, report.Sections.Output.VAT.Equal(amount("300.00")))
	assert.Equal(t, "2026-03-01", report.Start)
	assert.Equal(t, "2026-03-15", report.End)
	assert.Zero(t, report.Month)

	_, err = reports.GetRangeReport(context.Background(), userID, march, march.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestComputeWithholding(t *testing.T) {
	reports, _, _ := newReportFixture(t)

	res, err := reports.ComputeWithholding(&WithholdingInput{
		Kind: vat.WithholdingServices,
		Base: amount("5000.00"),
	})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.True(t, res.Amount.Equal(amount("100.00")))
	assert.Equal(t, "ETB 100.00", res.Formatted)

	res, err = reports.ComputeWithholding(&WithholdingInput{
		Kind: vat.WithholdingGoods,
		Base: amount("5000.00"),
	})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.True(t, res.Amount.IsZero())

	_, err = reports.ComputeWithholding(&WithholdingInput{
		Kind: "loans",
		Base: amount("5000.00"),
	})
	require.Error(t, err)
}
