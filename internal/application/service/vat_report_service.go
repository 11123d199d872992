package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/internal/domain/repository"
	"github.com/tewodrosk/gibir-api/internal/domain/vat"
	"github.com/tewodrosk/gibir-api/pkg/apperror"
)

// VATReportService derives the monthly VAT declaration worksheet from
// captured receipts. Nothing derived is ever persisted: every report
// request recomputes the summary from the receipts, then layers the saved
// filing (overrides and manual adjustments) on top.
type VATReportService struct {
	receiptRepo repository.ReceiptRepository
	filingRepo  repository.VATFilingRepository
}

// NewVATReportService creates a new VAT report service
func NewVATReportService(
	receiptRepo repository.ReceiptRepository,
	filingRepo repository.VATFilingRepository,
) *VATReportService {
	return &VATReportService{
		receiptRepo: receiptRepo,
		filingRepo:  filingRepo,
	}
}

// CodeFigures is the reported per-nature-code row: computed figures plus
// the override pair that currently applies, if any.
type CodeFigures struct {
	Nature     string          `json:"nature"`
	Label      string          `json:"label"`
	Total      decimal.Decimal `json:"total"`
	VAT        decimal.Decimal `json:"vat"`
	Count      int             `json:"count"`
	Overridden bool            `json:"overridden"`
}

// VATReport is the full monthly worksheet: per-code detail, section
// rollups, manual adjustments and the final 7-line computation.
type VATReport struct {
	Month          int                   `json:"month,omitempty"`
	Year           int                   `json:"year,omitempty"`
	Start          string                `json:"start,omitempty"`
	End            string                `json:"end,omitempty"`
	Codes          []CodeFigures         `json:"codes"`
	Sections       vat.SectionTotals     `json:"sections"`
	Adjustments    vat.ManualAdjustments `json:"adjustments"`
	Final          vat.FinalCalculation  `json:"final"`
	FilingStatus   enum.FilingStatus     `json:"filing_status"`
	UnmappedItems  int                   `json:"unmapped_items"`
	ReceiptsInView int                   `json:"receipts_in_view"`
}

// GetMonthlyReport computes the declaration worksheet for one month
func (s *VATReportService) GetMonthlyReport(ctx context.Context, userID uuid.UUID, month, year int) (*VATReport, error) {
	if month < 1 || month > 12 {
		return nil, apperror.NewBadRequestError("Month must be between 1 and 12")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	receipts, err := s.receiptRepo.ListForPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	filing, err := s.filingRepo.GetForPeriod(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	engineReceipts := toEngineReceipts(receipts)
	filtered := vat.FilterReceiptsByMonth(engineReceipts, time.Month(month), year)
	summary := vat.CalculateVATSummary(filtered)

	overrides := vat.EditableValues{}
	adjustments := vat.ManualAdjustments{
		VATOnGovernmentVoucher: decimal.Zero,
		OtherCredits:           decimal.Zero,
		CreditCarriedForward:   decimal.Zero,
	}
	status := enum.FilingStatusDraft
	if filing != nil {
		for _, o := range filing.Overrides {
			overrides[o.Nature] = vat.Override{Total: o.Total, VAT: o.VAT}
		}
		adjustments = vat.ManualAdjustments{
			VATOnGovernmentVoucher: filing.VATOnGovernmentVoucher,
			OtherCredits:           filing.OtherCredits,
			CreditCarriedForward:   filing.CreditCarriedForward,
		}
		status = filing.Status
	}

	sections := vat.CalculateSectionTotals(summary, overrides)
	final := vat.ComputeFinal(sections.Output.VAT, sections.Capital.VAT.Add(sections.NonCapital.VAT), adjustments)

	return &VATReport{
		Month:          month,
		Year:           year,
		Codes:          codeRows(summary, overrides),
		Sections:       sections,
		Adjustments:    adjustments,
		Final:          final,
		FilingStatus:   status,
		UnmappedItems:  summary.UnmappedItems,
		ReceiptsInView: len(filtered),
	}, nil
}

// GetRangeReport computes a worksheet over an arbitrary inclusive date
// range. Filings are monthly, so no saved overrides or adjustments apply
// here; the figures are purely derived.
func (s *VATReportService) GetRangeReport(ctx context.Context, userID uuid.UUID, start, end time.Time) (*VATReport, error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("End date must not precede start date")
	}

	receipts, err := s.receiptRepo.ListForPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	engineReceipts := toEngineReceipts(receipts)
	filtered := vat.FilterReceiptsByDateRange(engineReceipts, start, end)
	summary := vat.CalculateVATSummary(filtered)

	adjustments := vat.ManualAdjustments{
		VATOnGovernmentVoucher: decimal.Zero,
		OtherCredits:           decimal.Zero,
		CreditCarriedForward:   decimal.Zero,
	}
	sections := vat.CalculateSectionTotals(summary, nil)
	final := vat.ComputeFinal(sections.Output.VAT, sections.Capital.VAT.Add(sections.NonCapital.VAT), adjustments)

	return &VATReport{
		Start:          start.Format("2006-01-02"),
		End:            end.Format("2006-01-02"),
		Codes:          codeRows(summary, nil),
		Sections:       sections,
		Adjustments:    adjustments,
		Final:          final,
		FilingStatus:   enum.FilingStatusDraft,
		UnmappedItems:  summary.UnmappedItems,
		ReceiptsInView: len(filtered),
	}, nil
}

// SaveFilingInput represents the user-entered figures to persist for a
// month: override pairs and the manual adjustment lines.
type SaveFilingInput struct {
	UserID      uuid.UUID
	Month       int
	Year        int
	Overrides   vat.EditableValues
	Adjustments vat.ManualAdjustments
	Submit      bool
}

// SaveFiling validates and persists the user-entered figures. The save is
// blocked while any validation message is outstanding.
func (s *VATReportService) SaveFiling(ctx context.Context, input *SaveFilingInput) (*entity.VATFiling, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, apperror.NewBadRequestError("Month must be between 1 and 12")
	}

	if msgs := vat.ValidateValues(input.Overrides, input.Adjustments); len(msgs) > 0 {
		fieldErrs := make([]apperror.FieldError, 0, len(msgs))
		for _, m := range msgs {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "values", Message: m})
		}
		return nil, apperror.NewValidationError(fieldErrs)
	}

	status := enum.FilingStatusDraft
	if input.Submit {
		status = enum.FilingStatusSubmitted
	}

	filing := &entity.VATFiling{
		UserID:                 input.UserID,
		Month:                  input.Month,
		Year:                   input.Year,
		VATOnGovernmentVoucher: input.Adjustments.VATOnGovernmentVoucher,
		OtherCredits:           input.Adjustments.OtherCredits,
		CreditCarriedForward:   input.Adjustments.CreditCarriedForward,
		Status:                 status,
	}
	for nature, o := range input.Overrides {
		filing.Overrides = append(filing.Overrides, entity.FilingOverride{
			Nature: nature,
			Total:  o.Total,
			VAT:    o.VAT,
		})
	}

	if err := s.filingRepo.Upsert(ctx, filing); err != nil {
		return nil, err
	}

	return s.filingRepo.GetForPeriod(ctx, input.UserID, input.Month, input.Year)
}

// ListFilings returns the user's saved filings for a year
func (s *VATReportService) ListFilings(ctx context.Context, userID uuid.UUID, year int) ([]entity.VATFiling, error) {
	return s.filingRepo.ListByYear(ctx, userID, year)
}

// WithholdingInput represents a withholding computation request
type WithholdingInput struct {
	Kind vat.WithholdingKind
	Base decimal.Decimal
}

// WithholdingResult is the computed withholding for one payment
type WithholdingResult struct {
	Kind      vat.WithholdingKind `json:"kind"`
	Base      decimal.Decimal     `json:"base"`
	Amount    decimal.Decimal     `json:"amount"`
	Applied   bool                `json:"applied"`
	Formatted string              `json:"formatted"`
}

// ComputeWithholding applies the statutory withholding rule to a payment
func (s *VATReportService) ComputeWithholding(input *WithholdingInput) (*WithholdingResult, error) {
	if !input.Kind.Valid() {
		return nil, apperror.NewBadRequestError("Kind must be goods or services")
	}
	if input.Base.IsNegative() {
		return nil, apperror.NewBadRequestError("Base amount must not be negative")
	}

	amount, applied := vat.ComputeWithholding(input.Kind, input.Base)
	return &WithholdingResult{
		Kind:      input.Kind,
		Base:      input.Base,
		Amount:    amount,
		Applied:   applied,
		Formatted: vat.FormatETB(amount),
	}, nil
}

// toEngineReceipts maps stored receipts into the derivation engine's
// read-only view. The receipt-level tax type feeds the line fallback
// unless the receipt is MIXED, in which case only line-level types count.
func toEngineReceipts(receipts []entity.Receipt) []vat.Receipt {
	out := make([]vat.Receipt, 0, len(receipts))
	for _, r := range receipts {
		fallback := r.TaxType
		if fallback == enum.TaxTypeMixed {
			fallback = enum.TaxTypeNone
		}

		items := make([]vat.LineItem, 0, len(r.Items))
		for _, li := range r.Items {
			items = append(items, vat.LineItem{
				Nature:      li.Nature,
				TaxType:     li.TaxType,
				ItemTaxType: fallback,
				Subtotal:    li.Subtotal,
				TaxAmount:   li.TaxAmount,
			})
		}
		out = append(out, vat.Receipt{
			ID:    r.ID.String(),
			Date:  r.ReceiptDate.Format("2006-01-02"),
			Items: items,
		})
	}
	return out
}

// codeRows flattens the summary map into sorted display rows
func codeRows(summary *vat.Summary, overrides vat.EditableValues) []CodeFigures {
	rows := make([]CodeFigures, 0, len(summary.Codes))
	for _, nature := range vat.SortedCodes(summary) {
		data := summary.Codes[nature]
		total, vatAmount := data.Total, data.VAT
		_, overridden := overrides[nature]
		if overridden {
			o := overrides[nature]
			total, vatAmount = o.Total, o.VAT
			if vat.IsVATExcluded(nature) {
				vatAmount = decimal.Zero
			}
		}

		label := ""
		if mapping, ok := vat.Lookup(nature); ok {
			label = mapping.Label
		}

		rows = append(rows, CodeFigures{
			Nature:     nature,
			Label:      label,
			Total:      total,
			VAT:        vatAmount,
			Count:      data.Count,
			Overridden: overridden,
		})
	}
	return rows
}
