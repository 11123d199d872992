package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/internal/domain/repository"
	"github.com/tewodrosk/gibir-api/internal/domain/vat"
)

// DashboardService provides taxpayer dashboard statistics
type DashboardService struct {
	receiptRepo repository.ReceiptRepository
	docRepo     repository.DocumentRepository
	filingRepo  repository.VATFilingRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	receiptRepo repository.ReceiptRepository,
	docRepo repository.DocumentRepository,
	filingRepo repository.VATFilingRepository,
) *DashboardService {
	return &DashboardService{
		receiptRepo: receiptRepo,
		docRepo:     docRepo,
		filingRepo:  filingRepo,
	}
}

// DashboardStats represents the dashboard statistics
type DashboardStats struct {
	ReceiptsByType    map[enum.ReceiptType]int64 `json:"receipts_by_type"`
	TotalReceipts     int64                      `json:"total_receipts"`
	PendingDocuments  int64                      `json:"pending_documents"`
	ApprovedDocuments int64                      `json:"approved_documents"`
	RejectedDocuments int64                      `json:"rejected_documents"`
	FilingsThisYear   int                        `json:"filings_this_year"`
	MonthlyVAT        []MonthlyVATPoint          `json:"monthly_vat"`
}

// MonthlyVATPoint is one month's output VAT figure for the trend chart
type MonthlyVATPoint struct {
	Month     int             `json:"month"`
	OutputVAT decimal.Decimal `json:"output_vat"`
	Formatted string          `json:"formatted"`
}

// GetDashboardStats returns the taxpayer's dashboard statistics for a year
func (s *DashboardService) GetDashboardStats(ctx context.Context, userID uuid.UUID, year int) (*DashboardStats, error) {
	stats := &DashboardStats{}

	byType, err := s.receiptRepo.CountByType(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.ReceiptsByType = byType
	for _, n := range byType {
		stats.TotalReceipts += n
	}

	byStatus, err := s.docRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.PendingDocuments = byStatus[enum.DocumentStatusPending]
	stats.ApprovedDocuments = byStatus[enum.DocumentStatusApproved]
	stats.RejectedDocuments = byStatus[enum.DocumentStatusRejected]

	filings, err := s.filingRepo.ListByYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	stats.FilingsThisYear = len(filings)

	trend, err := s.monthlyVATTrend(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	stats.MonthlyVAT = trend

	return stats, nil
}

// monthlyVATTrend recomputes each month's output VAT from the receipts,
// with one fetch for the whole year.
func (s *DashboardService) monthlyVATTrend(ctx context.Context, userID uuid.UUID, year int) ([]MonthlyVATPoint, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	receipts, err := s.receiptRepo.ListForPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	engineReceipts := toEngineReceipts(receipts)

	points := make([]MonthlyVATPoint, 0, 12)
	for month := time.January; month <= time.December; month++ {
		filtered := vat.FilterReceiptsByMonth(engineReceipts, month, year)
		summary := vat.CalculateVATSummary(filtered)
		sections := vat.CalculateSectionTotals(summary, nil)

		points = append(points, MonthlyVATPoint{
			Month:     int(month),
			OutputVAT: sections.Output.VAT,
			Formatted: vat.FormatETB(sections.Output.VAT),
		})
	}
	return points, nil
}
