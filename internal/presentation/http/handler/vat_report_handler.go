package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tewodrosk/gibir-api/internal/application/service"
	"github.com/tewodrosk/gibir-api/internal/domain/vat"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/dto/request"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/dto/response"
)

// VATReportHandler handles VAT declaration HTTP requests
type VATReportHandler struct {
	reportService *service.VATReportService
}

// NewVATReportHandler creates a new VAT report handler
func NewVATReportHandler(reportService *service.VATReportService) *VATReportHandler {
	return &VATReportHandler{reportService: reportService}
}

// periodParams reads month/year query parameters, defaulting to the
// current month.
func periodParams(c *gin.Context) (int, int, bool) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if m := c.Query("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil {
			response.BadRequest(c, "month must be a number")
			return 0, 0, false
		}
		month = v
	}
	if y := c.Query("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(c, "year must be a number")
			return 0, 0, false
		}
		year = v
	}
	return month, year, true
}

// MonthlySummary returns the derived VAT declaration worksheet for a month,
// or for an explicit start/end date range when both are given
// @Summary Monthly VAT summary
// @Description Derive the VAT declaration worksheet from captured receipts
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /reports/vat-summary [get]
func (h *VATReportHandler) MonthlySummary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	if startStr, endStr := c.Query("start"), c.Query("end"); startStr != "" && endStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			response.BadRequest(c, "start must be YYYY-MM-DD")
			return
		}
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			response.BadRequest(c, "end must be YYYY-MM-DD")
			return
		}

		report, err := h.reportService.GetRangeReport(c.Request.Context(), *userID, start, end)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.OK(c, "VAT summary derived", report)
		return
	}

	month, year, ok := periodParams(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetMonthlyReport(c.Request.Context(), *userID, month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "VAT summary derived", report)
}

// SaveFiling persists the user-entered declaration figures for a month
// @Summary Save VAT filing
// @Description Save override pairs and manual adjustment lines for a month
// @Tags reports
// @Accept json
// @Produce json
// @Param request body request.SaveFilingRequest true "Filing figures"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /reports/vat-filing [put]
func (h *VATReportHandler) SaveFiling(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	month, year, ok := periodParams(c)
	if !ok {
		return
	}

	var req request.SaveFilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	overrides := make(vat.EditableValues, len(req.Overrides))
	for nature, o := range req.Overrides {
		overrides[nature] = vat.Override{Total: o.Total, VAT: o.VAT}
	}

	filing, err := h.reportService.SaveFiling(c.Request.Context(), &service.SaveFilingInput{
		UserID:    *userID,
		Month:     month,
		Year:      year,
		Overrides: overrides,
		Adjustments: vat.ManualAdjustments{
			VATOnGovernmentVoucher: req.VATOnGovernmentVoucher,
			OtherCredits:           req.OtherCredits,
			CreditCarriedForward:   req.CreditCarriedForward,
		},
		Submit: req.Submit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Filing saved", filing)
}

// ListFilings returns the user's saved filings for a year
func (h *VATReportHandler) ListFilings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(c, "year must be a number")
			return
		}
		year = v
	}

	filings, err := h.reportService.ListFilings(c.Request.Context(), *userID, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Filings retrieved", filings)
}

// Withholding computes the statutory withholding for a payment
// @Summary Compute withholding
// @Description Apply the 2% withholding rule to a payment amount
// @Tags reports
// @Accept json
// @Produce json
// @Param request body request.WithholdingRequest true "Payment"
// @Success 200 {object} response.APIResponse
// @Router /reports/withholding [post]
func (h *VATReportHandler) Withholding(c *gin.Context) {
	var req request.WithholdingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.reportService.ComputeWithholding(&service.WithholdingInput{
		Kind: vat.WithholdingKind(req.Kind),
		Base: req.Base,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Withholding computed", result)
}
