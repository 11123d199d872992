package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tewodrosk/gibir-api/internal/domain/refdata"
	"github.com/tewodrosk/gibir-api/internal/domain/vat"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/dto/response"
)

// RefDataHandler serves the static reference tables used by capture forms
type RefDataHandler struct{}

// NewRefDataHandler creates a new reference data handler
func NewRefDataHandler() *RefDataHandler {
	return &RefDataHandler{}
}

// Banks returns the known bank names
func (h *RefDataHandler) Banks(c *gin.Context) {
	response.OK(c, "Banks retrieved", refdata.BankNames)
}

// PaymentMethods returns the accepted payment methods
func (h *RefDataHandler) PaymentMethods(c *gin.Context) {
	response.OK(c, "Payment methods retrieved", refdata.PaymentMethods)
}

// NatureCodes returns the nature code table with section and label per code
func (h *RefDataHandler) NatureCodes(c *gin.Context) {
	type codeRow struct {
		Nature      string      `json:"nature"`
		Section     vat.Section `json:"section"`
		Label       string      `json:"label"`
		VATLine     int         `json:"vat_line,omitempty"`
		VATExcluded bool        `json:"vat_excluded"`
	}

	rows := make([]codeRow, 0, len(vat.NatureCodeTable))
	for _, nature := range vat.TableCodes() {
		mapping, _ := vat.Lookup(nature)
		rows = append(rows, codeRow{
			Nature:      nature,
			Section:     mapping.Section,
			Label:       mapping.Label,
			VATLine:     mapping.VATLine,
			VATExcluded: vat.IsVATExcluded(nature),
		})
	}

	response.OK(c, "Nature codes retrieved", rows)
}
