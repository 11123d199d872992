package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/application/service"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/internal/domain/repository"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/dto/request"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/dto/response"
	"github.com/tewodrosk/gibir-api/pkg/pagination"
)

const dateLayout = "2006-01-02"

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Create handles receipt capture
// @Summary Capture receipt
// @Description Capture a new tax receipt with its line items
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receiptDate, err := time.Parse(dateLayout, req.ReceiptDate)
	if err != nil {
		response.BadRequest(c, "receipt_date must be YYYY-MM-DD")
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), &service.CreateReceiptInput{
		UserID:        *userID,
		ReceiptNo:     req.ReceiptNo,
		ReceiptType:   enum.ReceiptType(req.ReceiptType),
		ReceiptDate:   receiptDate,
		SellerName:    req.SellerName,
		SellerTIN:     req.SellerTIN,
		BuyerName:     req.BuyerName,
		BuyerTIN:      req.BuyerTIN,
		MachineNo:     req.MachineNo,
		PaymentMethod: req.PaymentMethod,
		BankName:      req.BankName,
		Items:         toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt captured", receipt)
}

// Get retrieves one receipt with line items
func (h *ReceiptHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved", receipt)
}

// List lists the user's receipts
// @Summary List receipts
// @Description List captured receipts with filtering and pagination
// @Tags receipts
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req request.ListReceiptsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ReceiptFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	if req.ReceiptType != "" {
		rt := enum.ReceiptType(req.ReceiptType)
		params.ReceiptType = &rt
	}
	if req.TaxType != "" {
		tt := enum.TaxType(req.TaxType)
		params.TaxType = &tt
	}
	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			response.BadRequest(c, "start_date must be YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			response.BadRequest(c, "end_date must be YYYY-MM-DD")
			return
		}
		params.EndDate = &end
	}

	result, err := h.receiptService.ListReceipts(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved", result)
}

// Update handles receipt updates
func (h *ReceiptHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req request.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateReceiptInput{
		UserID:        *userID,
		ID:            id,
		SellerName:    req.SellerName,
		SellerTIN:     req.SellerTIN,
		BuyerName:     req.BuyerName,
		BuyerTIN:      req.BuyerTIN,
		MachineNo:     req.MachineNo,
		PaymentMethod: req.PaymentMethod,
		BankName:      req.BankName,
	}
	if req.ReceiptType != nil {
		rt := enum.ReceiptType(*req.ReceiptType)
		input.ReceiptType = &rt
	}
	if req.ReceiptDate != nil {
		d, err := time.Parse(dateLayout, *req.ReceiptDate)
		if err != nil {
			response.BadRequest(c, "receipt_date must be YYYY-MM-DD")
			return
		}
		input.ReceiptDate = &d
	}
	if req.Items != nil {
		input.Items = toItemInputs(req.Items)
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt updated", receipt)
}

// Delete removes a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func toItemInputs(items []request.ReceiptItemRequest) []service.ReceiptItemInput {
	out := make([]service.ReceiptItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, service.ReceiptItemInput{
			Description: item.Description,
			Nature:      item.Nature,
			TaxType:     enum.TaxType(item.TaxType),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			TaxAmount:   item.TaxAmount,
		})
	}
	return out
}
