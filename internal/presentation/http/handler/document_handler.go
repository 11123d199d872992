package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/application/service"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/internal/domain/repository"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/dto/request"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/dto/response"
	"github.com/tewodrosk/gibir-api/pkg/pagination"
)

// DocumentHandler handles uploaded document HTTP requests
type DocumentHandler struct {
	docService *service.DocumentService
	maxUpload  int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService *service.DocumentService, maxUpload int64) *DocumentHandler {
	return &DocumentHandler{docService: docService, maxUpload: maxUpload}
}

// Upload handles a multipart document upload
// @Summary Upload document
// @Description Upload a receipt attachment for review
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A file field is required")
		return
	}
	if h.maxUpload > 0 && fileHeader.Size > h.maxUpload {
		response.BadRequest(c, "File exceeds the maximum upload size")
		return
	}

	var receiptID *uuid.UUID
	if v := c.PostForm("receipt_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid receipt_id")
			return
		}
		receiptID = &id
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	doc, err := h.docService.Upload(c.Request.Context(), &service.UploadInput{
		UserID:      *userID,
		ReceiptID:   receiptID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		File:        f,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document uploaded", doc)
}

// Get retrieves one document record
func (h *DocumentHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	doc, err := h.docService.GetDocument(c.Request.Context(), *userID, IsReviewer(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document retrieved", doc)
}

// Download streams the stored file of a document
func (h *DocumentHandler) Download(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	doc, f, err := h.docService.OpenFile(c.Request.Context(), *userID, IsReviewer(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Type", doc.ContentType)
	c.DataFromReader(200, doc.SizeBytes, doc.ContentType, f, nil)
}

// List lists the caller's documents
func (h *DocumentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	params, ok := documentParams(c)
	if !ok {
		return
	}
	params.UserID = *userID

	result, err := h.docService.ListDocuments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Documents retrieved", result)
}

// ReviewQueue lists documents across all users for reviewers
// @Summary Review queue
// @Description List documents awaiting review across all users
// @Tags documents
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/documents [get]
func (h *DocumentHandler) ReviewQueue(c *gin.Context) {
	params, ok := documentParams(c)
	if !ok {
		return
	}
	// Nil user ID lists across all users
	params.UserID = uuid.Nil

	result, err := h.docService.ListDocuments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Review queue retrieved", result)
}

// Review records an approve/reject decision on a document
func (h *DocumentHandler) Review(c *gin.Context) {
	reviewerID := GetUserID(c)
	if reviewerID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req request.ReviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.docService.Review(c.Request.Context(), &service.ReviewInput{
		ReviewerID: *reviewerID,
		DocumentID: id,
		Approve:    req.Approve,
		Note:       req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document reviewed", doc)
}

// Delete removes a document and its stored file
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.docService.DeleteDocument(c.Request.Context(), *userID, IsReviewer(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func documentParams(c *gin.Context) (*repository.DocumentFilterParams, bool) {
	var req request.ListDocumentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return nil, false
	}

	params := &repository.DocumentFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
	}
	if req.Status != "" {
		var status enum.DocumentStatus
		switch req.Status {
		case "pending":
			status = enum.DocumentStatusPending
		case "approved":
			status = enum.DocumentStatusApproved
		case "rejected":
			status = enum.DocumentStatusRejected
		default:
			response.BadRequest(c, "status must be pending, approved or rejected")
			return nil, false
		}
		params.Status = &status
	}
	return params, true
}
