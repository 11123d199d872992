package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/internal/domain/repository"
	"github.com/tewodrosk/gibir-api/pkg/apperror"
	"github.com/tewodrosk/gibir-api/pkg/pagination"
	"github.com/tewodrosk/gibir-api/pkg/storage"
)

// Accepted upload content types for receipt attachments.
var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// DocumentService handles uploaded receipt attachments and their review
type DocumentService struct {
	docRepo     repository.DocumentRepository
	receiptRepo repository.ReceiptRepository
	store       storage.Storage
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repository.DocumentRepository,
	receiptRepo repository.ReceiptRepository,
	store storage.Storage,
) *DocumentService {
	return &DocumentService{
		docRepo:     docRepo,
		receiptRepo: receiptRepo,
		store:       store,
	}
}

// UploadInput represents a document upload
type UploadInput struct {
	UserID      uuid.UUID
	ReceiptID   *uuid.UUID
	FileName    string
	ContentType string
	SizeBytes   int64
	File        io.Reader
}

// Upload stores the file and creates a pending document record
func (s *DocumentService) Upload(ctx context.Context, input *UploadInput) (*entity.Document, error) {
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if !allowedContentTypes[contentType] {
		return nil, apperror.NewBadRequestError("Only PDF, JPEG and PNG files are accepted")
	}

	if input.ReceiptID != nil {
		receipt, err := s.receiptRepo.GetByID(ctx, *input.ReceiptID)
		if err != nil {
			return nil, err
		}
		if receipt == nil || receipt.UserID != input.UserID {
			return nil, apperror.NewNotFoundError("Receipt")
		}
	}

	storedPath, err := s.store.Save(input.UserID.String(), input.FileName, input.File)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	doc := &entity.Document{
		UserID:      input.UserID,
		ReceiptID:   input.ReceiptID,
		FileName:    input.FileName,
		StoredPath:  storedPath,
		ContentType: contentType,
		SizeBytes:   input.SizeBytes,
		Status:      enum.DocumentStatusPending,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		_ = s.store.Delete(storedPath)
		return nil, err
	}

	return doc, nil
}

// GetDocument retrieves a document visible to the caller. Reviewers see
// every document; owners only their own.
func (s *DocumentService) GetDocument(ctx context.Context, userID uuid.UUID, isReviewer bool, id uuid.UUID) (*entity.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}
	if !isReviewer && doc.UserID != userID {
		return nil, apperror.NewNotFoundError("Document")
	}
	return doc, nil
}

// OpenFile opens the stored file of a document for streaming
func (s *DocumentService) OpenFile(ctx context.Context, userID uuid.UUID, isReviewer bool, id uuid.UUID) (*entity.Document, io.ReadCloser, error) {
	doc, err := s.GetDocument(ctx, userID, isReviewer, id)
	if err != nil {
		return nil, nil, err
	}

	f, err := s.store.Open(doc.StoredPath)
	if err != nil {
		return nil, nil, apperror.NewNotFoundError("Document file")
	}
	return doc, f, nil
}

// ListDocuments lists documents with filtering and pagination. Params with
// a Nil UserID list across all users, which is the review queue view.
func (s *DocumentService) ListDocuments(ctx context.Context, params *repository.DocumentFilterParams) (*pagination.PaginatedResult[entity.Document], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	docs, total, err := s.docRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(docs, paging), nil
}

// ReviewInput represents an approve/reject decision on a document
type ReviewInput struct {
	ReviewerID uuid.UUID
	DocumentID uuid.UUID
	Approve    bool
	Note       string
}

// Review records an approve or reject decision. Only pending documents can
// be reviewed; a rejection requires a note for the uploader.
func (s *DocumentService) Review(ctx context.Context, input *ReviewInput) (*entity.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}
	if doc.Status != enum.DocumentStatusPending {
		return nil, apperror.NewConflictError("Document has already been reviewed")
	}
	if !input.Approve && strings.TrimSpace(input.Note) == "" {
		return nil, apperror.NewBadRequestError("A note is required when rejecting a document")
	}

	if input.Approve {
		doc.Status = enum.DocumentStatusApproved
	} else {
		doc.Status = enum.DocumentStatusRejected
	}
	if note := strings.TrimSpace(input.Note); note != "" {
		doc.ReviewNote = &note
	}
	now := time.Now()
	doc.ReviewedBy = &input.ReviewerID
	doc.ReviewedAt = &now

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDocument removes a document record and its stored file. Owners can
// only delete while the document is still pending.
func (s *DocumentService) DeleteDocument(ctx context.Context, userID uuid.UUID, isReviewer bool, id uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return apperror.NewNotFoundError("Document")
	}
	if !isReviewer {
		if doc.UserID != userID {
			return apperror.NewNotFoundError("Document")
		}
		if doc.Status != enum.DocumentStatusPending {
			return apperror.NewConflictError("Reviewed documents can no longer be deleted")
		}
	}

	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.store.Delete(doc.StoredPath)
	return nil
}
