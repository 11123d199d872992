package request

// ReviewDocumentRequest represents an approve/reject decision
type ReviewDocumentRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note" binding:"max=2000"`
}

// ListDocumentsRequest represents document list query parameters
type ListDocumentsRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Status  string `form:"status"`
	Search  string `form:"search"`
}

// AssignRoleRequest represents a role assignment request
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
