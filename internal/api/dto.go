package api

import (
	"time"

	"github.com/buelldocs/docgen/internal/domain"
)

// statementJob is the POST /api/statements body. A paystubs section is
// only needed when the statement folds in payroll deposits.
type statementJob struct {
	Statement *domain.StatementRequest `json:"statement"`
	Paystubs  *domain.PaystubRequest   `json:"paystubs,omitempty"`
}

// documentResponse is the stored record returned after generation or on
// single-document fetch.
type documentResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	HTML      string    `json:"html,omitempty"`
}

func toDocumentResponse(record domain.DocumentRecord) documentResponse {
	return documentResponse{
		ID:        record.ID,
		Kind:      string(record.Kind),
		Name:      record.Name,
		CreatedAt: record.CreatedAt,
		HTML:      record.HTML,
	}
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}
