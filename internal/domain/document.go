package domain

import "time"

// DocumentKind labels a persisted generated document.
type DocumentKind string

const (
	PaystubDocument   DocumentKind = "paystub"
	StatementDocument DocumentKind = "bank_statement"
)

// DocumentRecord is a generated document as persisted by the store: the
// rendered HTML plus enough metadata to list and re-download it. The
// engines never touch the store; callers append records after rendering.
type DocumentRecord struct {
	ID        string       `json:"id"`
	Kind      DocumentKind `json:"kind"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	HTML      string       `json:"html,omitempty"`
}
