package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/buelldocs/docgen/internal/config"
	"github.com/buelldocs/docgen/internal/domain"
	"github.com/buelldocs/docgen/internal/generate"
	"github.com/buelldocs/docgen/internal/output"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGeneratePaystubs computes the pay series, renders HTML, stores the
// record, and returns it.
func (s *Server) handleGeneratePaystubs(w http.ResponseWriter, r *http.Request) {
	var req domain.PaystubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.parser.ValidateRequest(&config.RequestFile{Paystubs: &req}); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err)
		return
	}

	doc := generate.Paystubs(&req)
	html, err := output.HTMLFormatter{}.FormatPaystubs(doc)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, fmt.Errorf("failed to render paystubs: %w", err))
		return
	}

	record := domain.DocumentRecord{
		ID:        uuid.NewString(),
		Kind:      domain.PaystubDocument,
		Name:      fmt.Sprintf("Paystubs - %s", req.Employee.Name),
		CreatedAt: time.Now().UTC(),
		HTML:      string(html),
	}
	if err := s.store.Save(r.Context(), record); err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	s.log.Info().Str("document_id", record.ID).Str("employee", req.Employee.Name).
		Int("periods", len(doc.Entries)).Msg("generated paystubs")
	s.respond(w, http.StatusCreated, toDocumentResponse(record))
}

// handleGenerateStatement synthesizes transactions, computes balances,
// renders HTML, stores the record, and returns it.
func (s *Server) handleGenerateStatement(w http.ResponseWriter, r *http.Request) {
	var job statementJob
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if job.Statement == nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("statement section is required"))
		return
	}
	if err := s.parser.ValidateRequest(&config.RequestFile{Paystubs: job.Paystubs, Statement: job.Statement}); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err)
		return
	}

	var stubs *output.PaystubDocument
	if job.Paystubs != nil {
		stubs = generate.Paystubs(job.Paystubs)
	}
	doc, err := generate.Statement(job.Statement, stubs)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	html, err := output.HTMLFormatter{}.FormatStatement(doc)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, fmt.Errorf("failed to render statement: %w", err))
		return
	}

	record := domain.DocumentRecord{
		ID:        uuid.NewString(),
		Kind:      domain.StatementDocument,
		Name:      fmt.Sprintf("Bank Statement - %s", job.Statement.AccountHolder.Name),
		CreatedAt: time.Now().UTC(),
		HTML:      string(html),
	}
	if err := s.store.Save(r.Context(), record); err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	s.log.Info().Str("document_id", record.ID).Str("account_holder", job.Statement.AccountHolder.Name).
		Int("transactions", len(doc.Summary.Transactions)).Msg("generated statement")
	s.respond(w, http.StatusCreated, toDocumentResponse(record))
}

// handleListDocuments lists stored records, newest first. An optional
// ?kind= query narrows to one document kind.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")

	var (
		records []domain.DocumentRecord
		err     error
	)
	if kind == "" {
		records, err = s.store.ListAll(r.Context())
	} else {
		records, err = s.store.ListByKind(r.Context(), domain.DocumentKind(kind))
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	responses := make([]documentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toDocumentResponse(record))
	}
	s.respond(w, http.StatusOK, responses)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, err)
		return
	}
	s.respond(w, http.StatusOK, toDocumentResponse(record))
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		s.log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}
	s.respond(w, status, errorResponse{Error: err.Error()})
}
