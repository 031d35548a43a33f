package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buelldocs/docgen/internal/store/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewServer(store, zerolog.Nop())
}

func postJSON(t *testing.T, server *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

const paystubBody = `{
	"employee": {"name": "John Doe"},
	"employer": {"name": "Acme Services LLC"},
	"basis": {"method": "hourly", "rate": "25", "hours": "80"},
	"frequency": "biweekly",
	"tax_model": "flat",
	"pay_dates": ["2024-01-12T00:00:00Z", "2024-01-26T00:00:00Z"]
}`

const statementBody = `{
	"statement": {
		"account_holder": {"name": "John Doe"},
		"bank_name": "Chase",
		"account_number": "1234567890",
		"routing_number": "123456789",
		"period_start": "2024-01-01T00:00:00Z",
		"period_end": "2024-01-31T00:00:00Z",
		"opening_balance": "1000",
		"random_transactions": 5,
		"seed": 42
	}
}`

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestGeneratePaystubs(t *testing.T) {
	server := newTestServer(t)

	rec := postJSON(t, server, "/api/paystubs", paystubBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp documentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "paystub", resp.Kind)
	assert.Equal(t, "Paystubs - John Doe", resp.Name)
	assert.Contains(t, resp.HTML, "EARNINGS STATEMENT")
	assert.Contains(t, resp.HTML, "$1507.00")
}

func TestGeneratePaystubs_BadJSON(t *testing.T) {
	rec := postJSON(t, newTestServer(t), "/api/paystubs", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratePaystubs_Invalid(t *testing.T) {
	body := strings.Replace(paystubBody, "John Doe", "", 1)
	rec := postJSON(t, newTestServer(t), "/api/paystubs", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "employee name")
}

func TestGenerateStatement(t *testing.T) {
	rec := postJSON(t, newTestServer(t), "/api/statements", statementBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp documentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bank_statement", resp.Kind)
	assert.Contains(t, resp.HTML, "Account Statement")
	assert.Contains(t, resp.HTML, "****7890")
}

func TestGenerateStatement_MissingSection(t *testing.T) {
	rec := postJSON(t, newTestServer(t), "/api/statements", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "statement section is required")
}

func TestGenerateStatement_DepositsRequirePaystubs(t *testing.T) {
	body := strings.Replace(statementBody, `"random_transactions": 5,`,
		`"random_transactions": 5, "include_paystub_deposits": true,`, 1)
	rec := postJSON(t, newTestServer(t), "/api/statements", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "requires a paystubs section")
}

func TestListAndGetDocuments(t *testing.T) {
	server := newTestServer(t)

	require.Equal(t, http.StatusCreated, postJSON(t, server, "/api/paystubs", paystubBody).Code)
	require.Equal(t, http.StatusCreated, postJSON(t, server, "/api/statements", statementBody).Code)

	rec := get(t, server, "/api/documents")
	require.Equal(t, http.StatusOK, rec.Code)

	var all []documentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Empty(t, all[0].HTML, "listings omit the rendered body")

	rec = get(t, server, "/api/documents?kind=paystub")
	require.Equal(t, http.StatusOK, rec.Code)

	var stubs []documentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stubs))
	require.Len(t, stubs, 1)

	rec = get(t, server, "/api/documents/"+stubs[0].ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc documentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc.HTML, "EARNINGS STATEMENT")
}

func TestGetDocument_NotFound(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/documents/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
