package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/dockit/internal/types"
)

func authHeader(resp types.AuthResponse) map[string]string {
	return map[string]string{"X-API-Key": resp.Account.APIKey}
}

func createDocument(t *testing.T, handler http.Handler, auth map[string]string, body map[string]any) types.Document {
	t.Helper()

	w := doJSON(t, handler, http.MethodPost, "/v1/documents", body, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var doc types.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	return doc
}

func TestCreateDocument(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	doc := createDocument(t, handler, authHeader(account), map[string]any{
		"kind": "invoice",
		"data": map[string]any{
			"invoice_number": "INV-1",
			"items": []any{
				map[string]any{"description": "Work", "quantity": 2, "unit_price": 100},
			},
		},
	})

	assert.Equal(t, "invoice", doc.Kind)
	assert.Equal(t, "Invoice INV-1", doc.Title, "title is derived from the data")
	assert.Equal(t, fmt.Sprintf("http://localhost:8787/d/%s", doc.ID), doc.ViewURL)
	assert.Empty(t, doc.Warnings)
}

func TestCreateDocument_ExplicitTitleWins(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	doc := createDocument(t, handler, authHeader(account), map[string]any{
		"kind":  "freeform",
		"title": "Launch Notes",
		"data":  map[string]any{"content": "# Hello"},
	})
	assert.Equal(t, "Launch Notes", doc.Title)
}

func TestCreateDocument_ShapeWarnings(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	doc := createDocument(t, handler, authHeader(account), map[string]any{
		"kind": "invoice",
		"data": map[string]any{"items": "not a list"},
	})

	assert.NotEmpty(t, doc.Warnings, "shape mismatch surfaces as warnings, not an error")
}

func TestCreateDocument_Rejections(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	w := doJSON(t, handler, http.MethodPost, "/v1/documents",
		map[string]any{"kind": "spreadsheet", "data": map[string]any{}}, authHeader(account))
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown kind")

	w = doJSON(t, handler, http.MethodPost, "/v1/documents",
		map[string]any{"kind": "invoice"}, authHeader(account))
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing data")
}

func TestCreateDocument_Quota(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	body := map[string]any{"kind": "freeform", "data": map[string]any{"content": "x"}}
	for i := 0; i < testDocLimit; i++ {
		createDocument(t, handler, authHeader(account), body)
	}

	w := doJSON(t, handler, http.MethodPost, "/v1/documents", body, authHeader(account))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "document limit reached")

	// Deleting frees a slot.
	list := listDocuments(t, handler, authHeader(account))
	w = doJSON(t, handler, http.MethodDelete, "/v1/documents/"+list.Documents[0].ID.String(), nil, authHeader(account))
	require.Equal(t, http.StatusNoContent, w.Code)

	createDocument(t, handler, authHeader(account), body)
}

func listDocuments(t *testing.T, handler http.Handler, auth map[string]string) types.DocumentList {
	t.Helper()

	w := doJSON(t, handler, http.MethodGet, "/v1/documents", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	var list types.DocumentList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func TestListDocuments(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	createDocument(t, handler, authHeader(account), map[string]any{
		"kind": "letter", "data": map[string]any{"subject": "Hello"},
	})
	createDocument(t, handler, authHeader(account), map[string]any{
		"kind": "report", "data": map[string]any{"title": "Q3"},
	})

	list := listDocuments(t, handler, authHeader(account))
	assert.Equal(t, 2, list.DocCount)
	assert.Equal(t, testDocLimit, list.DocLimit)
	require.Len(t, list.Documents, 2)
	for _, meta := range list.Documents {
		assert.NotEmpty(t, meta.Title)
		assert.NotEmpty(t, meta.ViewURL)
	}
}

func TestGetDocument_OwnershipEnforced(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	jane := signup(t, handler, "jane@example.com")
	rival := signup(t, handler, "rival@example.com")

	doc := createDocument(t, handler, authHeader(jane), map[string]any{
		"kind": "freeform", "data": map[string]any{"content": "secret draft"},
	})

	w := doJSON(t, handler, http.MethodGet, "/v1/documents/"+doc.ID.String(), nil, authHeader(jane))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodGet, "/v1/documents/"+doc.ID.String(), nil, authHeader(rival))
	assert.Equal(t, http.StatusNotFound, w.Code, "other accounts cannot read the document")

	w = doJSON(t, handler, http.MethodGet, "/v1/documents/"+uuid.NewString(), nil, authHeader(jane))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, handler, http.MethodGet, "/v1/documents/not-a-uuid", nil, authHeader(jane))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDocument(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	doc := createDocument(t, handler, authHeader(account), map[string]any{
		"kind": "invoice", "data": map[string]any{"invoice_number": "INV-1"},
	})

	w := doJSON(t, handler, http.MethodPatch, "/v1/documents/"+doc.ID.String(),
		map[string]any{"data": map[string]any{"invoice_number": "INV-2"}}, authHeader(account))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated types.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Invoice INV-2", updated.Title, "title re-derives when data changes")
	assert.Equal(t, "INV-2", updated.Data["invoice_number"])

	// Theme-only update keeps data and title.
	w = doJSON(t, handler, http.MethodPatch, "/v1/documents/"+doc.ID.String(),
		map[string]any{"theme": map[string]any{"mode": "dark"}}, authHeader(account))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Invoice INV-2", updated.Title)
	require.NotNil(t, updated.Theme)
	assert.Equal(t, "dark", updated.Theme.Mode)
}

func TestDocumentContextPassthrough(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	doc := createDocument(t, handler, authHeader(account), map[string]any{
		"kind":    "letter",
		"context": "follow-up after the June meeting",
		"data":    map[string]any{"subject": "Hello"},
	})
	assert.Equal(t, "follow-up after the June meeting", doc.Context)

	w := doJSON(t, handler, http.MethodGet, "/v1/documents/"+doc.ID.String(), nil, authHeader(account))
	require.Equal(t, http.StatusOK, w.Code)

	var got types.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "follow-up after the June meeting", got.Context)

	// Updates without a context field leave it untouched.
	w = doJSON(t, handler, http.MethodPatch, "/v1/documents/"+doc.ID.String(),
		map[string]any{"data": map[string]any{"subject": "Hello again"}}, authHeader(account))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "follow-up after the June meeting", got.Context)

	w = doJSON(t, handler, http.MethodPatch, "/v1/documents/"+doc.ID.String(),
		map[string]any{"context": "archived"}, authHeader(account))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "archived", got.Context)
	assert.Equal(t, "Hello again", got.Data["subject"])
}

func TestViewer(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.routes()
	account := signup(t, handler, "jane@example.com")

	doc := createDocument(t, handler, authHeader(account), map[string]any{
		"kind":  "freeform",
		"data":  map[string]any{"content": "# Shared Page"},
		"theme": map[string]any{"mode": "dark"},
	})

	// No credentials needed.
	w := doJSON(t, handler, http.MethodGet, "/d/"+doc.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Shared Page")
	assert.Contains(t, w.Body.String(), "--bg: #1a1a2e", "stored theme is applied")

	w = doJSON(t, handler, http.MethodGet, "/d/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html", "styled not-found page")
	assert.Contains(t, w.Body.String(), "Document not found")

	w = doJSON(t, handler, http.MethodGet, "/d/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
