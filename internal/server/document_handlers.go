package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/dockit/internal/render"
	"github.com/jonathan/dockit/internal/server/middleware"
	"github.com/jonathan/dockit/internal/types"
)

// DocumentHandler handles document CRUD and the public viewer.
type DocumentHandler struct {
	documents *DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documents *DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

func (h *DocumentHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// requestIDs pulls the account ID from context and the document ID from the
// path. A false return means the response has already been written.
func (h *DocumentHandler) requestIDs(w http.ResponseWriter, r *http.Request) (accountID, docID uuid.UUID, ok bool) {
	accountID, ok = middleware.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid document id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	return accountID, docID, true
}

// Create handles POST /v1/documents.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.documents.Create(r.Context(), accountID, &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.writeJSON(w, http.StatusCreated, doc)
}

// List handles GET /v1/documents.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.documents.List(r.Context(), accountID)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.writeJSON(w, http.StatusOK, list)
}

// Get handles GET /v1/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, docID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	doc, err := h.documents.Get(r.Context(), accountID, docID)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.writeJSON(w, http.StatusOK, doc)
}

// Update handles PATCH /v1/documents/{id}.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID, docID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	var req types.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.documents.Update(r.Context(), accountID, docID, &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.writeJSON(w, http.StatusOK, doc)
}

// Delete handles DELETE /v1/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, docID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	if err := h.documents.Delete(r.Context(), accountID, docID); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// View handles GET /d/{id}, the public document viewer.
func (h *DocumentHandler) View(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.viewNotFound(w)
		return
	}

	html, err := h.documents.RenderHTML(r.Context(), docID)
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			h.viewNotFound(w)
		} else {
			http.Error(w, "Failed to render document", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// notFoundPage is rendered through the freeform template so the viewer's
// 404 looks like every other page it serves.
var notFoundPage = sync.OnceValue(func() string {
	html, err := render.Render(render.KindFreeform, render.Map{
		"title":   "Not Found",
		"content": "# Document not found\n\nThis document does not exist or has been deleted.",
	}, nil)
	if err != nil {
		return "Document not found"
	}
	return html
})

func (h *DocumentHandler) viewNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(notFoundPage()))
}
