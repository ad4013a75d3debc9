package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/dockit/internal/db"
	"github.com/jonathan/dockit/internal/render"
	"github.com/jonathan/dockit/internal/schemas"
	"github.com/jonathan/dockit/internal/types"
)

// DocumentStore is the subset of db.DB the document service needs.
type DocumentStore interface {
	InsertDocument(ctx context.Context, accountID uuid.UUID, kind, title, docContext string, data, theme []byte) (*db.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*db.Document, error)
	GetOwnedDocument(ctx context.Context, accountID, id uuid.UUID) (*db.Document, error)
	ListDocuments(ctx context.Context, accountID uuid.UUID) ([]*db.Document, error)
	UpdateDocument(ctx context.Context, accountID, id uuid.UUID, title, docContext string, data, theme []byte) (*db.Document, error)
	DeleteDocument(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

// DocumentService provides business logic for document operations.
type DocumentService struct {
	store    DocumentStore
	baseURL  string
	docLimit int
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(store DocumentStore, baseURL string, docLimit int) *DocumentService {
	return &DocumentService{store: store, baseURL: baseURL, docLimit: docLimit}
}

func (s *DocumentService) viewURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/d/%s", s.baseURL, id)
}

func (s *DocumentService) meta(d *db.Document) types.DocumentMeta {
	return types.DocumentMeta{
		ID:        d.ID,
		Kind:      d.Kind,
		Title:     d.Title,
		ViewURL:   s.viewURL(d.ID),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// document converts a stored row to the API representation.
func (s *DocumentService) document(d *db.Document) (*types.Document, error) {
	doc := &types.Document{DocumentMeta: s.meta(d), Context: d.Context}

	if len(d.Data) > 0 {
		if err := json.Unmarshal(d.Data, &doc.Data); err != nil {
			return nil, fmt.Errorf("failed to decode document data: %w", err)
		}
	}
	if len(d.Theme) > 0 {
		var theme render.Theme
		if err := json.Unmarshal(d.Theme, &theme); err != nil {
			return nil, fmt.Errorf("failed to decode document theme: %w", err)
		}
		doc.Theme = &theme
	}
	return doc, nil
}

func marshalPayload(data map[string]any, theme *render.Theme) (dataJSON, themeJSON []byte, err error) {
	if data == nil {
		data = map[string]any{}
	}
	dataJSON, err = json.Marshal(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode document data: %w", err)
	}
	if theme != nil {
		themeJSON, err = json.Marshal(theme)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode document theme: %w", err)
		}
	}
	return dataJSON, themeJSON, nil
}

// resolveTitle prefers an explicit title and otherwise derives one from the
// document data, so listings stay readable without requiring a title field.
func resolveTitle(explicit, kind string, data map[string]any) string {
	if explicit != "" {
		return explicit
	}
	return render.DeriveTitle(render.Kind(kind), render.Map(data))
}

// Create stores a new document. Shape mismatches against the kind's schema
// come back as warnings on the response, never as an error.
func (s *DocumentService) Create(ctx context.Context, accountID uuid.UUID, req *types.CreateDocumentRequest) (*types.Document, error) {
	dataJSON, themeJSON, err := marshalPayload(req.Data, req.Theme)
	if err != nil {
		return nil, err
	}

	title := resolveTitle(req.Title, req.Kind, req.Data)

	row, err := s.store.InsertDocument(ctx, accountID, req.Kind, title, req.Context, dataJSON, themeJSON)
	if err != nil {
		if errors.Is(err, db.ErrDocLimitReached) {
			return nil, &ErrQuotaExceeded{Limit: s.docLimit}
		}
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc, err := s.document(row)
	if err != nil {
		return nil, err
	}
	doc.Warnings = schemas.Check(req.Kind, req.Data)
	return doc, nil
}

// List returns the account's documents, newest first, with quota status.
func (s *DocumentService) List(ctx context.Context, accountID uuid.UUID) (*types.DocumentList, error) {
	rows, err := s.store.ListDocuments(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	list := &types.DocumentList{
		Documents: make([]types.DocumentMeta, 0, len(rows)),
		DocLimit:  s.docLimit,
	}
	for _, row := range rows {
		list.Documents = append(list.Documents, s.meta(row))
	}
	list.DocCount = len(list.Documents)
	return list, nil
}

// Recent returns the metadata of the account's n most recently created
// documents.
func (s *DocumentService) Recent(ctx context.Context, accountID uuid.UUID, n int) ([]types.DocumentMeta, error) {
	rows, err := s.store.ListDocuments(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if len(rows) > n {
		rows = rows[:n]
	}
	out := make([]types.DocumentMeta, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.meta(row))
	}
	return out, nil
}

// Get returns an owned document.
func (s *DocumentService) Get(ctx context.Context, accountID, id uuid.UUID) (*types.Document, error) {
	row, err := s.store.GetOwnedDocument(ctx, accountID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if row == nil {
		return nil, &ErrDocumentNotFound{DocumentID: id}
	}
	return s.document(row)
}

// Update applies a partial update to an owned document. Data replaces the
// stored payload wholesale when present; the title is re-derived when data
// changes and no explicit title is given.
func (s *DocumentService) Update(ctx context.Context, accountID, id uuid.UUID, req *types.UpdateDocumentRequest) (*types.Document, error) {
	current, err := s.store.GetOwnedDocument(ctx, accountID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if current == nil {
		return nil, &ErrDocumentNotFound{DocumentID: id}
	}

	data := req.Data
	if data == nil {
		if err := json.Unmarshal(current.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to decode document data: %w", err)
		}
	}

	var theme *render.Theme
	if req.Theme != nil {
		theme = req.Theme
	} else if len(current.Theme) > 0 {
		theme = &render.Theme{}
		if err := json.Unmarshal(current.Theme, theme); err != nil {
			return nil, fmt.Errorf("failed to decode document theme: %w", err)
		}
	}

	title := current.Title
	if req.Title != nil {
		title = *req.Title
	} else if req.Data != nil {
		title = resolveTitle("", current.Kind, data)
	}

	docContext := current.Context
	if req.Context != nil {
		docContext = *req.Context
	}

	dataJSON, themeJSON, err := marshalPayload(data, theme)
	if err != nil {
		return nil, err
	}

	row, err := s.store.UpdateDocument(ctx, accountID, id, title, docContext, dataJSON, themeJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	if row == nil {
		return nil, &ErrDocumentNotFound{DocumentID: id}
	}

	doc, err := s.document(row)
	if err != nil {
		return nil, err
	}
	doc.Warnings = schemas.Check(row.Kind, data)
	return doc, nil
}

// Delete removes an owned document and releases its quota slot.
func (s *DocumentService) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	deleted, err := s.store.DeleteDocument(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if !deleted {
		return &ErrDocumentNotFound{DocumentID: id}
	}
	return nil
}

// RenderHTML renders any stored document for the public viewer. Ownership
// is not checked; knowing a document URL grants read access.
func (s *DocumentService) RenderHTML(ctx context.Context, id uuid.UUID) (string, error) {
	row, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to get document: %w", err)
	}
	if row == nil {
		return "", &ErrDocumentNotFound{DocumentID: id}
	}

	var data render.Map
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &data); err != nil {
			return "", fmt.Errorf("failed to decode document data: %w", err)
		}
	}

	var theme *render.Theme
	if len(row.Theme) > 0 {
		theme = &render.Theme{}
		if err := json.Unmarshal(row.Theme, theme); err != nil {
			return "", fmt.Errorf("failed to decode document theme: %w", err)
		}
	}

	return render.Render(render.Kind(row.Kind), data, theme)
}
