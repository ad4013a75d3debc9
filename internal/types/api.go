// Package types provides request and response definitions for the DocKit
// HTTP API.
package types

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/dockit/internal/render"
)

// SignupRequest represents the request to create a new account.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Account represents an account for API responses. The API key is only
// populated on signup and login; reads of /account/me return it redacted to
// its prefix.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key,omitempty"`
	DocCount  int       `json:"doc_count"`
	DocLimit  int       `json:"doc_limit"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned from signup and login: the account, its API key
// for programmatic access, and a session token for browser flows.
type AuthResponse struct {
	Account *Account `json:"account"`
	Token   string   `json:"token"`
}

// CreateDocumentRequest represents the request to create a document.
// Data is intentionally schemaless; rendering tolerates any shape.
type CreateDocumentRequest struct {
	Kind    string         `json:"kind" validate:"required,oneof=invoice proposal report letter resume freeform"`
	Title   string         `json:"title,omitempty"`
	Context string         `json:"context,omitempty"`
	Data    map[string]any `json:"data" validate:"required"`
	Theme   *render.Theme  `json:"theme,omitempty"`
}

// UpdateDocumentRequest represents a document update. Nil fields are left
// unchanged; Data replaces the stored data wholesale when present.
type UpdateDocumentRequest struct {
	Title   *string        `json:"title,omitempty"`
	Context *string        `json:"context,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Theme   *render.Theme  `json:"theme,omitempty"`
}

// DocumentMeta is the list-view projection of a document.
type DocumentMeta struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	ViewURL   string    `json:"view_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is the full document representation. Context is free-text
// caller notes, stored and returned verbatim.
type Document struct {
	DocumentMeta
	Context  string         `json:"context,omitempty"`
	Data     map[string]any `json:"data"`
	Theme    *render.Theme  `json:"theme,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

// MeResponse is the account profile with its most recent documents.
type MeResponse struct {
	*Account
	RecentDocuments []DocumentMeta `json:"recent_documents"`
}

// DocumentList wraps a document listing with the account's quota status.
type DocumentList struct {
	Documents []DocumentMeta `json:"documents"`
	DocCount  int            `json:"doc_count"`
	DocLimit  int            `json:"doc_limit"`
}

// TemplateInfo describes one document kind for the template catalog.
type TemplateInfo struct {
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Fields      []string        `json:"fields"`
	Schema      json.RawMessage `json:"schema,omitempty"`
}

var validate = validator.New()

// Validate validates the SignupRequest using the validator.
func (r *SignupRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateDocumentRequest using the validator.
func (r *CreateDocumentRequest) Validate() error {
	return validate.Struct(r)
}
