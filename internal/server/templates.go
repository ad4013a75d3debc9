package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/dockit/internal/schemas"
	"github.com/jonathan/dockit/internal/types"
)

// templateCatalog describes each document kind and the fields its template
// reads. Every field is optional; the catalog is documentation, not a
// contract.
var templateCatalog = []types.TemplateInfo{
	{
		Kind:        "invoice",
		Description: "Itemized invoice with computed subtotal, tax, and total",
		Fields:      []string{"from", "to", "invoice_number", "date", "due_date", "items", "tax_rate", "currency", "notes"},
	},
	{
		Kind:        "proposal",
		Description: "Business proposal with markdown sections and a pricing table",
		Fields:      []string{"title", "from", "to", "date", "valid_until", "sections", "pricing", "total", "currency"},
	},
	{
		Kind:        "report",
		Description: "Report with optional table of contents and markdown sections",
		Fields:      []string{"title", "subtitle", "author", "date", "table_of_contents", "sections"},
	},
	{
		Kind:        "letter",
		Description: "Formal letter with a markdown body",
		Fields:      []string{"from", "to", "date", "subject", "body", "signature"},
	},
	{
		Kind:        "resume",
		Description: "Resume with summary, experience, education, and skills",
		Fields:      []string{"name", "title", "email", "phone", "location", "website", "linkedin", "summary", "experience", "education", "skills", "sections"},
	},
	{
		Kind:        "freeform",
		Description: "Single markdown document rendered as a styled page",
		Fields:      []string{"content"},
	},
}

// handleTemplates returns the template catalog with each kind's schema
// attached.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	catalog := make([]types.TemplateInfo, len(templateCatalog))
	for i, info := range templateCatalog {
		info.Schema = schemas.Raw(info.Kind)
		catalog[i] = info
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"templates": catalog})
}
