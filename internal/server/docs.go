package server

import (
	"net/http"
	"sync"

	"github.com/jonathan/dockit/internal/render"
)

// docsMarkdown is the API reference served at /docs. It goes through the
// same freeform renderer as user documents, so the docs page doubles as a
// live sample of the output.
const docsMarkdown = "# DocKit API\n" +
	"\n" +
	"Generate polished HTML documents from JSON.\n" +
	"\n" +
	"## Authentication\n" +
	"\n" +
	"Sign up to receive an API key (prefixed `dk_live_`). Send it on every\n" +
	"`/v1` request either as `X-API-Key: <key>` or `Authorization: Bearer <key>`.\n" +
	"Login also returns a short-lived session token usable in place of the key.\n" +
	"\n" +
	"```\n" +
	"POST /v1/auth/signup   {\"email\": \"...\", \"password\": \"...\"}\n" +
	"POST /v1/auth/login    {\"email\": \"...\", \"password\": \"...\"}\n" +
	"GET  /v1/account/me\n" +
	"```\n" +
	"\n" +
	"## Documents\n" +
	"\n" +
	"```\n" +
	"POST   /v1/documents        {\"kind\": \"invoice\", \"data\": {...}, \"theme\": {...}}\n" +
	"GET    /v1/documents\n" +
	"GET    /v1/documents/{id}\n" +
	"PATCH  /v1/documents/{id}\n" +
	"DELETE /v1/documents/{id}\n" +
	"```\n" +
	"\n" +
	"Kinds: `invoice`, `proposal`, `report`, `letter`, `resume`, `freeform`.\n" +
	"`data` is free-form JSON; missing fields are simply omitted from the\n" +
	"output. Responses may include `warnings` when a field does not match the\n" +
	"kind's expected shape. An optional `context` string holds free-text\n" +
	"notes about the document; it is stored and returned as-is, never\n" +
	"rendered. Each account can hold a limited number of documents;\n" +
	"`DELETE` frees a slot.\n" +
	"\n" +
	"Every created document gets a public view URL:\n" +
	"\n" +
	"```\n" +
	"GET /d/{id}\n" +
	"```\n" +
	"\n" +
	"## Themes\n" +
	"\n" +
	"```json\n" +
	"{\"mode\": \"dark\", \"colors\": {\"primary\": \"#10b981\"}}\n" +
	"```\n" +
	"\n" +
	"`mode` is `light` (default) or `dark`; `colors.primary` accepts any CSS\n" +
	"color. Invalid colors fall back to the default accent.\n" +
	"\n" +
	"## Templates\n" +
	"\n" +
	"```\n" +
	"GET /v1/templates\n" +
	"```\n" +
	"\n" +
	"Lists each kind with the fields its template reads.\n"

var docsPage = sync.OnceValue(func() string {
	html, err := render.Render(render.KindFreeform, render.Map{"content": docsMarkdown}, nil)
	if err != nil {
		return "<!DOCTYPE html><title>DocKit</title><p>documentation unavailable</p>"
	}
	return html
})

// handleDocs serves the rendered API reference.
func (s *Server) handleDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsPage()))
}
