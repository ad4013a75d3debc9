// Package render implements the document rendering engine: the mapping from
// (template kind, arbitrary JSON-shaped data, optional theme) to a complete,
// self-contained HTML page. Rendering is a pure, synchronous computation:
// identical input always yields byte-identical output, inputs are never
// mutated, and the only failure mode is an unknown document kind.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/jonathan/dockit/internal/markdown"
)

// Kind identifies one of the six supported document templates.
type Kind string

// Supported document kinds.
const (
	KindInvoice  Kind = "invoice"
	KindProposal Kind = "proposal"
	KindReport   Kind = "report"
	KindLetter   Kind = "letter"
	KindResume   Kind = "resume"
	KindFreeform Kind = "freeform"
)

// ErrUnknownKind indicates a document kind outside the supported set reached
// the renderer. This is a caller bug: kinds are validated at the API
// boundary before a document ever exists.
var ErrUnknownKind = errors.New("unknown document template")

// Kinds returns the supported document kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{KindInvoice, KindProposal, KindReport, KindLetter, KindResume, KindFreeform}
}

// ParseKind validates a kind string from untrusted input.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := templates[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Totals holds the renderer-computed invoice aggregates. Templates consume
// these values and never recompute them.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// invoiceTotals computes subtotal, tax, and total over the invoice line
// items. Missing quantities and prices count as zero, and an invoice with no
// items still gets zero-valued totals so the totals block always renders.
func invoiceTotals(data Map) Totals {
	var t Totals
	for _, item := range data.Objects("items") {
		t.Subtotal += item.Float("quantity") * item.Float("unit_price")
	}
	if data.Truthy("tax_rate") {
		t.Tax = t.Subtotal * data.Float("tax_rate") / 100
	}
	t.Total = t.Subtotal + t.Tax
	return t
}

// funcMap exposes the formatting helpers to all document templates.
var funcMap = template.FuncMap{
	"currency": Currency,
	"multiply": Multiply,
	"add":      Add,
	"equals":   Equals,
	"compare":  Compare,
}

// templates maps each kind to its parsed body template.
var templates = map[Kind]*template.Template{
	KindInvoice:  invoiceTmpl,
	KindProposal: proposalTmpl,
	KindReport:   reportTmpl,
	KindLetter:   letterTmpl,
	KindResume:   resumeTmpl,
	KindFreeform: freeformTmpl,
}

func mustTemplate(name, src string) *template.Template {
	return template.Must(template.New(name).Funcs(funcMap).Parse(src))
}

// mdHTML converts a markdown prose field and marks the sanitized result as
// trusted markup. This is the only path by which unescaped HTML enters a
// template.
func mdHTML(source string) template.HTML {
	return template.HTML(markdown.ToHTML(source))
}

// Render produces the full HTML page for a document. data and theme may be
// nil or partial; every optional field degrades to an omitted block. The
// only error is ErrUnknownKind.
func Render(kind Kind, data Map, theme *Theme) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if data == nil {
		data = Map{}
	}

	var view any
	switch kind {
	case KindInvoice:
		view = buildInvoiceView(data, invoiceTotals(data))
	case KindProposal:
		view = buildProposalView(data)
	case KindReport:
		view = buildReportView(data)
	case KindLetter:
		view = buildLetterView(data)
	case KindResume:
		view = buildResumeView(data)
	case KindFreeform:
		view = buildFreeformView(data)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering %s body: %w", kind, err)
	}

	return wrapPage(DeriveTitle(kind, data), buf.String(), theme), nil
}
