package render

import "html/template"

// sectionView is one heading+markdown-body section, shared by proposal,
// report, and resume documents.
type sectionView struct {
	Heading string
	Content template.HTML
}

type pricingItemView struct {
	Item  string
	Price float64
}

type proposalView struct {
	Title       string
	FromName    string
	FromTitle   string
	FromCompany string
	Date        string
	ValidUntil  string
	HasTo       bool
	ToName      string
	ToCompany   string
	Sections    []sectionView
	Pricing     []pricingItemView
	HasTotal    bool
	Total       float64
	Currency    string
}

func buildSections(data Map, path string) []sectionView {
	var out []sectionView
	for _, s := range data.Objects(path) {
		out = append(out, sectionView{
			Heading: s.Str("heading"),
			Content: mdHTML(s.Str("content")),
		})
	}
	return out
}

func buildProposalView(data Map) proposalView {
	v := proposalView{
		Title:       data.Str("title"),
		FromName:    data.Str("from.name"),
		FromTitle:   data.Str("from.title"),
		FromCompany: data.Str("from.company"),
		Date:        data.Str("date"),
		ValidUntil:  data.Str("valid_until"),
		HasTo:       data.Truthy("to"),
		ToName:      data.Str("to.name"),
		ToCompany:   data.Str("to.company"),
		Sections:    buildSections(data, "sections"),
		HasTotal:    data.Truthy("total"),
		Total:       data.Float("total"),
		Currency:    data.Str("currency"),
	}
	for _, p := range data.Objects("pricing") {
		v.Pricing = append(v.Pricing, pricingItemView{
			Item:  p.Str("item"),
			Price: p.Float("price"),
		})
	}
	return v
}

var proposalTmpl = mustTemplate("proposal", `<div class="header-bar"></div>
<div class="mb-8">
  <span class="badge">PROPOSAL</span>
  <h1 class="mt-4">{{.Title}}</h1>
  <div class="text-muted mt-2">
    {{if .FromName}}Prepared by <strong>{{.FromName}}</strong>{{end}}
    {{- if .FromTitle}}, {{.FromTitle}}{{end}}
    {{- if .FromCompany}} at {{.FromCompany}}{{end}}
  </div>
  <div class="flex gap-4 text-muted text-small mt-2">
    {{if .Date}}<span>Date: {{.Date}}</span>{{end}}
    {{if .ValidUntil}}<span>Valid until: {{.ValidUntil}}</span>{{end}}
  </div>
  {{if .HasTo}}
  <div class="mt-4" style="background:var(--surface); padding:12px 16px; border-radius:8px">
    <span class="text-muted text-small">Prepared for:</span> <strong>{{.ToName}}</strong>{{if .ToCompany}} &mdash; {{.ToCompany}}{{end}}
  </div>
  {{end}}
</div>

{{range .Sections}}
<div class="section">
  <h2>{{.Heading}}</h2>
  <div class="markdown-content">{{.Content}}</div>
</div>
{{end}}

{{if .Pricing}}
<div class="section">
  <h2>Pricing</h2>
  <table class="data-table">
    <thead><tr><th>Item</th><th class="text-right">Price</th></tr></thead>
    <tbody>
      {{range .Pricing}}
      <tr><td>{{.Item}}</td><td class="text-right">{{currency .Price $.Currency}}</td></tr>
      {{end}}
    </tbody>
  </table>
  {{if .HasTotal}}
  <div class="flex justify-between mt-4 border-top">
    <span class="font-bold" style="font-size:16px">Total</span>
    <span class="font-bold" style="font-size:18px; color:var(--primary)">{{currency .Total .Currency}}</span>
  </div>
  {{end}}
</div>
{{end}}
`)
