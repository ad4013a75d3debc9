package render

import "html/template"

type letterView struct {
	From      partyView
	To        partyView
	Date      string
	Subject   string
	Body      template.HTML
	Signature string
}

func buildLetterView(data Map) letterView {
	return letterView{
		From: partyView{
			Name:    data.Str("from.name"),
			Address: data.Str("from.address"),
		},
		To: partyView{
			Name:    data.Str("to.name"),
			Address: data.Str("to.address"),
		},
		Date:      data.Str("date"),
		Subject:   data.Str("subject"),
		Body:      mdHTML(data.Str("body")),
		Signature: data.Str("signature"),
	}
}

var letterTmpl = mustTemplate("letter", `<div class="header-bar"></div>
<div class="mb-8">
  <div class="font-semibold">{{.From.Name}}</div>
  {{if .From.Address}}<div class="text-muted text-small" style="white-space:pre-line">{{.From.Address}}</div>{{end}}
</div>

<div class="text-muted text-small mb-8">{{.Date}}</div>

<div class="mb-8">
  <div class="font-semibold">{{.To.Name}}</div>
  {{if .To.Address}}<div class="text-muted text-small" style="white-space:pre-line">{{.To.Address}}</div>{{end}}
</div>

{{if .Subject}}<div class="font-bold mb-4" style="font-size:16px">Re: {{.Subject}}</div>{{end}}

<div class="markdown-content">{{.Body}}</div>

{{if .Signature}}
<div class="mt-12">
  <div>Sincerely,</div>
  <div class="mt-8 font-semibold">{{.Signature}}</div>
</div>
{{end}}
`)
