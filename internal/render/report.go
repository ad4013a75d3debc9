package render

type reportView struct {
	Title    string
	Subtitle string
	Author   string
	Date     string
	ShowTOC  bool
	Sections []sectionView
}

func buildReportView(data Map) reportView {
	return reportView{
		Title:    data.Str("title"),
		Subtitle: data.Str("subtitle"),
		Author:   data.Str("author"),
		Date:     data.Str("date"),
		ShowTOC:  data.Truthy("table_of_contents"),
		Sections: buildSections(data, "sections"),
	}
}

var reportTmpl = mustTemplate("report", `<div class="header-bar"></div>
<div class="mb-8">
  <span class="badge">REPORT</span>
  <h1 class="mt-4">{{.Title}}</h1>
  {{if .Subtitle}}<p class="text-muted" style="font-size:18px; margin-top:4px">{{.Subtitle}}</p>{{end}}
  <div class="text-muted text-small mt-4">
    {{if .Author}}<span>By {{.Author}}</span>{{end}}
    {{if .Date}}<span> &middot; {{.Date}}</span>{{end}}
  </div>
</div>

{{if .ShowTOC}}
<div class="section" style="background:var(--surface); padding:20px 24px; border-radius:8px">
  <h3 style="margin-top:0">Table of Contents</h3>
  <ol style="padding-left:20px; margin-top:8px">
    {{range .Sections}}
    <li style="margin-bottom:4px; color:var(--primary)">{{.Heading}}</li>
    {{end}}
  </ol>
</div>
{{end}}

{{range .Sections}}
<div class="section">
  <h2>{{.Heading}}</h2>
  <div class="markdown-content">{{.Content}}</div>
</div>
{{end}}
`)
