package render

import "html/template"

type experienceView struct {
	Role        string
	Company     string
	Period      string
	Description template.HTML
}

type educationView struct {
	Degree string
	School string
	Year   string
}

type resumeView struct {
	Name       string
	Title      string
	Email      string
	Phone      string
	Location   string
	Website    string
	LinkedIn   string
	Summary    string
	Experience []experienceView
	Education  []educationView
	Skills     []string
	Sections   []sectionView
}

func buildResumeView(data Map) resumeView {
	v := resumeView{
		Name:     data.Str("name"),
		Title:    data.Str("title"),
		Email:    data.Str("email"),
		Phone:    data.Str("phone"),
		Location: data.Str("location"),
		Website:  data.Str("website"),
		LinkedIn: data.Str("linkedin"),
		Summary:  data.Str("summary"),
		Skills:   data.Strings("skills"),
		Sections: buildSections(data, "sections"),
	}
	for _, e := range data.Objects("experience") {
		v.Experience = append(v.Experience, experienceView{
			Role:        e.Str("role"),
			Company:     e.Str("company"),
			Period:      e.Str("period"),
			Description: mdHTML(e.Str("description")),
		})
	}
	for _, e := range data.Objects("education") {
		v.Education = append(v.Education, educationView{
			Degree: e.Str("degree"),
			School: e.Str("school"),
			Year:   e.Str("year"),
		})
	}
	return v
}

var resumeTmpl = mustTemplate("resume", `<div class="header-bar"></div>
<div class="mb-8" style="text-align:center">
  <h1 style="font-size:32px">{{.Name}}</h1>
  {{if .Title}}<p class="text-muted" style="font-size:18px">{{.Title}}</p>{{end}}
  <div class="text-muted text-small mt-2 flex justify-between" style="justify-content:center; gap:16px; flex-wrap:wrap">
    {{if .Email}}<span>{{.Email}}</span>{{end}}
    {{if .Phone}}<span>{{.Phone}}</span>{{end}}
    {{if .Location}}<span>{{.Location}}</span>{{end}}
    {{if .Website}}<span><a href="{{.Website}}" style="color:var(--primary)">{{.Website}}</a></span>{{end}}
    {{if .LinkedIn}}<span><a href="{{.LinkedIn}}" style="color:var(--primary)">LinkedIn</a></span>{{end}}
  </div>
</div>

{{if .Summary}}
<div class="section">
  <h2 style="border-bottom:2px solid var(--primary); padding-bottom:4px">Summary</h2>
  <p class="mt-2">{{.Summary}}</p>
</div>
{{end}}

{{if .Experience}}
<div class="section">
  <h2 style="border-bottom:2px solid var(--primary); padding-bottom:4px">Experience</h2>
  {{range .Experience}}
  <div class="mt-4">
    <div class="flex justify-between">
      <div><strong>{{.Role}}</strong> &mdash; {{.Company}}</div>
      <div class="text-muted text-small">{{.Period}}</div>
    </div>
    {{if .Description}}<div class="markdown-content text-small mt-2">{{.Description}}</div>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{if .Education}}
<div class="section">
  <h2 style="border-bottom:2px solid var(--primary); padding-bottom:4px">Education</h2>
  {{range .Education}}
  <div class="mt-4">
    <div class="flex justify-between">
      <div><strong>{{.Degree}}</strong> &mdash; {{.School}}</div>
      <div class="text-muted text-small">{{.Year}}</div>
    </div>
  </div>
  {{end}}
</div>
{{end}}

{{if .Skills}}
<div class="section">
  <h2 style="border-bottom:2px solid var(--primary); padding-bottom:4px">Skills</h2>
  <div class="mt-2" style="display:flex; flex-wrap:wrap; gap:8px">
    {{range .Skills}}
    <span class="badge">{{.}}</span>
    {{end}}
  </div>
</div>
{{end}}

{{range .Sections}}
<div class="section">
  <h2 style="border-bottom:2px solid var(--primary); padding-bottom:4px">{{.Heading}}</h2>
  <div class="markdown-content mt-2">{{.Content}}</div>
</div>
{{end}}
`)
