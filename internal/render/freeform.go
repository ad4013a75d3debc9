package render

import "html/template"

type freeformView struct {
	Content template.HTML
}

func buildFreeformView(data Map) freeformView {
	return freeformView{Content: mdHTML(data.Str("content"))}
}

var freeformTmpl = mustTemplate("freeform", `<div class="header-bar"></div>
<div class="markdown-content">{{.Content}}</div>
`)
