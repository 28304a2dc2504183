package render

import (
	"bytes"
	"html/template"
)

// pageTemplate turns a Document into a standalone HTML page. The markup
// is identical for every layout; templates vary it through their CSS
// and Style values only.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { margin: 0; font-family: {{.Style.FontFamily | css}}; font-size: {{.Style.BaseFontSizePt}}pt; color: {{.Style.TextColor | css}}; background: {{.Style.Background | css}}; }
{{.CSS}}
</style>
</head>
<body>
<div class="resume">
{{- range .Doc.Sections}}
{{- if eq .Kind "header"}}
<div class="header section">
  <div class="name">{{.Header.Name}}</div>
  <div class="contact">{{range $i, $c := .Header.Contact}}{{if $i}} &middot; {{end}}{{$c}}{{end}}</div>
  {{- if .Header.Links}}
  <div class="links">{{range .Header.Links}}<a href="{{.}}">{{.}}</a>{{end}}</div>
  {{- end}}
</div>
{{- else if eq .Kind "summary"}}
<div class="section summary">
  <div class="section-title">{{.Title}}</div>
  <p>{{.Text}}</p>
</div>
{{- else if eq .Kind "skills"}}
<div class="section skills">
  <div class="section-title">{{.Title}}</div>
  {{- range .Skills}}
  <div class="skill"><span class="name">{{.Name}}</span> <span class="level">{{.Level}}</span></div>
  {{- end}}
</div>
{{- else if eq .Kind "projects"}}
<div class="section projects">
  <div class="section-title">{{.Title}}</div>
  {{- range .Projects}}
  <div class="project">
    <div class="heading">{{.Name}}{{if .URL}} <a href="{{.URL}}">{{.URL}}</a>{{end}}</div>
    <div class="body">{{.Description}}</div>
    {{- if .Technologies}}<div class="tech">{{.Technologies}}</div>{{end}}
  </div>
  {{- end}}
</div>
{{- else}}
<div class="section {{.Kind}}">
  <div class="section-title">{{.Title}}</div>
  {{- range .Entries}}
  <div class="entry">
    <div class="heading">{{.Heading}}</div>
    <div class="subheading">{{.SubHeading}}</div>
    <div class="daterange">{{.DateRange}}{{if .Meta}} &middot; <span class="meta">{{.Meta}}</span>{{end}}</div>
    {{- if .Body}}<div class="body">{{.Body}}</div>{{end}}
  </div>
  {{- end}}
</div>
{{- end}}
{{- end}}
</div>
</body>
</html>`

var page = template.Must(template.New("resume").Funcs(template.FuncMap{
	"css": func(s string) template.CSS { return template.CSS(s) },
}).Parse(pageTemplate))

// RenderHTML emits the standalone HTML page for a rendered document,
// using the stylesheet of the template named on the document itself.
func (e *Engine) RenderHTML(doc Document) (string, error) {
	t := e.Lookup(doc.Template)
	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Doc   Document
		Style Style
		CSS   template.CSS
	}{Doc: doc, Style: doc.Style, CSS: template.CSS(t.CSS())})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
