package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"ghostconfig/internal/docs"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	goldmark.WithRendererOptions(
		// Raw HTML stays escaped: html.WithUnsafe is not set.
		html.WithHardWraps(),
	),
)

func renderMarkdownHTML(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return template.HTML("")
	}
	var b bytes.Buffer
	if err := markdownRenderer.Convert([]byte(src), &b); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(b.String())
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: .25rem .5rem; text-align: left; }
code { background: #f4f4f4; padding: 0 .2rem; }
</style>
</head>
<body>
{{.Body}}
<p>{{.Count}} options loaded.</p>
</body>
</html>
`))

type indexVM struct {
	Lang  string
	Title string
	Body  template.HTML
	Count int
}

// handleIndex serves a human-readable description of the API.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	md, _ := docs.Get("api")
	vm := indexVM{
		Lang:  s.cfg.Lang,
		Title: "ghostconfig API",
		Body:  renderMarkdownHTML(md),
		Count: len(s.options),
	}
	var b bytes.Buffer
	if err := indexTemplate.Execute(&b, vm); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b.Bytes())
}
