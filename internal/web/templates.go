package web

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/Masterminds/sprig/v3"
	g "maragu.dev/gomponents"

	"github.com/natarelva/portfolio/internal/theme"
)

//go:embed tpl/*.tmpl
var tplFS embed.FS

// PageName is the template gin renders for the portfolio page.
const PageName = "index.tmpl"

// Templates parses the embedded document shell with the sprig helpers.
func Templates() (*template.Template, error) {
	return template.New("root").Funcs(sprig.HtmlFuncMap()).ParseFS(tplFS, "tpl/*.tmpl")
}

// PageData is the view model for the document shell.
type PageData struct {
	Lang     string
	Title    string
	Tagline  string
	FontsURL string
	Tailwind template.JS
	Body     template.HTML
}

// NewPage renders body and pairs it with the theme-derived head data.
func NewPage(lang, title, tagline string, th theme.Theme, body g.Node) (PageData, error) {
	var buf bytes.Buffer
	if err := body.Render(&buf); err != nil {
		return PageData{}, err
	}
	tw, err := th.TailwindConfig()
	if err != nil {
		return PageData{}, err
	}
	return PageData{
		Lang:     lang,
		Title:    title,
		Tagline:  tagline,
		FontsURL: th.FontsURL(),
		// Both come from the escaping gomponents renderer and json.Marshal.
		Tailwind: template.JS(tw),
		Body:     template.HTML(buf.String()),
	}, nil
}
