package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/natarelva/portfolio/internal/theme"
)

func TestRenderPage(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	page, err := NewPage("pt-BR", "Natã Relva", "Front-End Developer", theme.Default(), h.P(g.Text("body & soul")))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageName, page))
	out := buf.String()

	assert.Contains(t, out, `<html lang="pt-BR">`)
	assert.Contains(t, out, "<title>Natã Relva | Front-End Developer</title>")
	assert.Contains(t, out, "<p>body &amp; soul</p>")
	assert.Contains(t, out, `tailwind.config = {"darkMode":"class"`)
	assert.Contains(t, out, "fonts.googleapis.com/css2?display=swap")
}

func TestRenderPageDefaultLang(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	page, err := NewPage("", "A", "", theme.Default(), g.Text(""))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageName, page))
	assert.Contains(t, buf.String(), `<html lang="en">`)
	assert.Contains(t, buf.String(), "<title>A</title>")
}
