package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natarelva/portfolio/internal/config"
	"github.com/natarelva/portfolio/internal/contact"
	"github.com/natarelva/portfolio/internal/logging"
)

func testRouter(t *testing.T, site config.SiteFile, logs *bytes.Buffer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	site.Defaults()
	require.NoError(t, site.Validate())

	hasher, err := newVisitorHasher()
	require.NoError(t, err)
	if logs == nil {
		logs = &bytes.Buffer{}
	}
	r, err := newRouter(&site, logging.New("info", "json", logs), hasher)
	require.NoError(t, err)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHomePage(t *testing.T) {
	r := testRouter(t, defaultSite(), nil)

	w := serve(r, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, ">Natã Relva</h1>")
	assert.Contains(t, body, ">Project 1</h3>")
	assert.Contains(t, body, ">Project 2</h3>")
	assert.Equal(t, 2, strings.Count(body, "data-project="))
	assert.Contains(t, body, `action="/actions/linkedin"`)
	assert.Contains(t, body, `action="/actions/github"`)
	assert.Contains(t, body, `action="/actions/email"`)
	assert.Contains(t, body, "IntersectionObserver")
}

func TestHomePageNoProjects(t *testing.T) {
	site := defaultSite()
	site.Site.Projects = nil
	r := testRouter(t, site, nil)

	w := serve(r, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "data-project=")
}

func TestActionPlaceholder(t *testing.T) {
	r := testRouter(t, defaultSite(), nil)

	w := serve(r, http.MethodPost, "/actions/github")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/#contact", w.Header().Get("Location"))
}

func TestActionRedirect(t *testing.T) {
	site := defaultSite()
	site.Site.Contacts = []contact.Action{
		{Name: "github", Label: "GitHub", Target: "https://github.com/natarelva"},
		{Name: "email", Label: "Email", Target: "mailto:contact@example.com"},
	}
	r := testRouter(t, site, nil)

	w := serve(r, http.MethodPost, "/actions/github")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "https://github.com/natarelva", w.Header().Get("Location"))

	w = serve(r, http.MethodPost, "/actions/email")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "mailto:contact@example.com", w.Header().Get("Location"))
}

func TestEveryButtonReachesItsRoute(t *testing.T) {
	site := defaultSite()
	site.Site.Contacts = []contact.Action{
		{Name: "linkedin", Label: "LinkedIn", Target: "https://www.linkedin.com/in/natarelva"},
		{Name: "git_hub-2", Label: "GitHub", Target: "https://github.com/natarelva"},
		{Name: "email", Label: "Email"},
	}
	r := testRouter(t, site, nil)

	page := serve(r, http.MethodGet, "/").Body.String()
	for _, a := range site.Site.Contacts {
		path := "/actions/" + a.Name
		require.Contains(t, page, `action="`+path+`"`)
		w := serve(r, http.MethodPost, path)
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
	}
}

func TestActionUnknown(t *testing.T) {
	r := testRouter(t, defaultSite(), nil)
	w := serve(r, http.MethodPost, "/actions/fax")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	r := testRouter(t, defaultSite(), nil)
	w := serve(r, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestLogging(t *testing.T) {
	var logs bytes.Buffer
	r := testRouter(t, defaultSite(), &logs)

	serve(r, http.MethodGet, "/healthz")
	assert.Zero(t, logs.Len())

	serve(r, http.MethodGet, "/")
	assert.Contains(t, logs.String(), `"msg":"http.request"`)
	assert.Contains(t, logs.String(), `"visitor":`)

	logs.Reset()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, logs.String(), `"msg":"http.request"`)
	assert.NotContains(t, logs.String(), `"visitor":`)
}

func TestVisitorHash(t *testing.T) {
	a, err := newVisitorHasher()
	require.NoError(t, err)
	b, err := newVisitorHasher()
	require.NoError(t, err)

	assert.Len(t, a.hash("192.0.2.1"), 16)
	assert.Equal(t, a.hash("192.0.2.1"), a.hash("192.0.2.1"))
	assert.NotEqual(t, a.hash("192.0.2.1"), a.hash("192.0.2.2"))
	assert.NotEqual(t, a.hash("192.0.2.1"), b.hash("192.0.2.1"))
}
