package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Theme mirrors the subset of the Tailwind configuration the page relies on.
type Theme struct {
	DarkMode string   `yaml:"darkMode" json:"darkMode"`
	Content  []string `yaml:"content" json:"content"`
	Theme    struct {
		Extend struct {
			FontFamily struct {
				Serif []string `yaml:"serif" json:"serif"`
			} `yaml:"fontFamily" json:"fontFamily"`
		} `yaml:"extend" json:"extend"`
	} `yaml:"theme" json:"theme"`
}

// Default is the art deco theme: class based dark mode and Cinzel for serif text.
func Default() Theme {
	var t Theme
	t.Defaults()
	return t
}

func (t *Theme) Defaults() {
	if t.DarkMode == "" {
		t.DarkMode = "class"
	}
	if len(t.Content) == 0 {
		t.Content = []string{"./index.html", "./src/**/*.{js,ts,jsx,tsx}"}
	}
	if len(t.Theme.Extend.FontFamily.Serif) == 0 {
		t.Theme.Extend.FontFamily.Serif = []string{`"Cinzel"`, "serif"}
	}
}

func (t *Theme) Validate() error {
	var errs []error
	switch t.DarkMode {
	case "class", "media":
	default:
		errs = append(errs, fmt.Errorf("theme.darkMode must be \"class\" or \"media\", got %q", t.DarkMode))
	}
	if len(t.Theme.Extend.FontFamily.Serif) == 0 {
		errs = append(errs, errors.New("theme.extend.fontFamily.serif must list at least one family"))
	}
	return errors.Join(errs...)
}

// Serif returns the ordered fallback list for the serif typeface.
func (t Theme) Serif() []string {
	return t.Theme.Extend.FontFamily.Serif
}

// TailwindConfig renders the theme as the object assigned to tailwind.config
// by the CDN runtime. Content globs only matter to a build step, so they are
// left out.
func (t Theme) TailwindConfig() (string, error) {
	out := struct {
		DarkMode string `json:"darkMode"`
		Theme    any    `json:"theme"`
	}{t.DarkMode, t.Theme}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FontsURL returns a Google Fonts stylesheet for the first serif family when
// it is a quoted web font name, and "" for generic families like "serif".
func (t Theme) FontsURL() string {
	serif := t.Serif()
	if len(serif) == 0 {
		return ""
	}
	first := serif[0]
	name := strings.Trim(first, `"'`)
	if name == first || name == "" {
		return ""
	}
	q := url.Values{}
	q.Set("family", name)
	q.Set("display", "swap")
	return "https://fonts.googleapis.com/css2?" + q.Encode()
}
