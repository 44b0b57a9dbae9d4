// Package contact turns contact button activations into side effects
// (redirects to a profile page or a mail client) behind a small interface.
package contact

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var (
	ErrNoTarget          = errors.New("contact action has no target")
	ErrUnsupportedTarget = errors.New("unsupported contact target")
)

// Action is one contact button: its route name, visible label and where it leads.
type Action struct {
	Name   string `yaml:"name"`
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Dispatcher performs whatever an activated Action means in the current environment.
type Dispatcher interface {
	Dispatch(a Action) error
}

// Find returns the action registered under name.
func Find(actions []Action, name string) (Action, bool) {
	for _, a := range actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// CheckTarget reports whether the target can be dispatched.
func CheckTarget(target string) error {
	if target == "" {
		return ErrNoTarget
	}
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedTarget, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: %q has no host", ErrUnsupportedTarget, target)
		}
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("%w: %q has no address", ErrUnsupportedTarget, target)
		}
	default:
		return fmt.Errorf("%w: scheme %q", ErrUnsupportedTarget, u.Scheme)
	}
	return nil
}

// Redirector dispatches by redirecting the current request to the action target.
type Redirector struct {
	w http.ResponseWriter
	r *http.Request
}

func NewRedirector(w http.ResponseWriter, r *http.Request) *Redirector {
	return &Redirector{w: w, r: r}
}

func (d *Redirector) Dispatch(a Action) error {
	if err := CheckTarget(a.Target); err != nil {
		return err
	}
	http.Redirect(d.w, d.r, a.Target, http.StatusSeeOther)
	return nil
}

// Noop accepts every action and does nothing.
type Noop struct{}

func (Noop) Dispatch(Action) error { return nil }
