package profile

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/natarelva/portfolio/internal/contact"
)

var (
	ErrEmptyProfile     = errors.New("profile name and tagline are required")
	ErrDuplicateProject = errors.New("duplicate project id")
	ErrDuplicateAction  = errors.New("duplicate contact action")
	ErrInvalidAction    = errors.New("invalid contact action name")
)

// Action names become the last segment of /actions/{name}.
var actionName = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Profile is the header block: who the page belongs to.
type Profile struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

// Project is a single portfolio card.
type Project struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

// DisplayTitle returns the explicit title or "Project {id}".
func (p Project) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return "Project " + strconv.Itoa(p.ID)
}

func (p Project) DisplayDescription() string {
	if p.Description != "" {
		return p.Description
	}
	return fmt.Sprintf("Short description of project %d, focused on design and functionality.", p.ID)
}

// Href is the card link; "#" stands in until a real URL is configured.
func (p Project) Href() string {
	if p.Link == "" {
		return "#"
	}
	return p.Link
}

// ProjectsFromIDs builds placeholder cards for the given ids, in order.
func ProjectsFromIDs(ids ...int) []Project {
	projects := make([]Project, 0, len(ids))
	for _, id := range ids {
		projects = append(projects, Project{ID: id})
	}
	return projects
}

// Site is everything the composition root needs to render the page.
type Site struct {
	Lang            string           `yaml:"lang"`
	Profile         Profile          `yaml:"profile"`
	ProjectsHeading string           `yaml:"projects_heading"`
	ContactHeading  string           `yaml:"contact_heading"`
	ContactBlurb    string           `yaml:"contact_blurb"`
	Projects        []Project        `yaml:"projects"`
	Contacts        []contact.Action `yaml:"contacts"`
}

func (s *Site) Defaults() {
	if s.Lang == "" {
		s.Lang = "en"
	}
	if s.ProjectsHeading == "" {
		s.ProjectsHeading = "Projects"
	}
	if s.ContactHeading == "" {
		s.ContactHeading = "Contact"
	}
	if s.ContactBlurb == "" {
		s.ContactBlurb = "Get in touch by email or on social networks:"
	}
}

// Validate checks the invariants the renderer relies on. Project ids key the
// card list and action names key the /actions routes, so both must be unique
// and names must be a single lowercase path segment.
func (s *Site) Validate() error {
	if s.Profile.Name == "" || s.Profile.Tagline == "" {
		return ErrEmptyProfile
	}

	seen := make(map[int]struct{}, len(s.Projects))
	for _, p := range s.Projects {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateProject, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	names := make(map[string]struct{}, len(s.Contacts))
	for _, a := range s.Contacts {
		if !actionName.MatchString(a.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidAction, a.Name)
		}
		if _, ok := names[a.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateAction, a.Name)
		}
		names[a.Name] = struct{}{}
		if a.Target == "" {
			continue
		}
		if err := contact.CheckTarget(a.Target); err != nil {
			return fmt.Errorf("contact %q: %w", a.Name, err)
		}
	}
	return nil
}
