package main

import (
	"github.com/natarelva/portfolio/internal/config"
	"github.com/natarelva/portfolio/internal/contact"
	"github.com/natarelva/portfolio/internal/profile"
	"github.com/natarelva/portfolio/internal/theme"
)

var (
	Name    = "Natã Relva"
	Tagline = "Front-End Developer & Creator of Digital Experiences"

	// Cards for these ids use the "Project {id}" placeholders until site.yaml
	// provides real entries.
	ProjectIDs = []int{1, 2}

	// Targets stay empty until configured; pressing such a button just
	// returns to the contact section.
	ContactActions = []contact.Action{
		{Name: "linkedin", Label: "LinkedIn"},
		{Name: "github", Label: "GitHub"},
		{Name: "email", Label: "Email"},
	}
)

// defaultSite is served when no site file is present.
func defaultSite() config.SiteFile {
	return config.SiteFile{
		Site: profile.Site{
			Profile:  profile.Profile{Name: Name, Tagline: Tagline},
			Projects: profile.ProjectsFromIDs(ProjectIDs...),
			Contacts: ContactActions,
		},
		Theme: theme.Default(),
	}
}
