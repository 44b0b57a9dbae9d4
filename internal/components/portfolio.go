package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/natarelva/portfolio/internal/contact"
	"github.com/natarelva/portfolio/internal/profile"
	"github.com/natarelva/portfolio/internal/reveal"
)

// Portfolio composes the whole page body. It reads only its arguments.
func Portfolio(site profile.Site, buttons []ButtonProps) g.Node {
	return h.Div(
		h.Class("bg-[#f4f1ee] min-h-screen text-[#2e2e2e] font-serif"),
		MainHeader(site.Profile.Name, site.Profile.Tagline),
		h.Main(
			h.Class("max-w-5xl mx-auto py-16 px-6"),
			Projects(site.ProjectsHeading, site.Projects, reveal.DefaultSpec()),
			Contact(site.ContactHeading, site.ContactBlurb, buttons),
		),
		MainFooter(),
		reveal.Script(),
	)
}

func Projects(heading string, projects []profile.Project, anim reveal.Spec) g.Node {
	return h.Section(
		h.ID("projects"),
		h.Class("mb-24"),
		sectionHeading("mb-8", heading),
		h.Div(
			h.Class("grid grid-cols-1 md:grid-cols-2 gap-10"),
			g.Map(projects, func(p profile.Project) g.Node {
				return ProjectCard(p, anim)
			}),
		),
	)
}

// ProjectCard renders one card, keyed by its project id.
func ProjectCard(p profile.Project, anim reveal.Spec) g.Node {
	return h.Div(
		g.Attr("data-project", strconv.Itoa(p.ID)),
		h.Class("border border-[#c1beba] p-6 rounded-xl shadow-md bg-white"),
		anim.Attrs(),
		h.H3(h.Class("text-2xl mb-2 font-bold"), g.Text(p.DisplayTitle())),
		h.P(h.Class("text-sm mb-4"), g.Text(p.DisplayDescription())),
		h.A(
			h.Href(p.Href()),
			h.Class("text-[#3a3a3a] underline hover:text-black transition"),
			g.Text("View on GitHub"),
		),
	)
}

func Contact(heading, blurb string, buttons []ButtonProps) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("text-center"),
		sectionHeading("mb-6", heading),
		h.P(h.Class("mb-6 text-lg"), g.Text(blurb)),
		h.Div(
			h.Class("flex justify-center gap-6"),
			g.Map(buttons, Button),
		),
	)
}

func sectionHeading(margin, text string) g.Node {
	return h.H2(h.Class("text-3xl "+margin+" uppercase border-b pb-2 border-[#d1cfc8]"), g.Text(text))
}

// ContactButtons binds each action to d. Dispatch errors go to onErr when it
// is set; a placeholder action (no target) reports contact.ErrNoTarget there.
func ContactButtons(actions []contact.Action, d contact.Dispatcher, onErr func(error)) []ButtonProps {
	buttons := make([]ButtonProps, 0, len(actions))
	for _, a := range actions {
		buttons = append(buttons, ButtonProps{
			Name:  a.Name,
			Label: a.Label,
			OnClick: func() {
				if err := d.Dispatch(a); err != nil && onErr != nil {
					onErr(err)
				}
			},
		})
	}
	return buttons
}
