package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ButtonProps describes a labelled control. Name routes the activation back
// to the server, OnClick is what activation does there.
type ButtonProps struct {
	Name    string
	Label   string
	OnClick func()
}

// Activate runs OnClick once. A button without a handler does nothing.
func (p ButtonProps) Activate() {
	if p.OnClick != nil {
		p.OnClick()
	}
}

// Button posts to /actions/{name} when pressed.
func Button(p ButtonProps) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action("/actions/"+p.Name),
		h.Button(
			h.Type("submit"),
			h.Class("px-4 py-2 border rounded uppercase tracking-wide hover:bg-gray-200 transition"),
			g.Text(p.Label),
		),
	)
}
