package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func MainHeader(name, tagline string) g.Node {
	return h.Header(
		h.Class("text-center py-16 border-b border-[#d1cfc8]"),
		h.H1(h.Class("text-5xl tracking-[0.2em] uppercase"), g.Text(name)),
		h.P(h.Class("mt-4 text-lg italic"), g.Text(tagline)),
	)
}
