package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const copyright = "© 2025 - Designed and built by Natã Relva"

func MainFooter() g.Node {
	return h.Footer(
		h.Class("text-center py-10 border-t border-[#d1cfc8] text-sm"),
		h.P(g.Text(copyright)),
	)
}
