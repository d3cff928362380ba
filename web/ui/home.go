package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"lumensite/internal/routes"
)

func homePage() g.Node {
	return h.Section(h.Class("hero"),
		h.H1(g.Text("See what your clients' numbers are telling you")),
		h.P(g.Text("Lumen turns raw financial statements into cleaned client summaries, key metrics, and reports you can hand straight to a client. No spreadsheets to babysit, no formulas to break.")),
		h.P(
			h.A(h.Class("btn"), h.Href(routes.Features), g.Text("See what it does")),
			g.Text(" "),
			h.A(h.Class("btn btn-secondary"), h.Href(routes.Pricing), g.Text("View pricing")),
		),
	)
}
