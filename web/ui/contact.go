package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func contactPage() g.Node {
	return h.Section(
		h.H1(g.Text("Get in touch")),
		h.P(g.Text("Questions about plans, onboarding a client book, or anything else? We answer within one business day.")),
		h.Ul(h.Class("contact-list"),
			h.Li(
				h.Strong(g.Text("Sales: ")),
				h.A(h.Href("mailto:sales@lumen.example"), g.Text("sales@lumen.example")),
			),
			h.Li(
				h.Strong(g.Text("Support: ")),
				h.A(h.Href("mailto:support@lumen.example"), g.Text("support@lumen.example")),
			),
			h.Li(
				h.Strong(g.Text("Office: ")),
				g.Text("Kvarnholmsvägen 12, 131 31 Nacka, Sweden"),
			),
		),
	)
}
