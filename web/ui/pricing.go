package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"lumensite/internal/routes"
)

type tier struct {
	name    string
	price   string
	per     string
	pitch   string
	bullets []string
}

var tiers = []tier{
	{
		name:  "Starter",
		price: "$0",
		per:   "/month",
		pitch: "For solo bookkeepers and first clients.",
		bullets: []string{
			"Up to 1k transactions/month",
			"Statement cleaning and summaries",
			"Key metrics dashboard",
		},
	},
	{
		name:  "Growth",
		price: "$49",
		per:   "/month",
		pitch: "For firms with a growing client roster.",
		bullets: []string{
			"Up to 100k transactions/month",
			"Anomaly flags on every upload",
			"Excel report downloads",
			"Unlimited seats",
		},
	},
	{
		name:  "Scale",
		price: "Custom",
		per:   "",
		pitch: "For practices with serious volume.",
		bullets: []string{
			"Unlimited transactions",
			"Custom report templates",
			"SSO and audit logs",
			"Dedicated support",
		},
	},
}

func pricingPage() g.Node {
	return h.Section(
		h.H1(g.Text("Plans that grow with you")),
		h.P(g.Text("Start free. Upgrade when your client roster does. No per-seat pricing, ever.")),
		h.Div(h.Class("card-grid"),
			g.Map(tiers, func(t tier) g.Node {
				return h.Div(h.Class("card"),
					h.H3(g.Text(t.name)),
					h.P(h.Class("price"), g.Text(t.price), h.Span(g.Text(t.per))),
					h.P(g.Text(t.pitch)),
					h.Ul(
						g.Map(t.bullets, func(b string) g.Node {
							return h.Li(g.Text(b))
						}),
					),
				)
			}),
		),
		h.P(
			h.A(h.Class("btn"), h.Href(routes.Contact), g.Text("Talk to us about Scale")),
		),
	)
}
