// Package ui renders the site's HTML: a persistent layout shell and one
// component per page in the route table.
package ui

import (
	"github.com/markbates/goth"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"lumensite/internal/routes"
)

// PageData is the display data shared by every page render.
type PageData struct {
	Path  string
	Title string
	User  *goth.User
}

// Layout wraps page content in the full HTML document with the navigation
// shell. The shell markup is identical on every page regardless of the active
// route.
func Layout(d PageData, content ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       d.Title,
		Description: "Lumen: financial insights without the busywork.",
		Language:    "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
		},
		Body: []g.Node{
			navbar(),
			h.Main(content...),
			footer(),
		},
	})
}

// navbar is the navigation shell: brand plus one link per route binding.
func navbar() g.Node {
	return h.Header(h.Class("site-header"),
		h.A(h.Class("brand"), h.Href(routes.Home), g.Text("Lumen")),
		h.Nav(h.Class("site-nav"),
			g.Map(routes.Table(), func(b routes.Binding) g.Node {
				return h.A(h.Href(b.Path), g.Text(b.Label))
			}),
		),
	)
}

func footer() g.Node {
	return h.Footer(h.Class("site-footer"),
		h.P(g.Text("© Lumen Insights. Built for the people who keep the books.")),
	)
}
