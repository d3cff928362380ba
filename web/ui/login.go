package ui

import (
	"github.com/markbates/goth"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"lumensite/internal/routes"
)

func loginPage(user *goth.User) g.Node {
	if user != nil {
		return h.Section(
			h.H1(g.Text("You're signed in")),
			h.Div(h.Class("card"),
				g.If(user.AvatarURL != "",
					h.Img(h.Class("avatar"), h.Src(user.AvatarURL), h.Alt("avatar")),
				),
				h.Strong(g.Text(user.Name)),
				h.P(g.Text(user.Email)),
				h.A(h.Class("btn"), h.Href(routes.Dashboard), g.Text("Open your dashboard")),
				g.Text(" "),
				h.A(h.Class("btn btn-secondary"), h.Href(routes.LogoutGoogle), g.Text("Sign out")),
			),
		)
	}

	return h.Section(
		h.H1(g.Text("Sign in to Lumen")),
		h.P(g.Text("Use your Google account. We never post or read anything on your behalf.")),
		h.P(
			h.A(h.Class("btn"), h.Href(routes.AuthGoogle), g.Text("Sign in with Google")),
		),
	)
}
