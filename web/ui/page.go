package ui

import (
	g "maragu.dev/gomponents"

	"lumensite/internal/routes"
)

// Page selects the component for a page kind and renders it inside the
// layout. Exactly one page is produced per call; an unknown kind yields nil.
func Page(kind routes.PageKind, d PageData) g.Node {
	switch kind {
	case routes.PageHome:
		return Layout(d, homePage())
	case routes.PageFeatures:
		return Layout(d, featuresPage())
	case routes.PagePricing:
		return Layout(d, pricingPage())
	case routes.PageContact:
		return Layout(d, contactPage())
	case routes.PageLogin:
		return Layout(d, loginPage(d.User))
	}
	return nil
}
