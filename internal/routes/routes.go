// Package routes holds the site's route table: the URL surface as path
// constants and the ordered set of page bindings rendered by the dispatcher.
package routes

// Page paths.
const (
	Home     = "/"
	Features = "/features"
	Pricing  = "/pricing"
	Contact  = "/contact"
	Login    = "/login"
)

// Signed-in area.
const (
	Dashboard      = "/dashboard"
	ReportDownload = "/reports/client-summary.xlsx"
)

// Operational endpoints.
const (
	Health  = "/health"
	Metrics = "/metrics"
)

// Authentication endpoints.
const (
	AuthGoogle         = "/auth/google"
	AuthGoogleCallback = "/auth/google/callback"
	LogoutGoogle       = "/logout/google"
)

// PageKind tags the page component bound to a route, so page selection is an
// exhaustive switch instead of string dispatch.
type PageKind int

const (
	PageHome PageKind = iota
	PageFeatures
	PagePricing
	PageContact
	PageLogin
)

// Binding associates a URL path with the page rendered for it.
type Binding struct {
	Path  string
	Kind  PageKind
	Title string
	Label string
}

// Table returns the ordered route table. It is built once per call so callers
// cannot mutate the canonical bindings.
func Table() []Binding {
	return []Binding{
		{Path: Home, Kind: PageHome, Title: "Lumen: financial insights without the busywork", Label: "Home"},
		{Path: Features, Kind: PageFeatures, Title: "Features · Lumen", Label: "Features"},
		{Path: Pricing, Kind: PagePricing, Title: "Pricing · Lumen", Label: "Pricing"},
		{Path: Contact, Kind: PageContact, Title: "Contact · Lumen", Label: "Contact"},
		{Path: Login, Kind: PageLogin, Title: "Sign in · Lumen", Label: "Login"},
	}
}
