package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type feature struct {
	name  string
	blurb string
}

var features = []feature{
	{"Statement upload", "Drop in a CSV or Excel export from your accounting tool and get an analysis in seconds."},
	{"Automatic cleaning", "Missing amounts are filled, duplicates dropped, and QuickBooks column names recognized out of the box."},
	{"Client summaries", "Totals, last transaction dates, and flags per client, ready to review at a glance."},
	{"Key metrics", "Total volume, distinct clients, and the date range your statement covers, computed on every upload."},
	{"Anomaly flags", "Transactions far outside a client book's normal range are flagged so you can look before your client asks."},
	{"Excel reports", "Download the full summary as a workbook and hand it straight to a client or an auditor."},
}

func featuresPage() g.Node {
	return h.Section(
		h.H1(g.Text("Everything you need, nothing you have to babysit")),
		h.Div(h.Class("card-grid"),
			g.Map(features, func(f feature) g.Node {
				return h.Div(h.Class("card"),
					h.H3(g.Text(f.name)),
					h.P(g.Text(f.blurb)),
				)
			}),
		),
	)
}
