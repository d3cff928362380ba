package ui

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"lumensite/internal/report"
	"lumensite/internal/routes"
)

// Dashboard renders the signed-in financial insights page: statement upload,
// key metrics, the client summary table, and the report download.
func Dashboard(d PageData, rep report.Report) g.Node {
	return Layout(d,
		h.Section(
			h.H1(g.Text("Financial insights dashboard")),
			h.P(g.Text("Analyze financial statements and generate smart insights for small businesses, CFOs, and tax professionals.")),

			h.FormEl(h.Class("upload-form"), h.Method("post"), h.Action(routes.Dashboard), h.EncType("multipart/form-data"),
				h.Input(h.Type("file"), h.Name("statement"), h.Accept(".csv,.xlsx")),
				h.Button(h.Type("submit"), h.Class("btn"), g.Text("Analyze statement")),
			),

			g.If(rep.Notice != "",
				h.P(h.Class("notice"), g.Text(rep.Notice)),
			),

			kpiCards(rep.KPIs),

			h.H2(g.Text("Client summary")),
			summaryTable(rep.Summary),

			h.P(
				h.A(h.Class("btn btn-secondary"), h.Href(routes.ReportDownload), g.Text("Download summary report")),
			),
			h.P(h.Class("source"), g.Text("Source: "+rep.Source)),
		),
	)
}

func kpiCards(k report.KPIs) g.Node {
	return h.Div(h.Class("card-grid"),
		h.Div(h.Class("card"),
			h.H3(g.Text("Total transactions")),
			h.P(h.Class("price"), g.Text(money(k.Total))),
		),
		h.Div(h.Class("card"),
			h.H3(g.Text("Clients")),
			h.P(h.Class("price"), g.Text(fmt.Sprintf("%d", k.Clients))),
		),
		h.Div(h.Class("card"),
			h.H3(g.Text("Date range")),
			h.P(g.Text(day(k.Start)+" to "+day(k.End))),
		),
	)
}

func summaryTable(summary []report.ClientSummary) g.Node {
	return h.Table(h.Class("summary-table"),
		h.THead(
			h.Tr(
				h.Th(g.Text("Client")),
				h.Th(g.Text("Total amount")),
				h.Th(g.Text("Last transaction")),
				h.Th(g.Text("Anomalies")),
			),
		),
		h.TBody(
			g.Map(summary, func(s report.ClientSummary) g.Node {
				return h.Tr(
					h.Td(g.Text(s.ClientID)),
					h.Td(g.Text(money(s.Total))),
					h.Td(g.Text(day(s.LastDate))),
					h.Td(g.Text(fmt.Sprintf("%d", s.Anomalies))),
				)
			}),
		),
	)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}
