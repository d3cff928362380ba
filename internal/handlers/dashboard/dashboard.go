// Package dashboard serves the signed-in financial insights page and the
// Excel summary report download.
package dashboard

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lumensite/internal/metrics"
	"lumensite/internal/middleware"
	"lumensite/internal/report"
	"lumensite/internal/routes"
	"lumensite/web/ui"
)

const (
	maxUploadBytes = 10 << 20
	sampleSource   = "sample data"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler renders the dashboard. GET shows the bundled sample statement;
// POST analyzes an uploaded CSV or Excel statement. Anonymous requests are
// sent to the login page.
func Handler(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, routes.Login, http.StatusSeeOther)
			return
		}

		rep := report.Build(report.Sample(), sampleSource)
		if r.Method == http.MethodPost {
			txns, name, err := uploadedStatement(r)
			if err != nil {
				log.Warn("statement upload rejected", zap.Error(err))
				rep.Notice = "Could not read that statement: " + err.Error()
			} else {
				rep = report.Build(txns, name)
			}
		}

		metrics.PageViews.WithLabelValues(routes.Dashboard).Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := ui.Dashboard(ui.PageData{Path: routes.Dashboard, Title: "Dashboard · Lumen", User: user}, rep)
		if err := page.Render(w); err != nil {
			log.Error("page render failed", zap.String("path", routes.Dashboard), zap.Error(err))
		}
	}
}

// Download serves the summary report as an Excel workbook. GET covers the
// bundled sample statement; POST regenerates the report from an uploaded
// statement, mirroring the dashboard form.
func Download(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, routes.Login, http.StatusSeeOther)
			return
		}

		rep := report.Build(report.Sample(), sampleSource)
		if r.Method == http.MethodPost {
			txns, name, err := uploadedStatement(r)
			if err != nil {
				http.Error(w, "Could not read that statement: "+err.Error(), http.StatusBadRequest)
				return
			}
			rep = report.Build(txns, name)
		}

		var buf bytes.Buffer
		if err := report.WriteXLSX(&buf, rep); err != nil {
			log.Error("report export failed", zap.Error(err))
			http.Error(w, "Report export failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", xlsxMIME)
		w.Header().Set("Content-Disposition", `attachment; filename="client_summary.xlsx"`)
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.Warn("report download interrupted", zap.Error(err))
		}
	}
}

func uploadedStatement(r *http.Request) ([]report.Transaction, string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "", err
	}
	f, hdr, err := r.FormFile("statement")
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = f.Close() }()

	txns, err := parseStatement(f, hdr)
	if err != nil {
		return nil, "", err
	}
	return txns, hdr.Filename, nil
}

func parseStatement(f multipart.File, hdr *multipart.FileHeader) ([]report.Transaction, error) {
	if strings.HasSuffix(strings.ToLower(hdr.Filename), ".xlsx") {
		return report.ParseXLSX(f)
	}
	return report.ParseCSV(f)
}
