package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the report as an Excel workbook with a Summary sheet and a
// Key Metrics sheet.
func WriteXLSX(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"client_id", "total_amount", "last_transaction", "anomalies"}
	for i, hdr := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, hdr); err != nil {
			return err
		}
	}
	for row, s := range rep.Summary {
		values := []interface{}{s.ClientID, s.Total, s.LastDate.Format("2006-01-02"), s.Anomalies}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}

	const metricsSheet = "Key Metrics"
	if _, err := f.NewSheet(metricsSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	metrics := [][]interface{}{
		{"Metric", "Value"},
		{"Total Transactions", rep.KPIs.Total},
		{"Clients", rep.KPIs.Clients},
		{"First Transaction", rep.KPIs.Start.Format("2006-01-02")},
		{"Last Transaction", rep.KPIs.End.Format("2006-01-02")},
	}
	for row, line := range metrics {
		for col, v := range line {
			cell, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(metricsSheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
