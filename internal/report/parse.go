package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumns is returned when a statement lacks the client, amount, or
// date column.
var ErrMissingColumns = errors.New("required columns missing: client_id, transaction_amount, transaction_date")

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseCSV reads a client statement export in CSV form. The header row names
// the columns; QuickBooks-style headers (Customer:Job, Amount, Date) are
// accepted as aliases.
func ParseCSV(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return parseRecords(records)
}

// ParseXLSX reads the first sheet of an Excel statement export.
func ParseXLSX(r io.Reader) ([]Transaction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	return parseRecords(rows)
}

func parseRecords(records [][]string) ([]Transaction, error) {
	if len(records) == 0 {
		return nil, ErrMissingColumns
	}

	clientCol, amountCol, dateCol := -1, -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case "client_id", "Customer:Job":
			clientCol = i
		case "transaction_amount", "Amount":
			amountCol = i
		case "transaction_date", "Date":
			dateCol = i
		}
	}
	if clientCol < 0 || amountCol < 0 || dateCol < 0 {
		return nil, ErrMissingColumns
	}

	txns := make([]Transaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		if clientCol >= len(rec) || amountCol >= len(rec) || dateCol >= len(rec) {
			continue
		}

		client := strings.TrimSpace(rec[clientCol])
		if client == "" {
			continue
		}

		date, ok := parseDate(rec[dateCol])
		if !ok {
			// Rows without a parseable date are dropped.
			continue
		}

		t := Transaction{ClientID: client, Date: date}
		amount := strings.TrimSpace(rec[amountCol])
		if amount == "" {
			t.Missing = true
		} else {
			v, err := strconv.ParseFloat(strings.ReplaceAll(amount, ",", ""), 64)
			if err != nil {
				t.Missing = true
			} else {
				t.Amount = v
			}
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
