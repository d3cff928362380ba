// Package report turns raw transaction exports into cleaned client
// summaries, key metrics, and downloadable reports.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// anomalyThreshold is the number of standard deviations from the mean beyond
// which a transaction amount is flagged. Statements are often short, and the
// largest possible z-score in a set of n amounts is (n-1)/sqrt(n), so a higher
// cutoff would never fire on small uploads.
const anomalyThreshold = 2.0

// Transaction is one row of a client statement export.
type Transaction struct {
	ClientID string
	Amount   float64
	// Missing marks rows whose source had no amount; Clean fills them.
	Missing bool
	Date    time.Time
	Anomaly bool
}

// ClientSummary aggregates one client's transactions.
type ClientSummary struct {
	ClientID  string
	Total     float64
	LastDate  time.Time
	Anomalies int
}

// KPIs are the headline metrics over a set of transactions.
type KPIs struct {
	Total   float64
	Clients int
	Start   time.Time
	End     time.Time
}

// Report is everything the dashboard shows for one statement.
type Report struct {
	Summary []ClientSummary
	KPIs    KPIs
	Source  string
	Notice  string
}

// Sample returns the bundled demonstration statement shown before any upload.
func Sample() []Transaction {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	return []Transaction{
		{ClientID: "101", Amount: 1000, Date: day(1)},
		{ClientID: "102", Amount: 2000, Date: day(2)},
		{ClientID: "103", Amount: 1500, Date: day(1)},
		{ClientID: "101", Missing: true, Date: day(3)},
		{ClientID: "104", Amount: 3000, Date: day(2)},
		{ClientID: "102", Amount: 2000, Date: day(4)},
		{ClientID: "105", Amount: 5000, Date: day(5)},
	}
}

// Build cleans txns and assembles the full report.
func Build(txns []Transaction, source string) Report {
	cleaned := Clean(txns)
	flagged := FlagAnomalies(cleaned)
	return Report{
		Summary: Summarize(flagged),
		KPIs:    ComputeKPIs(flagged),
		Source:  source,
	}
}

// Clean fills missing amounts with the mean of the known ones, then drops
// exact duplicate rows. Fill happens before deduplication, so two identical
// amount-less rows collapse into one.
func Clean(txns []Transaction) []Transaction {
	var sum float64
	var n int
	for _, t := range txns {
		if !t.Missing {
			sum += t.Amount
			n++
		}
	}
	var mean float64
	if n > 0 {
		mean = sum / float64(n)
	}

	seen := make(map[string]bool, len(txns))
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Missing {
			t.Amount = mean
			t.Missing = false
		}
		key := fmt.Sprintf("%s|%.2f|%s", t.ClientID, t.Amount, t.Date.Format(time.RFC3339))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// FlagAnomalies marks transactions whose amount is further than
// anomalyThreshold standard deviations from the mean.
func FlagAnomalies(txns []Transaction) []Transaction {
	if len(txns) == 0 {
		return txns
	}

	var sum float64
	for _, t := range txns {
		sum += t.Amount
	}
	mean := sum / float64(len(txns))

	var variance float64
	for _, t := range txns {
		d := t.Amount - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(txns)))
	if stddev == 0 {
		return txns
	}

	out := make([]Transaction, len(txns))
	copy(out, txns)
	for i := range out {
		out[i].Anomaly = math.Abs(out[i].Amount-mean) > anomalyThreshold*stddev
	}
	return out
}

// Summarize groups transactions by client: total amount, most recent
// transaction date, and anomaly count, ordered by client id.
func Summarize(txns []Transaction) []ClientSummary {
	byClient := make(map[string]*ClientSummary)
	for _, t := range txns {
		s, ok := byClient[t.ClientID]
		if !ok {
			s = &ClientSummary{ClientID: t.ClientID}
			byClient[t.ClientID] = s
		}
		s.Total += t.Amount
		if t.Date.After(s.LastDate) {
			s.LastDate = t.Date
		}
		if t.Anomaly {
			s.Anomalies++
		}
	}

	out := make([]ClientSummary, 0, len(byClient))
	for _, s := range byClient {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientID < out[j].ClientID })
	return out
}

// ComputeKPIs returns the headline metrics: total amount, distinct clients,
// and the covered date range.
func ComputeKPIs(txns []Transaction) KPIs {
	k := KPIs{}
	clients := make(map[string]bool)
	for _, t := range txns {
		k.Total += t.Amount
		clients[t.ClientID] = true
		if k.Start.IsZero() || t.Date.Before(k.Start) {
			k.Start = t.Date
		}
		if t.Date.After(k.End) {
			k.End = t.Date
		}
	}
	k.Clients = len(clients)
	return k
}
