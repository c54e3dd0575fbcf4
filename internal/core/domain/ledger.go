package domain

import (
	"sort"
	"strconv"
	"strings"
)

// DiscountLedger holds the current discount percentage per ticket type. It
// is process-scoped state handed to the services that need it; writes clamp
// to [0,100] and keep no history.
type DiscountLedger struct {
	percents map[string]float64
}

func NewDiscountLedger(catalog Catalog) *DiscountLedger {
	percents := make(map[string]float64, len(catalog))
	for _, e := range catalog {
		percents[e.Type] = 0
	}
	return &DiscountLedger{percents: percents}
}

// Set parses raw as a percentage, clamps it to [0,100] and overwrites the
// previous value.
func (l *DiscountLedger) Set(ticketType, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidDiscountValue
	}
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	l.percents[ticketType] = v
	return v, nil
}

func (l *DiscountLedger) Percent(ticketType string) float64 {
	return l.percents[ticketType]
}

func (l *DiscountLedger) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(l.percents))
	for k, v := range l.percents {
		out[k] = v
	}
	return out
}

// SalesLedger accumulates quantities sold per ticket type, bucketed by date
// string (YYYY-MM-DD).
type SalesLedger struct {
	byDate map[string]map[string]int
}

func NewSalesLedger(data map[string]map[string]int) *SalesLedger {
	if data == nil {
		data = make(map[string]map[string]int)
	}
	return &SalesLedger{byDate: data}
}

// Record adds qty under the ticket type for the given date, creating the
// date bucket if absent.
func (l *SalesLedger) Record(date, ticketType string, qty int) {
	day, ok := l.byDate[date]
	if !ok {
		day = make(map[string]int)
		l.byDate[date] = day
	}
	day[ticketType] += qty
}

func (l *SalesLedger) QuantityFor(date, ticketType string) int {
	return l.byDate[date][ticketType]
}

// Data exposes the underlying mapping for the store's save call.
func (l *SalesLedger) Data() map[string]map[string]int {
	return l.byDate
}

type SalesRow struct {
	Date     string `json:"date"`
	Ticket   string `json:"ticket"`
	Quantity int    `json:"quantity"`
}

// Rows flattens the ledger into rows sorted by date then ticket type so
// reports render in a stable order.
func (l *SalesLedger) Rows() []SalesRow {
	rows := make([]SalesRow, 0, len(l.byDate))
	for date, day := range l.byDate {
		for ticket, qty := range day {
			rows = append(rows, SalesRow{Date: date, Ticket: ticket, Quantity: qty})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Ticket < rows[j].Ticket
	})
	return rows
}
