package domain

import (
	"fmt"
	"strings"
)

type Order struct {
	ID          string
	Customer    *Customer
	Tickets     []*Ticket
	Quantity    int
	TotalPrice  float64
	AmountPaid  float64
	PaymentType string
	OrderDate   string
}

// CalculateTotalPrice sums the prices of the tickets in the list and stores
// the result. Quantity does not participate in this computation.
func (o *Order) CalculateTotalPrice() float64 {
	var total float64
	for _, t := range o.Tickets {
		total += t.Price
	}
	o.TotalPrice = round2(total)
	return o.TotalPrice
}

func (o *Order) Summary() string {
	details := make([]string, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		details = append(details, t.Describe())
	}
	customer := ""
	if o.Customer != nil {
		customer = o.Customer.Name
	}
	return fmt.Sprintf(
		"Order ID: %s\n"+
			"Customer: %s\n"+
			"Order Date: %s\n"+
			"Payment Type: %s\n"+
			"Quantity: %d\n"+
			"Total Price: $%.2f\n"+
			"Amount Paid: $%.2f\n"+
			"Tickets:\n%s",
		o.ID, customer, o.OrderDate, o.PaymentType, o.Quantity,
		o.TotalPrice, o.AmountPaid, strings.Join(details, "\n"),
	)
}

// OrderRecord is the flat shape the order store persists, keyed by order id.
type OrderRecord struct {
	Customer    string
	Ticket      string
	Quantity    int
	TotalPrice  float64
	AmountPaid  float64
	PaymentType string
	OrderDate   string
}

// NextOrderID derives the next id from the current store size. Ids are
// unique only within a single, non-concurrent store.
func NextOrderID(count int) string {
	return fmt.Sprintf("ORDER-%d", count+1)
}
