package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonderpark/parkpos/internal/core/domain"
)

// Quantity and the ticket list can diverge; the total follows the ticket
// list only. This pins the documented behavior pending product
// clarification.
func TestOrder_CalculateTotalPriceIgnoresQuantity(t *testing.T) {
	order := &domain.Order{
		Tickets:  []*domain.Ticket{{Type: "VIP", Price: 135.0}},
		Quantity: 3,
	}

	assert.Equal(t, 135.0, order.CalculateTotalPrice())
	assert.Equal(t, 135.0, order.TotalPrice)
}

func TestOrder_CalculateTotalPriceSumsTickets(t *testing.T) {
	order := &domain.Order{
		Tickets: []*domain.Ticket{
			{Price: 40.0},
			{Price: 40.0},
			{Price: 120.0},
		},
	}

	assert.Equal(t, 200.0, order.CalculateTotalPrice())
}

func TestOrder_Summary(t *testing.T) {
	customer := &domain.Customer{Name: "John Doe"}
	order := &domain.Order{
		ID:          "ORDER-1",
		Customer:    customer,
		Tickets:     []*domain.Ticket{{Type: "VIP", Price: 135.0}},
		Quantity:    1,
		TotalPrice:  135.0,
		AmountPaid:  135.0,
		PaymentType: "CARD",
		OrderDate:   "2024-12-05",
	}

	summary := order.Summary()

	assert.Contains(t, summary, "Order ID: ORDER-1")
	assert.Contains(t, summary, "Customer: John Doe")
	assert.Contains(t, summary, "Total Price: $135.00")
	assert.Contains(t, summary, "Ticket Type: VIP")
}

func TestNextOrderID_SequentialAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for count := 0; count < 10; count++ {
		id := domain.NextOrderID(count)
		assert.Equal(t, fmt.Sprintf("ORDER-%d", count+1), id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
