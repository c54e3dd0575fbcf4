package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonderpark/parkpos/internal/core/domain"
)

func TestApplyDiscount_Once(t *testing.T) {
	ticket := &domain.Ticket{Type: "Single-Day Pass", Price: 50.0, Discount: 20}

	got := ticket.ApplyDiscount()

	assert.Equal(t, 40.00, got)
	assert.Equal(t, 40.00, ticket.Price)
}

func TestApplyDiscount_CompoundsOnRepeatedCalls(t *testing.T) {
	ticket := &domain.Ticket{Type: "VIP", Price: 100.0, Discount: 10}

	assert.Equal(t, 90.00, ticket.ApplyDiscount())
	// second call discounts the already reduced price
	assert.Equal(t, 81.00, ticket.ApplyDiscount())
}

func TestApplyDiscount_RoundsToCents(t *testing.T) {
	ticket := &domain.Ticket{Price: 33.33, Discount: 10}

	assert.Equal(t, 30.00, ticket.ApplyDiscount())
}

func TestDescribe(t *testing.T) {
	ticket := &domain.Ticket{
		Type:        "VIP",
		Description: "Access to all rides",
		Price:       150.0,
		Validity:    "1 day",
		Discount:    10,
		Limitations: "None",
		VisitDate:   "2024-12-01",
	}

	desc := ticket.Describe()

	assert.Contains(t, desc, "Ticket Type: VIP")
	assert.Contains(t, desc, "Price: $150.00")
	assert.Contains(t, desc, "Discount: 10%")
	assert.Contains(t, desc, "Visit Date: 2024-12-01")
}

func TestCatalogEntry_NewTicket(t *testing.T) {
	catalog := domain.DefaultCatalog()

	entry, ok := catalog.Entry("Single-Day Pass")
	assert.True(t, ok)

	ticket := entry.NewTicket(20, "2025-06-01")
	assert.Equal(t, 50.0, ticket.Price)
	assert.Equal(t, 20.0, ticket.Discount)
	assert.Equal(t, 40.0, ticket.ApplyDiscount())
}

func TestCatalog_UnknownEntry(t *testing.T) {
	_, ok := domain.DefaultCatalog().Entry("Season Pass")
	assert.False(t, ok)
}
