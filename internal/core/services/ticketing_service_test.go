package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wonderpark/parkpos/internal/core/domain"
	"github.com/wonderpark/parkpos/internal/core/ports"
	"github.com/wonderpark/parkpos/internal/core/ports/mocks"
	"github.com/wonderpark/parkpos/internal/core/services"
)

type ticketingFixture struct {
	service   *services.TicketingService
	discounts *domain.DiscountLedger
	accounts  *mocks.AccountStore
	orders    *mocks.OrderStore
	sales     *mocks.SalesStore
	payments  *mocks.PaymentProcessor
	redis     redismock.ClientMock
}

func newTicketingFixture(t *testing.T) *ticketingFixture {
	accounts := mocks.NewAccountStore(t)
	orders := mocks.NewOrderStore(t)
	sales := mocks.NewSalesStore(t)
	payments := mocks.NewPaymentProcessor(t)
	db, redisMock := redismock.NewClientMock()

	catalog := domain.DefaultCatalog()
	discounts := domain.NewDiscountLedger(catalog)

	service := services.NewTicketingService(catalog, discounts, accounts, orders, sales, payments, db)

	return &ticketingFixture{
		service:   service,
		discounts: discounts,
		accounts:  accounts,
		orders:    orders,
		sales:     sales,
		payments:  payments,
		redis:     redisMock,
	}
}

func validCard() ports.PaymentRequest {
	return ports.PaymentRequest{CardNumber: "4111111111111111", CardholderName: "John Doe", CVV: "123"}
}

func TestSelect_AppliesCurrentDiscount(t *testing.T) {
	f := newTicketingFixture(t)
	_, err := f.discounts.Set("Single-Day Pass", "20")
	assert.NoError(t, err)

	purchase := f.service.NewPurchase("john")
	err = f.service.Select(purchase, "Single-Day Pass", 2)

	assert.NoError(t, err)
	assert.Equal(t, services.StatePriced, purchase.State)
	assert.Equal(t, 40.0, purchase.UnitPrice)
	assert.Equal(t, 80.0, purchase.Total)
}

func TestSelect_Validation(t *testing.T) {
	f := newTicketingFixture(t)
	purchase := f.service.NewPurchase("john")

	assert.ErrorIs(t, f.service.Select(purchase, "", 1), domain.ErrNoSelection)
	assert.ErrorIs(t, f.service.Select(purchase, "Single-Day Pass", 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, f.service.Select(purchase, "Season Pass", 1), domain.ErrUnknownTicketType)
	assert.Equal(t, services.StateSelecting, purchase.State)
}

func TestSelect_AllowsRepricing(t *testing.T) {
	f := newTicketingFixture(t)
	purchase := f.service.NewPurchase("john")

	assert.NoError(t, f.service.Select(purchase, "Single-Day Pass", 1))
	assert.NoError(t, f.service.Select(purchase, "Group Pass", 1))
	assert.Equal(t, 200.0, purchase.Total)
}

func TestProvidePayment_RequiresPricing(t *testing.T) {
	f := newTicketingFixture(t)
	purchase := f.service.NewPurchase("john")

	assert.ErrorIs(t, f.service.ProvidePayment(purchase, validCard()), domain.ErrNotPriced)
}

func TestProvidePayment_RequiresAllFields(t *testing.T) {
	f := newTicketingFixture(t)
	purchase := f.service.NewPurchase("john")
	assert.NoError(t, f.service.Select(purchase, "Single-Day Pass", 1))

	card := validCard()
	card.CVV = ""

	assert.ErrorIs(t, f.service.ProvidePayment(purchase, card), domain.ErrMissingField)
	assert.Equal(t, services.StatePriced, purchase.State)
}

func TestConfirm_Success(t *testing.T) {
	f := newTicketingFixture(t)
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")

	purchase := f.service.NewPurchase("john")
	assert.NoError(t, f.service.Select(purchase, "Single-Day Pass", 2))
	assert.NoError(t, f.service.ProvidePayment(purchase, validCard()))

	f.payments.On("Charge", ctx, mock.MatchedBy(func(req ports.PaymentRequest) bool {
		return req.Amount == 100.0
	})).Return(ports.PaymentResult{Accepted: true, Amount: 100.0, Reference: "ref-1"}, nil)

	f.orders.On("Load", ctx).Return(map[string]domain.OrderRecord{
		"ORDER-1": {Customer: "alice"},
		"ORDER-2": {Customer: "bob"},
	}, nil)
	f.orders.On("Save", ctx, mock.MatchedBy(func(orders map[string]domain.OrderRecord) bool {
		rec, ok := orders["ORDER-3"]
		return ok && rec.Customer == "john" && rec.Quantity == 2 && rec.TotalPrice == 100.0
	})).Return(nil)

	f.sales.On("Load", ctx).Return(map[string]map[string]int{}, nil)
	f.sales.On("Save", ctx, mock.MatchedBy(func(sales map[string]map[string]int) bool {
		return sales[today]["Single-Day Pass"] == 2
	})).Return(nil)

	f.accounts.On("Load", ctx).Return(map[string]domain.AccountRecord{
		"john": {Username: "john"},
	}, nil)
	f.accounts.On("Save", ctx, mock.MatchedBy(func(accounts map[string]domain.AccountRecord) bool {
		history := accounts["john"].History
		return len(history) == 1 && history[0].Item == "Single-Day Pass" && history[0].Price == 100.0
	})).Return(nil)

	result, err := f.service.Confirm(ctx, purchase)

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, "ORDER-3", result.OrderID)
		assert.Equal(t, 100.0, result.Total)
		assert.Equal(t, 100.0, result.AmountPaid)
		assert.Equal(t, "ref-1", result.Reference)
	}
	assert.Equal(t, services.StateConfirmed, purchase.State)
}

func TestConfirm_AccumulatesSalesForToday(t *testing.T) {
	f := newTicketingFixture(t)
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")

	purchase := f.service.NewPurchase("john")
	assert.NoError(t, f.service.Select(purchase, "Single-Day Pass", 2))
	assert.NoError(t, f.service.ProvidePayment(purchase, validCard()))

	f.payments.On("Charge", ctx, mock.Anything).
		Return(ports.PaymentResult{Accepted: true, Amount: 100.0, Reference: "ref-2"}, nil)
	f.orders.On("Load", ctx).Return(map[string]domain.OrderRecord{}, nil)
	f.orders.On("Save", ctx, mock.Anything).Return(nil)
	f.sales.On("Load", ctx).Return(map[string]map[string]int{
		today: {"Single-Day Pass": 3},
	}, nil)
	f.sales.On("Save", ctx, mock.MatchedBy(func(sales map[string]map[string]int) bool {
		return sales[today]["Single-Day Pass"] == 5
	})).Return(nil)
	f.accounts.On("Load", ctx).Return(map[string]domain.AccountRecord{}, nil)

	_, err := f.service.Confirm(ctx, purchase)

	assert.NoError(t, err)
}

func TestConfirm_PaymentDeclined(t *testing.T) {
	f := newTicketingFixture(t)
	ctx := context.Background()

	purchase := f.service.NewPurchase("john")
	assert.NoError(t, f.service.Select(purchase, "Single-Day Pass", 1))
	assert.NoError(t, f.service.ProvidePayment(purchase, validCard()))

	f.payments.On("Charge", ctx, mock.Anything).Return(ports.PaymentResult{Accepted: false}, nil)

	result, err := f.service.Confirm(ctx, purchase)

	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
	assert.Nil(t, result)
	f.orders.AssertNotCalled(t, "Load", mock.Anything)
}

func TestConfirm_StateErrors(t *testing.T) {
	f := newTicketingFixture(t)
	ctx := context.Background()

	fresh := f.service.NewPurchase("john")
	_, err := f.service.Confirm(ctx, fresh)
	assert.ErrorIs(t, err, domain.ErrNoSelection)

	priced := f.service.NewPurchase("john")
	assert.NoError(t, f.service.Select(priced, "Single-Day Pass", 1))
	_, err = f.service.Confirm(ctx, priced)
	assert.ErrorIs(t, err, domain.ErrPaymentRequired)

	done := f.service.NewPurchase("john")
	done.State = services.StateConfirmed
	_, err = f.service.Confirm(ctx, done)
	assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
}

func TestPricedCatalog_CacheMiss(t *testing.T) {
	f := newTicketingFixture(t)
	ctx := context.Background()
	_, err := f.discounts.Set("Single-Day Pass", "20")
	assert.NoError(t, err)

	expected := []services.PricedEntry{
		{Type: "Single-Day Pass", Price: 40.0, Validity: "1 Day", Features: "Access to all rides", Discount: 20},
		{Type: "Multi-Day Pass", Price: 120.0, Validity: "3 Days", Features: "Access to all rides"},
		{Type: "Group Pass", Price: 200.0, Validity: "1 Day", Features: "Access for up to 5 people"},
	}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	f.redis.ExpectGet("catalog:priced").RedisNil()
	f.redis.ExpectSet("catalog:priced", payload, 5*time.Minute).SetVal("OK")

	entries, err := f.service.PricedCatalog(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestPricedCatalog_CacheHit(t *testing.T) {
	f := newTicketingFixture(t)
	ctx := context.Background()

	cached := []services.PricedEntry{{Type: "Single-Day Pass", Price: 45.0, Discount: 10}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	f.redis.ExpectGet("catalog:priced").SetVal(string(payload))

	entries, err := f.service.PricedCatalog(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, entries)
	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestOrdersFor_FiltersByCustomer(t *testing.T) {
	f := newTicketingFixture(t)
	ctx := context.Background()

	f.orders.On("Load", ctx).Return(map[string]domain.OrderRecord{
		"ORDER-1": {Customer: "john", Ticket: "Single-Day Pass"},
		"ORDER-2": {Customer: "alice", Ticket: "Group Pass"},
		"ORDER-3": {Customer: "john", Ticket: "Multi-Day Pass"},
	}, nil)

	orders, err := f.service.OrdersFor(ctx, "john")

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Contains(t, orders, "ORDER-1")
	assert.Contains(t, orders, "ORDER-3")
}
