package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wonderpark/parkpos/internal/core/domain"
	"github.com/wonderpark/parkpos/internal/core/ports"
)

const (
	pricedCatalogKey = "catalog:priced"
	pricedCatalogTTL = 5 * time.Minute
)

type PurchaseState string

const (
	StateSelecting       PurchaseState = "SELECTING"
	StatePriced          PurchaseState = "PRICED"
	StateAwaitingPayment PurchaseState = "AWAITING_PAYMENT"
	StateConfirmed       PurchaseState = "CONFIRMED"
)

// Purchase walks Selecting -> Priced -> AwaitingPayment -> Confirmed. The
// service methods enforce the order; a confirmed purchase is terminal.
type Purchase struct {
	State     PurchaseState
	Customer  string
	Entry     domain.CatalogEntry
	Quantity  int
	UnitPrice float64
	Total     float64

	payment ports.PaymentRequest
}

type PricedEntry struct {
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Validity string  `json:"validity"`
	Features string  `json:"features"`
	Discount float64 `json:"discount"`
}

type ConfirmResult struct {
	OrderID    string  `json:"order_id"`
	Total      float64 `json:"total"`
	AmountPaid float64 `json:"amount_paid"`
	Reference  string  `json:"reference"`
}

type TicketingService struct {
	catalog   domain.Catalog
	discounts *domain.DiscountLedger
	accounts  ports.AccountStore
	orders    ports.OrderStore
	sales     ports.SalesStore
	payments  ports.PaymentProcessor
	cache     *redis.Client
	now       func() time.Time
}

func NewTicketingService(
	catalog domain.Catalog,
	discounts *domain.DiscountLedger,
	accounts ports.AccountStore,
	orders ports.OrderStore,
	sales ports.SalesStore,
	payments ports.PaymentProcessor,
	cache *redis.Client,
) *TicketingService {
	return &TicketingService{
		catalog:   catalog,
		discounts: discounts,
		accounts:  accounts,
		orders:    orders,
		sales:     sales,
		payments:  payments,
		cache:     cache,
		now:       time.Now,
	}
}

func (s *TicketingService) NewPurchase(customer string) *Purchase {
	return &Purchase{State: StateSelecting, Customer: customer}
}

// PricedCatalog returns the catalog with current discounts applied. The
// result is cached in redis until the next discount write invalidates it.
func (s *TicketingService) PricedCatalog(ctx context.Context) ([]PricedEntry, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, pricedCatalogKey).Result(); err == nil {
			var entries []PricedEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	entries := make([]PricedEntry, 0, len(s.catalog))
	for _, e := range s.catalog {
		discount := s.discounts.Percent(e.Type)
		entries = append(entries, PricedEntry{
			Type:     e.Type,
			Price:    domain.PriceAfterDiscount(e.BasePrice, discount),
			Validity: e.Validity,
			Features: e.Features,
			Discount: discount,
		})
	}

	if s.cache != nil {
		if payload, err := json.Marshal(entries); err == nil {
			s.cache.Set(ctx, pricedCatalogKey, payload, pricedCatalogTTL)
		}
	}

	return entries, nil
}

// Select moves the purchase to Priced: it looks up the catalog entry and the
// current discount, then computes the unit price and total.
func (s *TicketingService) Select(p *Purchase, ticketType string, quantity int) error {
	if p.State != StateSelecting && p.State != StatePriced {
		return domain.ErrAlreadyConfirmed
	}

	if ticketType == "" {
		return domain.ErrNoSelection
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	entry, ok := s.catalog.Entry(ticketType)
	if !ok {
		return domain.ErrUnknownTicketType
	}

	p.Entry = entry
	p.Quantity = quantity
	p.UnitPrice = domain.PriceAfterDiscount(entry.BasePrice, s.discounts.Percent(ticketType))
	p.Total = domain.RoundPrice(p.UnitPrice * float64(quantity))
	p.State = StatePriced

	return nil
}

// ProvidePayment records the card fields. The core only requires them to be
// non-empty; validating the card itself is the payment collaborator's job.
func (s *TicketingService) ProvidePayment(p *Purchase, details ports.PaymentRequest) error {
	if p.State != StatePriced {
		return domain.ErrNotPriced
	}

	if details.CardNumber == "" || details.CardholderName == "" || details.CVV == "" {
		return domain.ErrMissingField
	}

	details.Amount = p.Total
	p.payment = details
	p.State = StateAwaitingPayment

	return nil
}

// Confirm charges the payment collaborator, allocates the next order id,
// appends the order, bumps today's sales-ledger bucket and records the
// purchase on the customer's history.
func (s *TicketingService) Confirm(ctx context.Context, p *Purchase) (*ConfirmResult, error) {
	switch p.State {
	case StateAwaitingPayment:
	case StateSelecting:
		return nil, domain.ErrNoSelection
	case StatePriced:
		return nil, domain.ErrPaymentRequired
	default:
		return nil, domain.ErrAlreadyConfirmed
	}

	result, err := s.payments.Charge(ctx, p.payment)
	if err != nil {
		return nil, fmt.Errorf("charge payment: %w", err)
	}
	if !result.Accepted {
		return nil, domain.ErrPaymentDeclined
	}

	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	today := s.now().Format("2006-01-02")
	orderID := domain.NextOrderID(len(orders))
	orders[orderID] = domain.OrderRecord{
		Customer:    p.Customer,
		Ticket:      p.Entry.Type,
		Quantity:    p.Quantity,
		TotalPrice:  p.Total,
		AmountPaid:  result.Amount,
		PaymentType: "CARD",
		OrderDate:   today,
	}

	if err := s.orders.Save(ctx, orders); err != nil {
		return nil, fmt.Errorf("save orders: %w", err)
	}

	salesData, err := s.sales.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	ledger := domain.NewSalesLedger(salesData)
	ledger.Record(today, p.Entry.Type, p.Quantity)
	if err := s.sales.Save(ctx, ledger.Data()); err != nil {
		return nil, fmt.Errorf("save sales: %w", err)
	}

	accounts, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if rec, ok := accounts[p.Customer]; ok {
		rec.History = append(rec.History, domain.Purchase{Item: p.Entry.Type, Price: p.Total})
		accounts[p.Customer] = rec
		if err := s.accounts.Save(ctx, accounts); err != nil {
			return nil, fmt.Errorf("save accounts: %w", err)
		}
	}

	p.State = StateConfirmed

	return &ConfirmResult{
		OrderID:    orderID,
		Total:      p.Total,
		AmountPaid: result.Amount,
		Reference:  result.Reference,
	}, nil
}

// OrdersFor returns the orders placed by one customer, keyed by order id.
func (s *TicketingService) OrdersFor(ctx context.Context, username string) (map[string]domain.OrderRecord, error) {
	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	own := make(map[string]domain.OrderRecord)
	for id, order := range orders {
		if order.Customer == username {
			own[id] = order
		}
	}

	return own, nil
}
