package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wonderpark/parkpos/internal/core/domain"
	"github.com/wonderpark/parkpos/internal/core/ports"
)

type AdminService struct {
	catalog   domain.Catalog
	discounts *domain.DiscountLedger
	sales     ports.SalesStore
	park      *domain.Park
	policy    domain.Policy
	cache     *redis.Client
}

func NewAdminService(
	catalog domain.Catalog,
	discounts *domain.DiscountLedger,
	sales ports.SalesStore,
	park *domain.Park,
	policy domain.Policy,
	cache *redis.Client,
) *AdminService {
	return &AdminService{
		catalog:   catalog,
		discounts: discounts,
		sales:     sales,
		park:      park,
		policy:    policy,
		cache:     cache,
	}
}

// SetDiscount validates the ticket type against the catalog, writes the
// clamped percentage and drops the priced-catalog cache entry.
func (s *AdminService) SetDiscount(ctx context.Context, ticketType, raw string) (float64, error) {
	if _, ok := s.catalog.Entry(ticketType); !ok {
		return 0, domain.ErrUnknownTicketType
	}

	value, err := s.discounts.Set(ticketType, raw)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		s.cache.Del(ctx, pricedCatalogKey)
	}

	return value, nil
}

func (s *AdminService) Discounts() map[string]float64 {
	return s.discounts.Snapshot()
}

// SalesReport flattens the persisted sales ledger into date/ticket/quantity
// rows for display.
func (s *AdminService) SalesReport(ctx context.Context) ([]domain.SalesRow, error) {
	data, err := s.sales.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}

	return domain.NewSalesLedger(data).Rows(), nil
}

func (s *AdminService) AddRide(r *domain.Ride) {
	s.park.AddRide(r)
}

func (s *AdminService) RemoveRide(r *domain.Ride) error {
	if !s.park.RemoveRide(r) && s.policy.StrictRideRemoval {
		return domain.ErrRideNotFound
	}
	return nil
}

func (s *AdminService) ParkCapacity() int {
	return s.park.CheckCapacity()
}
