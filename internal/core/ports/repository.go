package ports

import (
	"context"

	"github.com/wonderpark/parkpos/internal/core/domain"
)

// Each store is a whole-collection key-value contract: Load returns the full
// mapping (empty when nothing was persisted yet) and Save rewrites it. The
// core performs load-mutate-save cycles and surfaces store failures as-is.

type AccountStore interface {
	Load(ctx context.Context) (map[string]domain.AccountRecord, error)
	Save(ctx context.Context, accounts map[string]domain.AccountRecord) error
}

type OrderStore interface {
	Load(ctx context.Context) (map[string]domain.OrderRecord, error)
	Save(ctx context.Context, orders map[string]domain.OrderRecord) error
}

type SalesStore interface {
	Load(ctx context.Context) (map[string]map[string]int, error)
	Save(ctx context.Context, sales map[string]map[string]int) error
}
