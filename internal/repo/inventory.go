// Package repo implements the multi-tenant inventory repository: product
// and notification CRUD over a generic key-value store, with every key
// scoped to its owning tenant.
package repo

import (
	"time"

	"github.com/pventura/stockroom/internal/kv"
)

// InventoryRepository persists products and notifications for all
// tenants. It holds no in-process cache or locks; every call round-trips
// to the store, and concurrent writes to the same record are
// last-writer-wins.
type InventoryRepository struct {
	store kv.Store
	now   func() time.Time
}

// NewInventoryRepository creates a repository over the given store.
func NewInventoryRepository(store kv.Store) *InventoryRepository {
	return &InventoryRepository{
		store: store,
		now:   time.Now,
	}
}

func (r *InventoryRepository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}
