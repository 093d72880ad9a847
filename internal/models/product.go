package models

// Product represents a product entity in the inventory system. The ID is
// the full namespaced store key, so clients can hand it back verbatim on
// update/delete. OwnerID is stamped by the repository at creation; the
// HTTP layer never accepts it from a client and strips it from responses.
type Product struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ReorderLevel int     `json:"reorderLevel"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

// LowStock reports whether the product is at or below its reorder level.
func (p Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}
