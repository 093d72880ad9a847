package repo

import (
	"context"
	"time"

	"github.com/pventura/stockroom/internal/models"
)

// sampleCatalog is the demonstration inventory inserted for a brand-new
// tenant so the first dashboard view is non-empty.
var sampleCatalog = []ProductInput{
	{Name: "Wireless Bluetooth Headphones", SKU: "WBH-001", Quantity: 45, Price: 89.99, ReorderLevel: 20},
	{Name: "USB-C Charging Cable", SKU: "USB-002", Quantity: 8, Price: 19.99, ReorderLevel: 15},
	{Name: "Portable Power Bank", SKU: "PPB-003", Quantity: 32, Price: 49.99, ReorderLevel: 10},
	{Name: "Wireless Mouse", SKU: "WM-004", Quantity: 67, Price: 34.99, ReorderLevel: 25},
	{Name: "Mechanical Keyboard", SKU: "MK-005", Quantity: 5, Price: 129.99, ReorderLevel: 12},
	{Name: "Monitor Stand", SKU: "MS-006", Quantity: 18, Price: 39.99, ReorderLevel: 8},
	{Name: "Desk Lamp LED", SKU: "DL-007", Quantity: 23, Price: 59.99, ReorderLevel: 15},
	{Name: "Ergonomic Chair Cushion", SKU: "ECC-008", Quantity: 2, Price: 79.99, ReorderLevel: 10},
}

// EnsureSampleData seeds the demonstration catalog and notifications for
// a tenant that has no products yet. It reports whether anything was
// inserted; a tenant that already has products is left untouched. The
// non-empty check makes a second call (including a concurrent one that
// lost the race) a no-op rather than a duplicate catalog.
func (r *InventoryRepository) EnsureSampleData(ctx context.Context, tenantID string) (bool, error) {
	existing, err := r.ListProducts(ctx, tenantID)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, in := range sampleCatalog {
		if _, err := r.CreateProduct(ctx, tenantID, in); err != nil {
			return false, err
		}
	}

	for _, n := range sampleNotifications(r.now()) {
		if _, err := r.CreateNotification(ctx, tenantID, n); err != nil {
			return false, err
		}
	}
	return true, nil
}

func sampleNotifications(now time.Time) []models.Notification {
	stamp := func(ago time.Duration) string {
		return now.Add(-ago).UTC().Format(time.RFC3339)
	}
	return []models.Notification{
		{
			Type:      models.NotificationLowStock,
			Title:     "Low Stock Alert",
			Message:   "USB-C Charging Cable is running low on stock (8 units remaining)",
			CreatedAt: stamp(time.Hour),
			ProductID: "USB-002",
		},
		{
			Type:      models.NotificationOutOfStock,
			Title:     "Out of Stock Alert",
			Message:   "Ergonomic Chair Cushion is out of stock and needs immediate restocking",
			CreatedAt: stamp(2 * time.Hour),
			ProductID: "ECC-008",
		},
		{
			Type:      models.NotificationReorder,
			Title:     "Reorder Recommendation",
			Message:   "Mechanical Keyboard has reached reorder level (5 units remaining)",
			Read:      true,
			CreatedAt: stamp(24 * time.Hour),
			ProductID: "MK-005",
		},
	}
}
