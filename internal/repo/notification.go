package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/pventura/stockroom/internal/keys"
	"github.com/pventura/stockroom/internal/kv"
	"github.com/pventura/stockroom/internal/models"
)

// ListNotifications returns the tenant's notifications ordered newest
// first. Timestamps are RFC3339 UTC strings, so descending string order
// is descending time order.
func (r *InventoryRepository) ListNotifications(ctx context.Context, tenantID string) ([]models.Notification, error) {
	entries, err := r.store.GetByPrefix(ctx, keys.Prefix(tenantID, keys.KindNotification))
	if err != nil {
		return nil, err
	}

	notifications := make([]models.Notification, 0, len(entries))
	for _, e := range entries {
		var n models.Notification
		if err := json.Unmarshal(e.Value, &n); err != nil {
			return nil, fmt.Errorf("decoding notification %q: %w", e.Key, err)
		}
		notifications = append(notifications, n)
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt > notifications[j].CreatedAt
	})
	return notifications, nil
}

// CreateNotification stamps ownership and persists a notification record.
// Used by seeding; the public API surface never creates notifications.
func (r *InventoryRepository) CreateNotification(ctx context.Context, tenantID string, n models.Notification) (models.Notification, error) {
	if !models.ValidNotificationType(n.Type) {
		return models.Notification{}, ValidationErrors{{Field: "type", Description: "unknown notification type"}}
	}

	if n.ID == "" {
		n.ID = keys.Derive(tenantID, keys.KindNotification, keys.NewEntityID())
	}
	n.OwnerID = tenantID
	if n.CreatedAt == "" {
		n.CreatedAt = r.timestamp()
	}

	raw, err := json.Marshal(n)
	if err != nil {
		return models.Notification{}, fmt.Errorf("encoding notification %q: %w", n.ID, err)
	}
	if err := r.store.Set(ctx, n.ID, raw); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// MarkNotificationRead sets read = true and stamps readAt. Idempotent:
// marking an already-read notification succeeds and re-stamps readAt.
func (r *InventoryRepository) MarkNotificationRead(ctx context.Context, tenantID, notificationID string) (models.Notification, error) {
	if !keys.BelongsToTenant(notificationID, tenantID, keys.KindNotification) {
		return models.Notification{}, ErrNotificationNotFound
	}

	raw, err := r.store.Get(ctx, notificationID)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return models.Notification{}, ErrNotificationNotFound
	}
	if err != nil {
		return models.Notification{}, err
	}

	var n models.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return models.Notification{}, fmt.Errorf("decoding notification %q: %w", notificationID, err)
	}

	n.Read = true
	n.ReadAt = r.timestamp()

	updated, err := json.Marshal(n)
	if err != nil {
		return models.Notification{}, fmt.Errorf("encoding notification %q: %w", notificationID, err)
	}
	if err := r.store.Set(ctx, notificationID, updated); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}
