package models

// Notification types. The set is closed; anything else is rejected at
// the repository boundary.
const (
	NotificationLowStock   = "low_stock"
	NotificationOutOfStock = "out_of_stock"
	NotificationReorder    = "reorder"
	NotificationSystem     = "system"
)

// Notification is an informational record shown on the dashboard.
// ProductID is a weak back-reference (a SKU or product key), not a
// foreign-key constraint.
type Notification struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
	ReadAt    string `json:"readAt,omitempty"`
	ProductID string `json:"productId,omitempty"`
}

// ValidNotificationType reports whether t belongs to the closed type set.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationLowStock, NotificationOutOfStock, NotificationReorder, NotificationSystem:
		return true
	}
	return false
}
