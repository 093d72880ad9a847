package handlers

import "github.com/pventura/stockroom/internal/models"

type ProductRequest struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ReorderLevel int     `json:"reorderLevel"`
}

// ProductUpdateRequest is a partial update; absent fields stay unchanged.
type ProductUpdateRequest struct {
	Name         *string  `json:"name"`
	SKU          *string  `json:"sku"`
	Quantity     *int     `json:"quantity"`
	Price        *float64 `json:"price"`
	ReorderLevel *int     `json:"reorderLevel"`
}

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ReorderLevel int     `json:"reorderLevel"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
	LowStock     bool    `json:"lowStock"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
	ReadAt    string `json:"readAt,omitempty"`
	ProductID string `json:"productId,omitempty"`
}

type StockAdjustmentRequest struct {
	QuantityChange int `json:"quantityChange"` // positive restock, negative sale
}

type ProductsResult struct {
	Products []ProductResponse `json:"products"`
}

type ProductResult struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}

type NotificationsResult struct {
	Notifications []NotificationResponse `json:"notifications"`
}

type NotificationResult struct {
	Success      bool                 `json:"success"`
	Notification NotificationResponse `json:"notification"`
}

type DeleteResult struct {
	Success bool `json:"success"`
}

type SeedResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type SignupResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		Price:        p.Price,
		ReorderLevel: p.ReorderLevel,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		LowStock:     p.LowStock(),
	}
}

func toNotificationResponse(n models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
		ProductID: n.ProductID,
	}
}
