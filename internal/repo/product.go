package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pventura/stockroom/internal/keys"
	"github.com/pventura/stockroom/internal/kv"
	"github.com/pventura/stockroom/internal/models"
)

// ProductInput carries the client-settable fields of a new product.
type ProductInput struct {
	Name         string
	SKU          string
	Quantity     int
	Price        float64
	ReorderLevel int
}

// ProductPatch is a partial update. Nil fields are left unchanged.
// ID, owner and creation time are immutable and have no patch fields.
type ProductPatch struct {
	Name         *string
	SKU          *string
	Quantity     *int
	Price        *float64
	ReorderLevel *int
}

// ListProducts returns every product owned by the tenant, in store scan
// order. A tenant with no products gets an empty slice, not an error.
func (r *InventoryRepository) ListProducts(ctx context.Context, tenantID string) ([]models.Product, error) {
	entries, err := r.store.GetByPrefix(ctx, keys.Prefix(tenantID, keys.KindProduct))
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		var p models.Product
		if err := json.Unmarshal(e.Value, &p); err != nil {
			return nil, fmt.Errorf("decoding product %q: %w", e.Key, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// CreateProduct validates the input, assigns a namespaced id, stamps
// ownership and timestamps, and persists the record.
func (r *InventoryRepository) CreateProduct(ctx context.Context, tenantID string, in ProductInput) (models.Product, error) {
	if errs := validateProduct(in); len(errs) > 0 {
		return models.Product{}, errs
	}

	now := r.timestamp()
	product := models.Product{
		ID:           keys.Derive(tenantID, keys.KindProduct, keys.NewEntityID()),
		OwnerID:      tenantID,
		Name:         in.Name,
		SKU:          in.SKU,
		Quantity:     in.Quantity,
		Price:        in.Price,
		ReorderLevel: in.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.putProduct(ctx, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// UpdateProduct merges the patch into the stored record and re-validates
// the result. id, ownerId and createdAt cannot be changed.
func (r *InventoryRepository) UpdateProduct(ctx context.Context, tenantID, productID string, patch ProductPatch) (models.Product, error) {
	product, err := r.getProduct(ctx, tenantID, productID)
	if err != nil {
		return models.Product{}, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.SKU != nil {
		product.SKU = *patch.SKU
	}
	if patch.Quantity != nil {
		product.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.ReorderLevel != nil {
		product.ReorderLevel = *patch.ReorderLevel
	}

	merged := ProductInput{
		Name:         product.Name,
		SKU:          product.SKU,
		Quantity:     product.Quantity,
		Price:        product.Price,
		ReorderLevel: product.ReorderLevel,
	}
	if errs := validateProduct(merged); len(errs) > 0 {
		return models.Product{}, errs
	}

	product.UpdatedAt = r.timestamp()
	if err := r.putProduct(ctx, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// AdjustStock applies a signed quantity delta. A delta that would drive
// the quantity negative clamps to zero; overselling is not an error.
func (r *InventoryRepository) AdjustStock(ctx context.Context, tenantID, productID string, delta int) (models.Product, error) {
	product, err := r.getProduct(ctx, tenantID, productID)
	if err != nil {
		return models.Product{}, err
	}

	product.Quantity = max(0, product.Quantity+delta)
	product.UpdatedAt = r.timestamp()

	if err := r.putProduct(ctx, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// DeleteProduct removes the product. Hard delete; no tombstone.
func (r *InventoryRepository) DeleteProduct(ctx context.Context, tenantID, productID string) error {
	if !keys.BelongsToTenant(productID, tenantID, keys.KindProduct) {
		return ErrProductNotFound
	}
	err := r.store.Delete(ctx, productID)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return ErrProductNotFound
	}
	return err
}

// getProduct loads a tenant-checked product. A key outside the tenant's
// namespace is indistinguishable from a missing record.
func (r *InventoryRepository) getProduct(ctx context.Context, tenantID, productID string) (models.Product, error) {
	if !keys.BelongsToTenant(productID, tenantID, keys.KindProduct) {
		return models.Product{}, ErrProductNotFound
	}

	raw, err := r.store.Get(ctx, productID)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return models.Product{}, fmt.Errorf("decoding product %q: %w", productID, err)
	}
	return product, nil
}

func (r *InventoryRepository) putProduct(ctx context.Context, p models.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding product %q: %w", p.ID, err)
	}
	return r.store.Set(ctx, p.ID, raw)
}

func validateProduct(in ProductInput) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Description: "name is required"})
	}
	if strings.TrimSpace(in.SKU) == "" {
		errs = append(errs, FieldError{Field: "sku", Description: "sku is required"})
	}
	if in.Quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Description: "quantity cannot be negative"})
	}
	if in.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Description: "price cannot be negative"})
	}
	if in.ReorderLevel < 0 {
		errs = append(errs, FieldError{Field: "reorderLevel", Description: "reorder level cannot be negative"})
	}
	return errs
}
