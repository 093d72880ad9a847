package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/pventura/stockroom/internal/repo"
)

// GetProductsHandler godoc
// @Summary List the caller's products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProductsResult
// @Failure 401 {object} map[string]string
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantID(r)

	products, err := inventoryRepo.ListProducts(r.Context(), tenantID)
	if err != nil {
		writeRepoError(w, err, "product not found")
		return
	}

	result := ProductsResult{Products: make([]ProductResponse, len(products))}
	for i, p := range products {
		result.Products[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, result)
}

// CreateProductHandler godoc
// @Summary Add a product to the caller's inventory
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResult
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantID(r)

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := inventoryRepo.CreateProduct(r.Context(), tenantID, productInput(req))
	if err != nil {
		writeRepoError(w, err, "product not found")
		return
	}
	writeJSON(w, http.StatusCreated, ProductResult{Success: true, Product: toProductResponse(created)})
}

// UpdateProductHandler godoc
// @Summary Update product fields
// @Description Partial update; id, owner and creation time are immutable.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductUpdateRequest true "Fields to change"
// @Success 200 {object} ProductResult
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantID(r)
	productID := chi.URLParam(r, "id")

	var req ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	updated, err := inventoryRepo.UpdateProduct(r.Context(), tenantID, productID, productPatch(req))
	if err != nil {
		writeRepoError(w, err, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, ProductResult{Success: true, Product: toProductResponse(updated)})
}

// AdjustStockHandler godoc
// @Summary Adjust product stock by a signed delta
// @Description A sale larger than the available stock clamps the quantity at zero.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Quantity change"
// @Success 200 {object} ProductResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id}/stock [put]
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantID(r)
	productID := chi.URLParam(r, "id")

	var req StockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	product, err := inventoryRepo.AdjustStock(r.Context(), tenantID, productID, req.QuantityChange)
	if err != nil {
		writeRepoError(w, err, "Product not found")
		return
	}

	if product.LowStock() {
		logrus.WithFields(logrus.Fields{
			"product":      product.Name,
			"sku":          product.SKU,
			"quantity":     product.Quantity,
			"reorderLevel": product.ReorderLevel,
		}).Warn("product at or below reorder level")
	}

	writeJSON(w, http.StatusOK, ProductResult{Success: true, Product: toProductResponse(product)})
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} DeleteResult
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantID(r)
	productID := chi.URLParam(r, "id")

	if err := inventoryRepo.DeleteProduct(r.Context(), tenantID, productID); err != nil {
		writeRepoError(w, err, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, DeleteResult{Success: true})
}

func productInput(req ProductRequest) repo.ProductInput {
	return repo.ProductInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Quantity:     req.Quantity,
		Price:        req.Price,
		ReorderLevel: req.ReorderLevel,
	}
}

func productPatch(req ProductUpdateRequest) repo.ProductPatch {
	return repo.ProductPatch{
		Name:         req.Name,
		SKU:          req.SKU,
		Quantity:     req.Quantity,
		Price:        req.Price,
		ReorderLevel: req.ReorderLevel,
	}
}
