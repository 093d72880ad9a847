package repo

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pventura/stockroom/internal/kv"
)

func newTestRepo() *InventoryRepository {
	return NewInventoryRepository(kv.NewMemoryStore())
}

func widget() ProductInput {
	return ProductInput{Name: "Widget", SKU: "W-1", Quantity: 10, Price: 5.0, ReorderLevel: 3}
}

func TestCreateProduct_RoundTrip(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	created, err := r.CreateProduct(ctx, "tenant-a", widget())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, strings.HasPrefix(created.ID, "user:tenant-a:product:"))
	assert.Equal(t, "tenant-a", created.OwnerID)
	assert.NotEmpty(t, created.CreatedAt)

	products, err := r.ListProducts(ctx, "tenant-a")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "W-1", products[0].SKU)
	assert.Equal(t, 10, products[0].Quantity)
	assert.Equal(t, 5.0, products[0].Price)
	assert.Equal(t, 3, products[0].ReorderLevel)
}

func TestListProducts_EmptyTenant(t *testing.T) {
	r := newTestRepo()

	products, err := r.ListProducts(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateProduct_Validation(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	tests := []struct {
		name   string
		input  ProductInput
		fields []string
	}{
		{"empty name", ProductInput{SKU: "S", Quantity: 1, Price: 1}, []string{"name"}},
		{"empty sku", ProductInput{Name: "N", Quantity: 1, Price: 1}, []string{"sku"}},
		{"whitespace name", ProductInput{Name: "   ", SKU: "S", Price: 1}, []string{"name"}},
		{"negative quantity", ProductInput{Name: "N", SKU: "S", Quantity: -1, Price: 1}, []string{"quantity"}},
		{"negative price", ProductInput{Name: "N", SKU: "S", Quantity: 1, Price: -0.01}, []string{"price"}},
		{"negative reorder level", ProductInput{Name: "N", SKU: "S", Quantity: 1, Price: 1, ReorderLevel: -2}, []string{"reorderLevel"}},
		{"everything wrong", ProductInput{Quantity: -1, Price: -1, ReorderLevel: -1}, []string{"name", "sku", "quantity", "price", "reorderLevel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.CreateProduct(ctx, "t", tt.input)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)

			var got []string
			for _, fe := range verrs {
				got = append(got, fe.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestUpdateProduct_PreservesImmutables(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	created, err := r.CreateProduct(ctx, "tenant-a", widget())
	require.NoError(t, err)

	price := 9.99
	updated, err := r.UpdateProduct(ctx, "tenant-a", created.ID, ProductPatch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.OwnerID, updated.OwnerID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 9.99, updated.Price)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Quantity, updated.Quantity)
}

func TestUpdateProduct_RevalidatesMergedRecord(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	created, err := r.CreateProduct(ctx, "tenant-a", widget())
	require.NoError(t, err)

	empty := ""
	_, err = r.UpdateProduct(ctx, "tenant-a", created.ID, ProductPatch{Name: &empty})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	// Stored record must be untouched after a rejected update.
	products, err := r.ListProducts(ctx, "tenant-a")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	r := newTestRepo()

	name := "X"
	_, err := r.UpdateProduct(context.Background(), "tenant-a", "user:tenant-a:product:missing", ProductPatch{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAdjustStock_ClampsAtZero(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	created, err := r.CreateProduct(ctx, "tenant-a", widget())
	require.NoError(t, err)

	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"restock", 5, 15},
		{"sale", -10, 5},
		{"oversell clamps to zero", -100, 0},
		{"restock from zero", 7, 7},
		{"zero delta", 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.AdjustStock(ctx, "tenant-a", created.ID, tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Quantity)
			assert.GreaterOrEqual(t, p.Quantity, 0)
		})
	}
}

func TestAdjustStock_NotFound(t *testing.T) {
	r := newTestRepo()

	_, err := r.AdjustStock(context.Background(), "tenant-a", "user:tenant-a:product:missing", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

// Concurrent adjustments to the same product are last-writer-wins: one
// of the two deltas may be lost, but the quantity must stay non-negative
// and equal to one of the serializable outcomes.
func TestAdjustStock_ConcurrentLastWriterWins(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	created, err := r.CreateProduct(ctx, "tenant-a", widget())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, delta := range []int{-4, -3} {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			_, err := r.AdjustStock(ctx, "tenant-a", created.ID, d)
			assert.NoError(t, err)
		}(delta)
	}
	wg.Wait()

	products, err := r.ListProducts(ctx, "tenant-a")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Contains(t, []int{3, 6, 7}, products[0].Quantity)
	assert.GreaterOrEqual(t, products[0].Quantity, 0)
}

func TestDeleteProduct(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	created, err := r.CreateProduct(ctx, "tenant-a", widget())
	require.NoError(t, err)

	require.NoError(t, r.DeleteProduct(ctx, "tenant-a", created.ID))

	products, err := r.ListProducts(ctx, "tenant-a")
	require.NoError(t, err)
	assert.Empty(t, products)

	// Deleting again is a not-found, not a silent success.
	assert.ErrorIs(t, r.DeleteProduct(ctx, "tenant-a", created.ID), ErrProductNotFound)
}

func TestTenantIsolation(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	created, err := r.CreateProduct(ctx, "tenant-a", widget())
	require.NoError(t, err)

	t.Run("list", func(t *testing.T) {
		products, err := r.ListProducts(ctx, "tenant-b")
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("update", func(t *testing.T) {
		name := "Hijacked"
		_, err := r.UpdateProduct(ctx, "tenant-b", created.ID, ProductPatch{Name: &name})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("adjust", func(t *testing.T) {
		_, err := r.AdjustStock(ctx, "tenant-b", created.ID, -1)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		assert.ErrorIs(t, r.DeleteProduct(ctx, "tenant-b", created.ID), ErrProductNotFound)
	})

	// The record itself must be untouched by the foreign attempts.
	products, err := r.ListProducts(ctx, "tenant-a")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 10, products[0].Quantity)
}

func TestLowStockClassification(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	in := widget()
	in.Quantity = 3 // equal to reorder level
	created, err := r.CreateProduct(ctx, "tenant-a", in)
	require.NoError(t, err)
	assert.True(t, created.LowStock())

	p, err := r.AdjustStock(ctx, "tenant-a", created.ID, 1)
	require.NoError(t, err)
	assert.False(t, p.LowStock(), "reorderLevel+1 must not be low stock")
}
