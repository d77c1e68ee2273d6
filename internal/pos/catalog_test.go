package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAddProduct(t *testing.T) {
	c := NewCatalog()

	p, err := c.AddProduct(ProductSpec{Name: "Es Teh Manis", Price: 5000, Category: "Minuman", Stock: 100})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID, "expected a generated product ID")
	assert.Equal(t, int64(5000), p.Price)
	assert.Equal(t, 1, c.Len())
}

func TestCatalogAddProductValidation(t *testing.T) {
	c := NewCatalog()

	_, err := c.AddProduct(ProductSpec{Name: "", Price: 5000})
	assert.ErrorIs(t, err, ErrValidation, "empty name must be rejected")

	_, err = c.AddProduct(ProductSpec{Name: "Kopi", Price: -1})
	assert.ErrorIs(t, err, ErrValidation, "negative price must be rejected")

	_, err = c.AddProduct(ProductSpec{Name: "Kopi", Price: 1000, Stock: -5})
	assert.ErrorIs(t, err, ErrValidation, "negative stock must be rejected")

	assert.Equal(t, 0, c.Len())
}

func TestCatalogUpdateProduct(t *testing.T) {
	c := NewCatalog()
	p, err := c.AddProduct(ProductSpec{Name: "Kopi Susu", Price: 18000, Category: "Minuman", Stock: 40})
	require.NoError(t, err)

	newPrice := int64(20000)
	updated, err := c.UpdateProduct(p.ID, ProductPatch{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), updated.Price)
	assert.Equal(t, "Kopi Susu", updated.Name, "unpatched fields must be kept")

	_, err = c.UpdateProduct("missing", ProductPatch{Price: &newPrice})
	assert.ErrorIs(t, err, ErrProductNotFound)

	empty := ""
	_, err = c.UpdateProduct(p.ID, ProductPatch{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogRemoveProduct(t *testing.T) {
	c := NewCatalog()
	p, err := c.AddProduct(ProductSpec{Name: "Kerupuk", Price: 3000, Stock: 200})
	require.NoError(t, err)

	require.NoError(t, c.RemoveProduct(p.ID))
	_, err = c.Get(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, c.RemoveProduct(p.ID), ErrProductNotFound)
}

func TestCatalogDecrementStockClampsAtZero(t *testing.T) {
	c := NewCatalog()
	p, err := c.AddProduct(ProductSpec{Name: "Ayam Bakar", Price: 35000, Stock: 2})
	require.NoError(t, err)

	require.NoError(t, c.DecrementStock(p.ID, 5))
	got, err := c.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock, "stock must floor at zero, never go negative")

	assert.ErrorIs(t, c.DecrementStock(p.ID, -1), ErrValidation)
	assert.ErrorIs(t, c.DecrementStock("missing", 1), ErrProductNotFound)
}

func TestCatalogProductsByCategory(t *testing.T) {
	c := NewCatalog()
	_, err := c.AddProduct(ProductSpec{Name: "Nasi Goreng", Price: 25000, Category: "Makanan", Stock: 50})
	require.NoError(t, err)
	_, err = c.AddProduct(ProductSpec{Name: "Es Teh", Price: 5000, Category: "Minuman", Stock: 100})
	require.NoError(t, err)

	assert.Len(t, c.Products(""), 2)

	minuman := c.Products("Minuman")
	require.Len(t, minuman, 1)
	assert.Equal(t, "Es Teh", minuman[0].Name)
}
