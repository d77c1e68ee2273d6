package pos

import (
	"fmt"

	"github.com/google/uuid"
)

// Catalog is the authoritative set of sellable products and their stock
// levels. Stock is mutated only here; Cart and Checkout work on copies.
type Catalog struct {
	products []*Product
	index    map[string]*Product
}

// ProductSpec carries the fields for creating a new product.
type ProductSpec struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Image    string `json:"image"`
}

// ProductPatch carries optional field updates for an existing product.
// Nil fields are left unchanged.
type ProductPatch struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	Category *string `json:"category"`
	Stock    *int    `json:"stock"`
	Image    *string `json:"image"`
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		index: map[string]*Product{},
	}
}

// AddProduct creates a product with a freshly generated ID.
// Returns ErrValidation if the name is empty or price/stock are negative.
func (c *Catalog) AddProduct(spec ProductSpec) (Product, error) {
	if spec.Name == "" {
		return Product{}, fmt.Errorf("%w: product name must not be empty", ErrValidation)
	}
	if spec.Price < 0 {
		return Product{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if spec.Stock < 0 {
		return Product{}, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	p := &Product{
		ID:       uuid.NewString(),
		Name:     spec.Name,
		Price:    spec.Price,
		Category: spec.Category,
		Stock:    spec.Stock,
		Image:    spec.Image,
	}
	c.products = append(c.products, p)
	c.index[p.ID] = p
	return *p, nil
}

// UpdateProduct merges the non-nil patch fields into an existing product.
// Returns ErrProductNotFound if the ID is absent, ErrValidation if a
// patched value is malformed.
func (c *Catalog) UpdateProduct(id string, patch ProductPatch) (Product, error) {
	p, ok := c.index[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	if patch.Name != nil && *patch.Name == "" {
		return Product{}, fmt.Errorf("%w: product name must not be empty", ErrValidation)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return Product{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return Product{}, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	return *p, nil
}

// RemoveProduct deletes a product from the catalog. Past transactions are
// untouched since they hold snapshots, not references.
func (c *Catalog) RemoveProduct(id string) error {
	if _, ok := c.index[id]; !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	delete(c.index, id)
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			break
		}
	}
	return nil
}

// DecrementStock reduces a product's stock by qty, floored at zero.
func (c *Catalog) DecrementStock(id string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: decrement quantity must not be negative", ErrValidation)
	}
	p, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	p.Stock -= qty
	if p.Stock < 0 {
		p.Stock = 0
	}
	return nil
}

// Get returns a copy of the product with the given ID.
func (c *Catalog) Get(id string) (Product, error) {
	p, ok := c.index[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return *p, nil
}

// Products returns copies of all products in insertion order, optionally
// filtered by category. An empty category returns everything.
func (c *Catalog) Products(category string) []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Replace swaps the catalog contents for the given snapshot. Used when
// loading persisted state.
func (c *Catalog) Replace(products []Product) {
	c.products = make([]*Product, 0, len(products))
	c.index = make(map[string]*Product, len(products))
	for i := range products {
		p := products[i]
		c.products = append(c.products, &p)
		c.index[p.ID] = &p
	}
}
