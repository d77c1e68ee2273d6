package pos

import "fmt"

// Cart is the operator's in-progress selection of products and
// quantities. It holds at most one line per product ID, in the order
// the products were first added.
type Cart struct {
	lines []*CartLine
	index map[string]*CartLine
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		index: map[string]*CartLine{},
	}
}

// AddItem adds qty units of the product to the cart, merging into the
// existing line if one is present. Adds that would take the line past the
// product's available stock are rejected with ErrValidation.
func (c *Cart) AddItem(p Product, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if p.Stock == 0 {
		return fmt.Errorf("%w: %q is out of stock", ErrValidation, p.Name)
	}

	if line, ok := c.index[p.ID]; ok {
		if line.Quantity+qty > p.Stock {
			return fmt.Errorf("%w: only %d of %q in stock", ErrValidation, p.Stock, p.Name)
		}
		line.Quantity += qty
		return nil
	}

	if qty > p.Stock {
		return fmt.Errorf("%w: only %d of %q in stock", ErrValidation, p.Stock, p.Name)
	}
	line := &CartLine{Product: p, Quantity: qty}
	c.lines = append(c.lines, line)
	c.index[p.ID] = line
	return nil
}

// SetQuantity sets the absolute quantity of a line. A quantity of zero or
// less removes the line. Quantities above the stock observed when the
// product entered the cart are rejected.
func (c *Cart) SetQuantity(id string, qty int) error {
	line, ok := c.index[id]
	if !ok {
		if qty <= 0 {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	if qty <= 0 {
		c.RemoveItem(id)
		return nil
	}
	if qty > line.Stock {
		return fmt.Errorf("%w: only %d of %q in stock", ErrValidation, line.Stock, line.Name)
	}
	line.Quantity = qty
	return nil
}

// RemoveItem deletes the line for the given product ID. No-op if absent.
func (c *Cart) RemoveItem(id string) {
	if _, ok := c.index[id]; !ok {
		return
	}
	delete(c.index, id)
	for i, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = map[string]*CartLine{}
}

// Subtotal returns the sum of price times quantity over all lines.
// Always recomputed from the lines, never cached.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, line := range c.lines {
		sum += line.Subtotal()
	}
	return sum
}

// Lines returns copies of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}
