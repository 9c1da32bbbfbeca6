package domain

// CartLine is one cart entry: a product, a quantity and the attribute
// choices made on the detail page. ProductID is not re-validated against
// the catalog after creation.
type CartLine struct {
	ProductID          string            `json:"productId"`
	Name               string            `json:"name"`
	Price              float64           `json:"price"`
	Quantity           int               `json:"quantity"`
	Image              string            `json:"image"`
	SelectedAttributes map[string]string `json:"selectedAttributes"`
}

type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add appends the line as-is. A line with an already present productId is
// appended as a second line, not merged into the existing one.
func (c *Cart) Add(line CartLine) {
	c.Lines = append(c.Lines, line)
}

// UpdateQuantity replaces the quantity of the line matching productID.
// An absent productID is a no-op: no line is created. No lower bound is
// enforced here, callers clamp at the call site.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line matching productID, leaving the cart unchanged
// when no line matches.
func (c *Cart) Remove(productID string) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

func (c *Cart) Find(productID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count is the sum of quantities, shown as the cart badge.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
