package session

// CartLine is one pending selection: an item, how many, and an
// optional free-text note for the kitchen.
type CartLine struct {
	ItemID    uint
	Name      string
	UnitPrice float64
	Quantity  int
	Note      string
}

// Subtotal returns quantity times unit price for the line.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is the session-scoped list of pending selections. It lives from
// session start until the order is confirmed or explicitly cleared.
// Cart is not safe for concurrent use; the owning Session serializes
// access.
type Cart struct {
	lines []CartLine
}

// Add puts an item in the cart. A line with the same item and note is
// merged by bumping its quantity instead of duplicating the line.
func (c *Cart) Add(itemID uint, name string, unitPrice float64, quantity int, note string) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID && c.lines[i].Note == note {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ItemID:    itemID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Note:      note,
	})
}

// UpdateQuantity sets the quantity of the line at index. A quantity of
// zero or less removes the line.
func (c *Cart) UpdateQuantity(index, quantity int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	if quantity <= 0 {
		c.Remove(index)
		return
	}
	c.lines[index].Quantity = quantity
}

// Remove drops the line at index.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total returns the running total over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
