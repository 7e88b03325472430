// Package cart holds the in-memory shopping cart for a single ordering
// session. A Cart is an explicitly owned value: whoever creates it passes it
// around, nothing reaches it through package state.
package cart

import (
	"github.com/google/uuid"

	"github.com/savoria/savoria/models"
)

// Line is one cart entry. There is at most one Line per menu item id and a
// Line never holds a quantity below one.
type Line struct {
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Cart keeps lines in the order their items were first added.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem puts item into the cart with quantity one, or bumps the existing
// line's quantity by one.
func (c *Cart) AddItem(item models.MenuItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// ChangeQuantity adds delta to the line for itemID. A line whose quantity
// drops to zero or below is removed, not kept at zero. Unknown ids are a
// no-op.
func (c *Cart) ChangeQuantity(itemID uuid.UUID, delta int) {
	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// RemoveItem drops the line for itemID regardless of its quantity.
func (c *Cart) RemoveItem(itemID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total is recomputed from the lines on every call so it can never go stale.
func (c *Cart) Total() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Item.Price * float64(l.Quantity)
	}
	return sum
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy; mutating it does not touch the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
