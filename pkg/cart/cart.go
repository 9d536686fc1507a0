package cart

import (
	"sync"

	"github.com/superma0035/zapdine/pkg/types"
)

// Cart holds the lines of one ordering page in the order items were first added
type Cart struct {
	mu    sync.RWMutex
	lines []types.CartLine
}

func New() *Cart {
	return &Cart{}
}

// adds one of item, creating the line at quantity 1
func (c *Cart) Add(item types.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, types.CartLine{Item: item, Quantity: 1})
}

// sets the quantity of an existing line, zero removes it
func (c *Cart) UpdateQuantity(itemID string, quantity int) error {
	if quantity < 0 {
		return types.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(itemID)
	if i < 0 {
		return types.ErrItemNotFound
	}
	if quantity == 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	c.lines[i].Quantity = quantity
	return nil
}

// takes one of item out, dropping the line when it reaches zero
func (c *Cart) Remove(itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(itemID)
	if i < 0 {
		return types.ErrItemNotFound
	}
	if c.lines[i].Quantity <= 1 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	c.lines[i].Quantity--
	return nil
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// copy of the current lines
func (c *Cart) Lines() []types.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]types.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() types.Amount {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total types.Amount
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// number of units across all lines
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines) == 0
}

func (c *Cart) index(itemID string) int {
	for i, l := range c.lines {
		if l.Item.ID == itemID {
			return i
		}
	}
	return -1
}
