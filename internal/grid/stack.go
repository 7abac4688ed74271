// Package grid implements item stacks and the fixed-size grids that hold
// them: the player's inventory, the hotbar, and crafter input grids.
package grid

import "ninedraft/internal/item"

// Stack pairs an item with a quantity in [1, item.MaxStack()].
type Stack struct {
	item     item.Item
	quantity int
}

// NewStack creates a stack of the given item and quantity.
func NewStack(it item.Item, quantity int) *Stack {
	return &Stack{item: it, quantity: quantity}
}

// Item returns the stacked item.
func (s *Stack) Item() item.Item { return s.item }

// Quantity returns the current quantity.
func (s *Stack) Quantity() int { return s.quantity }

// Space returns how many more units the stack can absorb.
func (s *Stack) Space() int { return s.item.MaxStack() - s.quantity }

// Empty reports whether the stack has been exhausted.
func (s *Stack) Empty() bool { return s.quantity <= 0 }

// Matches reports whether the other stack holds the same kind of item.
func (s *Stack) Matches(o *Stack) bool { return s.item.ID() == o.item.ID() }

// Add increases the quantity by n, capped at the item's stack limit.
// It returns the number of units that did not fit.
func (s *Stack) Add(n int) (leftover int) {
	space := s.Space()
	if n <= space {
		s.quantity += n
		return 0
	}
	s.quantity += space
	return n - space
}

// Subtract removes up to n units and returns how many were removed.
func (s *Stack) Subtract(n int) int {
	if n > s.quantity {
		n = s.quantity
	}
	s.quantity -= n
	return n
}

// AbsorbFrom moves as many units as fit from o into s. The stacks must hold
// matching items.
func (s *Stack) AbsorbFrom(o *Stack) {
	moved := o.quantity - s.Add(o.quantity)
	o.quantity -= moved
}

// Split removes n units from s and returns them as a new stack sharing the
// same item. Returns nil when n is not in [1, quantity].
func (s *Stack) Split(n int) *Stack {
	if n < 1 || n > s.quantity {
		return nil
	}
	s.quantity -= n
	return &Stack{item: s.item, quantity: n}
}
