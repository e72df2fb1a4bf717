package keyword

func (c *Collection) moveFocusHome() bool {
	if len(c.items) == 0 {
		c.focusIndex = 0
		return false
	}
	old := c.focusIndex
	c.Focus(0)
	return old != c.focusIndex
}

func (c *Collection) moveFocusEnd() bool {
	n := len(c.items)
	if n == 0 {
		c.focusIndex = 0
		return false
	}
	old := c.focusIndex
	c.Focus(n - 1)
	return old != c.focusIndex
}

// moveFocusBy shifts roving focus by delta, clamped to the list bounds.
func (c *Collection) moveFocusBy(delta int) bool {
	if len(c.items) == 0 {
		c.focusIndex = 0
		return false
	}
	old := c.focusIndex
	next := c.focusIndex + delta
	if next < 0 {
		next = 0
	}
	if next >= len(c.items) {
		next = len(c.items) - 1
	}
	c.Focus(next)
	return c.focusIndex != old
}
