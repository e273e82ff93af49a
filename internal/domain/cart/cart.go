package cart

// Line is one row of the cart: a product/variant and its quantity, plus the
// presentation fields frozen at insertion time.
type Line struct {
	key       LineKey
	quantity  int
	unitPrice Money
	display   Display
}

func NewLine(productID, variant string, quantity int, unitPrice Money, display Display) (Line, error) {
	if productID == "" {
		return Line{}, ErrMissingProduct
	}
	if quantity < 1 {
		quantity = 1
	}
	return Line{
		key:       NewLineKey(productID, variant),
		quantity:  quantity,
		unitPrice: unitPrice,
		display:   display,
	}, nil
}

func (l Line) Key() LineKey     { return l.key }
func (l Line) Quantity() int    { return l.quantity }
func (l Line) UnitPrice() Money { return l.unitPrice }
func (l Line) Display() Display { return l.display }

func (l Line) Total() Money {
	return l.unitPrice.Mul(l.quantity)
}

// Cart is the in-memory cart aggregate. All transitions are pure in-memory
// mutations that recompute the subtotal before returning, so an observer never
// sees lines and subtotal disagree. Persistence is the caller's concern.
type Cart struct {
	lines    []Line
	subtotal Money
}

func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart rebuilds an aggregate from persisted lines (rehydration).
// The subtotal is always recomputed from the lines, never trusted from the
// snapshot.
func RestoreCart(lines []Line) *Cart {
	c := &Cart{lines: lines}
	c.recompute()
	return c
}

func (c *Cart) Lines() []Line   { return c.lines }
func (c *Cart) Subtotal() Money { return c.subtotal }
func (c *Cart) IsEmpty() bool   { return len(c.lines) == 0 }

// AddItem merges the line into an existing one with the same key by summing
// quantities, or appends it. Display fields of an existing line are kept;
// the first insertion wins.
func (c *Cart) AddItem(line Line) {
	defer c.recompute()
	for i := range c.lines {
		if c.lines[i].key == line.key {
			c.lines[i].quantity += line.quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// RemoveItem drops the line with the given key. Removing an absent line is a
// no-op, not an error.
func (c *Cart) RemoveItem(key LineKey) {
	defer c.recompute()
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.key != key {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// UpdateQuantity overwrites (never sums) the quantity of an existing line.
// A quantity of zero or less removes the line, mirroring the storefront's
// quantity stepper reaching zero.
func (c *Cart) UpdateQuantity(key LineKey, quantity int) error {
	if quantity <= 0 {
		c.RemoveItem(key)
		return nil
	}
	defer c.recompute()
	for i := range c.lines {
		if c.lines[i].key == key {
			c.lines[i].quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) Clear() {
	c.lines = nil
	c.subtotal = Money{}
}

func (c *Cart) recompute() {
	total := Money{}
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	c.subtotal = total
}
