package models

// Cart represents a shopping cart owned by the active buyer session
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// CartLine represents one listing in the cart. It holds a live reference to
// the catalog listing, so the line price always reflects the catalog's
// current price rather than the price at add time.
type CartLine struct {
	Listing  *Listing `json:"listing"`
	Quantity int      `json:"quantity"`
}

// Subtotal returns price × quantity for this line in cents
func (l *CartLine) Subtotal() int64 {
	return l.Listing.Price * int64(l.Quantity)
}

// AddListing adds one unit of the listing to the cart. If a line for the
// listing already exists its quantity is incremented; otherwise a new line
// with quantity 1 is appended. There is no stock check.
func (c *Cart) AddListing(listing *Listing) {
	for i := range c.Lines {
		if c.Lines[i].Listing.ID == listing.ID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, CartLine{Listing: listing, Quantity: 1})
}

// AdjustQuantity applies delta to the line matching the listing id, clamping
// at zero. A line that reaches zero is removed entirely. Unknown ids are a
// no-op, not an error.
func (c *Cart) AdjustQuantity(listingID int, delta int) {
	for i := range c.Lines {
		if c.Lines[i].Listing.ID != listingID {
			continue
		}

		quantity := c.Lines[i].Quantity + delta
		if quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity = quantity
		}
		return
	}
}

// Find returns the line for the given listing id, or nil if absent
func (c *Cart) Find(listingID int) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].Listing.ID == listingID {
			return &c.Lines[i]
		}
	}
	return nil
}

// Total returns the cart total in cents; zero for an empty cart
func (c *Cart) Total() int64 {
	var total int64
	for i := range c.Lines {
		total += c.Lines[i].Subtotal()
	}
	return total
}

// ItemCount returns the number of distinct listings in the cart
func (c *Cart) ItemCount() int {
	return len(c.Lines)
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear empties all lines
func (c *Cart) Clear() {
	c.Lines = nil
}
