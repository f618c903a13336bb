package models

import "time"

// Order represents a completed purchase. Orders are immutable once appended
// to the ledger; the ledger itself is append-only.
type Order struct {
	ID        int         `json:"id"`
	Lines     []OrderLine `json:"lines"`
	Total     int64       `json:"total"` // Amount in cents
	CreatedAt time.Time   `json:"created_at"`
}

// OrderLine snapshots a listing at purchase time. Later catalog changes must
// not retroactively alter historical orders, so the line copies every field
// it renders instead of referencing the catalog.
type OrderLine struct {
	ListingID  int    `json:"listing_id"`
	Name       string `json:"name"`
	ArtistName string `json:"artist_name"`
	ImageURL   string `json:"image_url"`
	Price      int64  `json:"price"` // Unit price in cents at purchase time
	Quantity   int    `json:"quantity"`
	Subtotal   int64  `json:"subtotal"` // Price × quantity in cents
}

// NewOrderLine snapshots a listing into an order line
func NewOrderLine(listing *Listing, quantity int) OrderLine {
	return OrderLine{
		ListingID:  listing.ID,
		Name:       listing.Name,
		ArtistName: listing.ArtistName,
		ImageURL:   listing.ImageURL,
		Price:      listing.Price,
		Quantity:   quantity,
		Subtotal:   listing.Price * int64(quantity),
	}
}

// NewOrderFromCart snapshots every cart line into an order. The caller is
// responsible for id assignment and for rejecting an empty cart.
func NewOrderFromCart(id int, cart *Cart, createdAt time.Time) *Order {
	order := &Order{
		ID:        id,
		Lines:     make([]OrderLine, 0, len(cart.Lines)),
		CreatedAt: createdAt,
	}

	for i := range cart.Lines {
		line := NewOrderLine(cart.Lines[i].Listing, cart.Lines[i].Quantity)
		order.Lines = append(order.Lines, line)
		order.Total += line.Subtotal
	}

	return order
}

// NewSingleItemOrder builds a quantity-1 order for a single listing at its
// current price ("buy now").
func NewSingleItemOrder(id int, listing *Listing, createdAt time.Time) *Order {
	line := NewOrderLine(listing, 1)
	return &Order{
		ID:        id,
		Lines:     []OrderLine{line},
		Total:     line.Subtotal,
		CreatedAt: createdAt,
	}
}

// TotalInCurrency returns the order total in the main currency as a float
func (o *Order) TotalInCurrency() float64 {
	return float64(o.Total) / 100.0
}

// LineCount returns the number of lines in the order
func (o *Order) LineCount() int {
	return len(o.Lines)
}
