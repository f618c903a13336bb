package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// PlaceholderImageURL is used when a seller lists a piece without an image.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=800&h=600&fit=crop"

// Listing represents a piece of art offered in the catalog. Listings are
// immutable once created; the catalog only grows.
type Listing struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"` // Amount in cents
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	ArtistName  string    `json:"artist_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListingDraft represents the data a seller submits to list a new piece.
// Price arrives as the raw form value and is parsed during validation.
type ListingDraft struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ArtistName  string `json:"artist_name"`
}

// Validate validates the draft fields
func (d *ListingDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return NewValidationError("name", "art name is required")
	}

	if strings.TrimSpace(d.ArtistName) == "" {
		return NewValidationError("artist_name", "artist name is required")
	}

	if strings.TrimSpace(d.Description) == "" {
		return NewValidationError("description", "description is required")
	}

	if _, err := d.PriceCents(); err != nil {
		return err
	}

	return nil
}

// PriceCents parses the draft price into cents. The price must parse to a
// positive finite number.
func (d *ListingDraft) PriceCents() (int64, error) {
	raw := strings.TrimSpace(d.Price)
	if raw == "" {
		return 0, NewValidationError("price", "price is required")
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, NewValidationError("price", "price must be a number")
	}

	if price <= 0 {
		return 0, NewValidationError("price", "price must be greater than zero")
	}

	return int64(math.Round(price * 100)), nil
}

// ImageURLOrPlaceholder returns the draft image URL, falling back to the
// gallery placeholder when the seller left it blank.
func (d *ListingDraft) ImageURLOrPlaceholder() string {
	if strings.TrimSpace(d.ImageURL) == "" {
		return PlaceholderImageURL
	}
	return strings.TrimSpace(d.ImageURL)
}

// PriceInCurrency returns the listing price in the main currency as a float
func (l *Listing) PriceInCurrency() float64 {
	return float64(l.Price) / 100.0
}
