package services

import (
	"sync"

	"art-marketplace-platform/internal/models"
)

// CartService holds one cart per active session. Carts live only as long as
// the session: checkout and logout both clear them wholesale.
type CartService struct {
	mu      sync.Mutex
	catalog CatalogServiceInterface
	carts   map[string]*models.Cart
}

// NewCartService creates a new cart service backed by the given catalog
func NewCartService(catalog CatalogServiceInterface) *CartService {
	return &CartService{
		catalog: catalog,
		carts:   make(map[string]*models.Cart),
	}
}

// Get returns the session's cart, creating an empty one on first use
func (s *CartService) Get(sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked(sessionID)
}

// AddItem adds one unit of the listing to the session's cart. The cart line
// keeps a live reference to the catalog listing.
func (s *CartService) AddItem(sessionID string, listingID int) (*models.Cart, error) {
	listing, err := s.catalog.GetByID(listingID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(sessionID)
	cart.AddListing(listing)
	return cart, nil
}

// AdjustQuantity applies delta to the matching cart line; decrementing to
// zero removes the line. Unknown listing ids are a no-op.
func (s *CartService) AdjustQuantity(sessionID string, listingID int, delta int) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(sessionID)
	cart.AdjustQuantity(listingID, delta)
	return cart
}

// Clear empties the session's cart
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartLocked(sessionID).Clear()
}

// cartLocked returns the session's cart. Caller must hold the lock.
func (s *CartService) cartLocked(sessionID string) *models.Cart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &models.Cart{}
		s.carts[sessionID] = cart
	}
	return cart
}
