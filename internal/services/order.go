package services

import (
	"fmt"
	"sync"
	"time"

	"art-marketplace-platform/internal/models"
)

// OrderService keeps the append-only order ledger. Orders are created from a
// single-listing "buy now" or from checking out the entire cart; once
// appended they are never updated or removed.
type OrderService struct {
	mu             sync.Mutex
	catalog        CatalogServiceInterface
	carts          CartServiceInterface
	paymentService PaymentService
	orders         []*models.Order
}

// NewOrderService creates a new order service
func NewOrderService(catalog CatalogServiceInterface, carts CartServiceInterface, paymentService PaymentService) *OrderService {
	return &OrderService{
		catalog:        catalog,
		carts:          carts,
		paymentService: paymentService,
	}
}

// BuyNow places a one-line order for the listing at its current price
func (s *OrderService) BuyNow(listingID int) (*models.Order, error) {
	listing, err := s.catalog.GetByID(listingID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.NewSingleItemOrder(s.nextIDLocked(), listing, time.Now())

	if _, err := s.paymentService.ProcessPayment(order.Total, PaymentBillingInfo{}); err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	s.orders = append(s.orders, order)
	return order, nil
}

// Checkout snapshots the session's cart into a new order, appends it to the
// ledger, and clears the cart. The whole composition runs under the ledger
// lock so no caller can observe an appended order alongside a stale cart, or
// a cleared cart without its order. An empty cart fails with ErrEmptyCart
// and leaves the ledger unchanged.
func (s *OrderService) Checkout(sessionID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts.Get(sessionID)
	if cart.IsEmpty() {
		return nil, models.ErrEmptyCart
	}

	order := models.NewOrderFromCart(s.nextIDLocked(), cart, time.Now())

	if _, err := s.paymentService.ProcessPayment(order.Total, PaymentBillingInfo{}); err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	s.orders = append(s.orders, order)
	s.carts.Clear(sessionID)
	return order, nil
}

// History returns all orders in insertion order, oldest first
func (s *OrderService) History() []*models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Count returns the ledger length
func (s *OrderService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// nextIDLocked assigns the next sequential order id. Caller must hold the lock.
func (s *OrderService) nextIDLocked() int {
	return len(s.orders) + 1
}
