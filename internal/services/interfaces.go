package services

import (
	"time"

	"art-marketplace-platform/internal/models"
)

// CatalogServiceInterface defines the interface for catalog services
type CatalogServiceInterface interface {
	List() []*models.Listing
	GetByID(id int) (*models.Listing, error)
	CreateListing(draft *models.ListingDraft) (*models.Listing, error)
	AuctionListing() *models.Listing
}

// CartServiceInterface defines the interface for cart services
type CartServiceInterface interface {
	Get(sessionID string) *models.Cart
	AddItem(sessionID string, listingID int) (*models.Cart, error)
	AdjustQuantity(sessionID string, listingID int, delta int) *models.Cart
	Clear(sessionID string)
}

// OrderServiceInterface defines the interface for order services
type OrderServiceInterface interface {
	BuyNow(listingID int) (*models.Order, error)
	Checkout(sessionID string) (*models.Order, error)
	History() []*models.Order
}

// AuctionServiceInterface defines the interface for auction services
type AuctionServiceInterface interface {
	State() models.AuctionState
	PlaceBid(raw string) (models.AuctionState, error)
}

// AuthServiceInterface defines the interface for session services
type AuthServiceInterface interface {
	Login(req *LoginRequest) (*AuthResponse, error)
	ValidateSession(sessionID string) (*models.User, error)
	Logout(sessionID string) error
}

// PaymentService defines the interface for payment processing
type PaymentService interface {
	ProcessPayment(amount int64, billingInfo PaymentBillingInfo) (*PaymentResult, error)
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

// AuthResponse represents the response after a successful login
type AuthResponse struct {
	User      *models.User `json:"user"`
	SessionID string       `json:"session_id"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// PaymentBillingInfo carries the billing identity for a payment
type PaymentBillingInfo struct {
	Email string
	Name  string
}

// PaymentResult represents the outcome of a processed payment
type PaymentResult struct {
	PaymentID     string
	Status        string
	Amount        int64
	TransactionID string
	ProcessedAt   time.Time
}
