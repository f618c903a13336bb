package services

import (
	"sync"
	"time"

	"art-marketplace-platform/internal/models"
)

// CatalogService holds the set of listed items: the seed inventory plus
// anything sellers add during the session. The catalog only grows; there is
// no update or delete.
type CatalogService struct {
	mu       sync.RWMutex
	listings []*models.Listing
	auction  *models.Listing
}

// NewCatalogService creates a catalog seeded with the given listings. The
// auction listing is tracked separately from the browsable inventory.
func NewCatalogService(seed []*models.Listing, auction *models.Listing) *CatalogService {
	return &CatalogService{
		listings: seed,
		auction:  auction,
	}
}

// List returns the current catalog in insertion order
func (s *CatalogService) List() []*models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// GetByID returns the listing with the given id
func (s *CatalogService) GetByID(id int) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, listing := range s.listings {
		if listing.ID == id {
			return listing, nil
		}
	}

	return nil, models.ErrListingNotFound
}

// CreateListing validates the draft and appends a new listing with the next
// sequential id. The draft is rejected as a whole if any field fails; the
// catalog is left unchanged on failure.
func (s *CatalogService) CreateListing(draft *models.ListingDraft) (*models.Listing, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	price, err := draft.PriceCents()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing := &models.Listing{
		ID:          s.nextID(),
		Name:        draft.Name,
		Price:       price,
		Description: draft.Description,
		ImageURL:    draft.ImageURLOrPlaceholder(),
		ArtistName:  draft.ArtistName,
		CreatedAt:   time.Now(),
	}

	s.listings = append(s.listings, listing)
	return listing, nil
}

// AuctionListing returns the listing under the hammer
func (s *CatalogService) AuctionListing() *models.Listing {
	return s.auction
}

// nextID assigns max(existing ids)+1, or 1 for an empty catalog.
// Caller must hold the lock.
func (s *CatalogService) nextID() int {
	max := 0
	for _, listing := range s.listings {
		if listing.ID > max {
			max = listing.ID
		}
	}
	return max + 1
}
