package services

import (
	"sync"

	"art-marketplace-platform/internal/models"
)

// AuctionService holds the session's single live auction and serializes bid
// placement so the current price stays strictly increasing.
type AuctionService struct {
	mu    sync.Mutex
	state models.AuctionState
}

// NewAuctionService opens an auction for the given listing at its starting
// price
func NewAuctionService(listing *models.Listing) *AuctionService {
	return &AuctionService{
		state: models.NewAuctionState(listing),
	}
}

// State returns the current auction state
func (s *AuctionService) State() models.AuctionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// PlaceBid applies the bid transition. On success the new state is stored and
// returned; on failure the stored state is untouched and the error carries
// the price the bid was rejected against.
func (s *AuctionService) PlaceBid(raw string) (models.AuctionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.ApplyBid(raw)
	if err != nil {
		return s.state, err
	}

	s.state = next
	return s.state, nil
}
