package models

import (
	"math"
	"strconv"
	"strings"
)

const (
	// ReserveBidderLabel is the sentinel leading-bidder label before any real
	// bid has been accepted.
	ReserveBidderLabel = "Current Reserve"

	// SessionBidderLabel identifies the acting session once its bid leads.
	SessionBidderLabel = "You"
)

// AuctionState tracks the single live auction: the listing under the hammer,
// the current price, and who is leading. The current price never decreases;
// each accepted bid strictly increases it.
type AuctionState struct {
	Listing       *Listing `json:"listing"`
	CurrentPrice  int64    `json:"current_price"` // Amount in cents
	LeadingBidder string   `json:"leading_bidder"`
}

// NewAuctionState opens an auction at the listing's starting price with the
// reserve sentinel as leading bidder.
func NewAuctionState(listing *Listing) AuctionState {
	return AuctionState{
		Listing:       listing,
		CurrentPrice:  listing.Price,
		LeadingBidder: ReserveBidderLabel,
	}
}

// ApplyBid parses raw as an amount in the main currency and returns the state
// after the bid. The bid is rejected with a *BidError unless it parses to a
// number strictly greater than the current price; a rejected bid returns the
// state unchanged.
func (s AuctionState) ApplyBid(raw string) (AuctionState, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return s, &BidError{Bid: raw, CurrentPrice: s.CurrentPrice, Reason: "bid amount is required"}
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return s, &BidError{Bid: raw, CurrentPrice: s.CurrentPrice, Reason: "bid must be a number"}
	}

	cents := int64(math.Round(amount * 100))
	if cents <= s.CurrentPrice {
		return s, &BidError{
			Bid:          raw,
			CurrentPrice: s.CurrentPrice,
			Reason:       "bid must be higher than the current price",
		}
	}

	s.CurrentPrice = cents
	s.LeadingBidder = SessionBidderLabel
	return s, nil
}

// HasBids returns true once a real bid leads the auction
func (s AuctionState) HasBids() bool {
	return s.LeadingBidder != ReserveBidderLabel
}

// CurrentPriceInCurrency returns the current price in the main currency
func (s AuctionState) CurrentPriceInCurrency() float64 {
	return float64(s.CurrentPrice) / 100.0
}
