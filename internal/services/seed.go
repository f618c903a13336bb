package services

import (
	"math/rand"
	"time"

	"art-marketplace-platform/internal/models"
)

// Seed price range for the gallery pieces, in cents ($1,000–$5,000). Gallery
// prices are randomized per process start, like the original storefront.
const (
	seedPriceMin = 100_000
	seedPriceMax = 500_000
)

// AuctionStartPrice is the masterpiece's starting price in cents ($15,000)
const AuctionStartPrice int64 = 1_500_000

type seedPiece struct {
	name        string
	description string
	imageURL    string
	artistName  string
}

var galleryPieces = []seedPiece{
	{
		name:        "Celestial Dreams",
		description: "An ethereal abstract piece exploring the cosmos through vibrant purples and golds. This masterpiece captures the infinite beauty of space.",
		imageURL:    "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=800&h=600&fit=crop",
		artistName:  "Luna Martinez",
	},
	{
		name:        "Urban Symphony",
		description: "A contemporary cityscape that blends architectural precision with artistic expression. The interplay of light and shadow creates a mesmerizing rhythm.",
		imageURL:    "https://images.unsplash.com/photo-1547826039-bfc35e0f1ea8?w=800&h=600&fit=crop",
		artistName:  "Marcus Chen",
	},
	{
		name:        "Ocean Reverie",
		description: "Fluid acrylic waves in deep teals and aquamarines that seem to move before your eyes. A tribute to the ocean's eternal dance.",
		imageURL:    "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=800&h=600&fit=crop",
		artistName:  "Sofia Ramirez",
	},
	{
		name:        "Golden Hour",
		description: "Warm amber and gold tones capture that magical moment when day transitions to night. A celebration of light and transformation.",
		imageURL:    "https://images.unsplash.com/photo-1549887534-1541e9326642?w=800&h=600&fit=crop",
		artistName:  "David Park",
	},
	{
		name:        "Violet Cascade",
		description: "Layers of rich purples and violets create a waterfall of color. This piece invites deep contemplation and inner peace.",
		imageURL:    "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=800&h=600&fit=crop",
		artistName:  "Isabella Torres",
	},
	{
		name:        "Crimson Passion",
		description: "Bold strokes of red and orange that pulse with energy and emotion. A powerful statement piece for any collection.",
		imageURL:    "https://images.unsplash.com/photo-1578301978018-3005759f48f7?w=800&h=600&fit=crop",
		artistName:  "Rafael Santos",
	},
}

// SeedListings builds the gallery seed inventory with sequential ids starting
// at 1 and randomized prices.
func SeedListings() []*models.Listing {
	now := time.Now()
	listings := make([]*models.Listing, 0, len(galleryPieces))

	for i, piece := range galleryPieces {
		listings = append(listings, &models.Listing{
			ID:          i + 1,
			Name:        piece.name,
			Price:       randomSeedPrice(),
			Description: piece.description,
			ImageURL:    piece.imageURL,
			ArtistName:  piece.artistName,
			CreatedAt:   now,
		})
	}

	return listings
}

// SeedAuctionListing builds the exclusive masterpiece offered at auction.
// It is kept out of the browsable catalog so its id never collides with
// seller-added listings.
func SeedAuctionListing() *models.Listing {
	return &models.Listing{
		ID:          999,
		Name:        "The Masterpiece Collection",
		Price:       AuctionStartPrice,
		Description: "An exclusive limited edition piece from our most celebrated artist. This rare work combines traditional techniques with modern innovation, creating a timeless masterpiece that will only increase in value. Only one available.",
		ImageURL:    "https://images.unsplash.com/photo-1536924940846-227afb31e2a5?w=800&h=600&fit=crop",
		ArtistName:  "Alessandro Fontana",
		CreatedAt:   time.Now(),
	}
}

func randomSeedPrice() int64 {
	return seedPriceMin + rand.Int63n(seedPriceMax-seedPriceMin+1)
}
