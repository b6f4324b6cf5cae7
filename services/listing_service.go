package services

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/dcode-github/dream_nest/cache"
	"github.com/dcode-github/dream_nest/events"
	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/repositories"
	"github.com/dcode-github/dream_nest/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingService interface {
	CreateListing(ctx context.Context, form models.ListingForm, photoPaths []string) (*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.ListingDetails, error)
	QuotePrice(ctx context.Context, id string, start, end time.Time) (*models.PriceQuote, error)
}

// PhotoSettings describes where uploaded photos live and how they are
// served.
type PhotoSettings struct {
	UploadRoot    string
	PublicBaseURL string
}

type listingService struct {
	repo      repositories.ListingRepository
	cache     cache.ListingCache
	publisher events.Publisher
	photos    PhotoSettings
}

func NewListingService(repo repositories.ListingRepository, listingCache cache.ListingCache, publisher events.Publisher, photos PhotoSettings) ListingService {
	return &listingService{
		repo:      repo,
		cache:     listingCache,
		publisher: publisher,
		photos:    photos,
	}
}

func (s *listingService) CreateListing(ctx context.Context, form models.ListingForm, photoPaths []string) (*models.Listing, error) {
	creator, err := primitive.ObjectIDFromHex(form.Creator)
	if err != nil {
		return nil, &repositories.ReferenceError{Entity: "creator", ID: form.Creator}
	}
	if err := validateStruct(form); err != nil {
		return nil, err
	}
	if math.IsInf(form.Price, 0) || math.IsNaN(form.Price) {
		return nil, &repositories.ValidationError{Reason: repositories.ReasonInvalidField, Detail: "Price must be a finite number"}
	}

	listing := &models.Listing{
		Creator:           creator,
		Category:          form.Category,
		Type:              form.Type,
		StreetAddress:     form.StreetAddress,
		AptSuite:          form.AptSuite,
		City:              form.City,
		Province:          form.Province,
		Country:           form.Country,
		GuestCount:        form.GuestCount,
		BedroomCount:      form.BedroomCount,
		BedCount:          form.BedCount,
		BathroomCount:     form.BathroomCount,
		Amenities:         form.Amenities,
		ListingPhotoPaths: utils.NormalizePhotoPaths(photoPaths, s.photos.UploadRoot),
		Title:             form.Title,
		Description:       form.Description,
		Highlight:         form.Highlight,
		HighlightDesc:     form.HighlightDesc,
		Price:             form.Price,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}

	event := events.NewEvent(events.ListingCreated, listing.ID.Hex(), map[string]interface{}{
		"creator": listing.Creator.Hex(),
		"price":   listing.Price,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s for %s: %v", event.Action, event.EntityID, err)
	}
	return listing, nil
}

func (s *listingService) GetListing(ctx context.Context, id string) (*models.ListingDetails, error) {
	if listing, ok := s.cache.Get(ctx, id); ok {
		return listing, nil
	}
	log.Printf("Cache Miss for listing: %s", id)

	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.ListingPhotoURLs = make([]string, 0, len(listing.ListingPhotoPaths))
	for _, ref := range listing.ListingPhotoPaths {
		listing.ListingPhotoURLs = append(listing.ListingPhotoURLs, utils.PhotoURL(s.photos.PublicBaseURL, ref))
	}

	s.cache.Set(ctx, listing)
	return listing, nil
}

// QuotePrice previews what a booking of the listing for [start, end] would
// cost, using the same calculation as booking creation.
func (s *listingService) QuotePrice(ctx context.Context, id string, start, end time.Time) (*models.PriceQuote, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	stay := CalculateStay(start, end, listing.Price)
	return &models.PriceQuote{
		ListingID:    listing.ID.Hex(),
		NightCount:   stay.NightCount,
		NightlyPrice: listing.Price,
		TotalPrice:   stay.TotalPrice,
	}, nil
}
