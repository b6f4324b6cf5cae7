package services

import (
	"context"
	"errors"
	"log"

	"github.com/dcode-github/dream_nest/events"
	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ListTrips(ctx context.Context, customerID string) ([]models.Trip, error)
}

type bookingService struct {
	bookings  repositories.BookingRepository
	listings  repositories.ListingRepository
	publisher events.Publisher
}

func NewBookingService(bookings repositories.BookingRepository, listings repositories.ListingRepository, publisher events.Publisher) BookingService {
	return &bookingService{
		bookings:  bookings,
		listings:  listings,
		publisher: publisher,
	}
}

// CreateBooking re-reads the listing and takes the host and nightly price
// from it. Host and total price sent by the caller are only compared and
// logged. Overlapping bookings of the same listing are accepted.
func (s *bookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	listingID, err := primitive.ObjectIDFromHex(req.ListingID)
	if err != nil {
		return nil, &repositories.ReferenceError{Entity: "listing", ID: req.ListingID}
	}

	listing, err := s.listings.FindByID(ctx, req.ListingID)
	if err != nil {
		var notFound *repositories.NotFoundError
		if errors.As(err, &notFound) {
			return nil, &repositories.ReferenceError{Entity: "listing", ID: req.ListingID}
		}
		return nil, err
	}

	var customerID primitive.ObjectID
	if req.CustomerID != "" {
		customerID, err = primitive.ObjectIDFromHex(req.CustomerID)
		if err != nil {
			return nil, &repositories.ReferenceError{Entity: "customer", ID: req.CustomerID}
		}
	}

	if err := validateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	if req.HostID != "" && req.HostID != listing.Creator.Hex() {
		log.Printf("Booking for listing %s sent hostId %s, using listing creator %s", req.ListingID, req.HostID, listing.Creator.Hex())
	}

	stay := CalculateStay(req.StartDate, req.EndDate, listing.Price)
	if req.TotalPrice != 0 && req.TotalPrice != stay.TotalPrice {
		log.Printf("Booking for listing %s sent totalPrice %.2f, computed %.2f", req.ListingID, req.TotalPrice, stay.TotalPrice)
	}

	booking := &models.Booking{
		CustomerID: customerID,
		ListingID:  listingID,
		HostID:     listing.Creator,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		NightCount: stay.NightCount,
		TotalPrice: stay.TotalPrice,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	event := events.NewEvent(events.BookingCreated, booking.ID.Hex(), map[string]interface{}{
		"listingId":  booking.ListingID.Hex(),
		"customerId": booking.CustomerID.Hex(),
		"hostId":     booking.HostID.Hex(),
		"totalPrice": booking.TotalPrice,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s for %s: %v", event.Action, event.EntityID, err)
	}
	return booking, nil
}

func (s *bookingService) ListTrips(ctx context.Context, customerID string) ([]models.Trip, error) {
	objID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, &repositories.ValidationError{Reason: repositories.ReasonInvalidField, Detail: "invalid customer id"}
	}
	return s.bookings.ListTripsByCustomer(ctx, objID)
}
