package repositories

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dcode-github/dream_nest/config"
	"github.com/dcode-github/dream_nest/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListTripsByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Trip, error)
}

type bookingRepository struct {
	coll     *mongo.Collection
	listings ListingRepository
	users    UserRepository
}

func NewBookingRepository(db *mongo.Database, listings ListingRepository, users UserRepository) BookingRepository {
	return &bookingRepository{
		coll:     db.Collection(config.BookingCollection),
		listings: listings,
		users:    users,
	}
}

// Create persists a booking after checking, in order, that the listing
// exists, that a customer is given, and that customer and host resolve.
// Overlapping date ranges on the same listing are not detected.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	// Runs for every caller, even though the booking service has already
	// loaded the listing to price the stay.
	if _, err := r.listings.FindByID(ctx, booking.ListingID.Hex()); err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return &ReferenceError{Entity: "listing", ID: booking.ListingID.Hex()}
		}
		return err
	}

	if booking.CustomerID.IsZero() {
		return &ValidationError{Reason: ReasonMissingCustomer}
	}
	if err := r.checkUser(ctx, "customer", booking.CustomerID); err != nil {
		return err
	}
	if err := r.checkUser(ctx, "host", booking.HostID); err != nil {
		return err
	}

	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return persistenceError("insert booking", err)
	}
	log.Printf("Booking %s created for listing %s", booking.ID.Hex(), booking.ListingID.Hex())
	return nil
}

func (r *bookingRepository) checkUser(ctx context.Context, entity string, id primitive.ObjectID) error {
	exists, err := r.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &ReferenceError{Entity: entity, ID: id.Hex()}
	}
	return nil
}

func (r *bookingRepository) ListTripsByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Trip, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"customerId": customerID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         config.ListingCollection,
			"localField":   "listingId",
			"foreignField": "_id",
			"as":           "listing",
		}}},
		{{Key: "$unwind", Value: "$listing"}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, persistenceError("aggregate trips", err)
	}
	defer cursor.Close(ctx)

	trips := []models.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, persistenceError("decode trips", err)
	}
	return trips, nil
}
