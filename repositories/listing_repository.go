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

type ListingRepository interface {
	// Create checks the creator reference and the photo list, then persists
	// the listing and assigns its id.
	Create(ctx context.Context, listing *models.Listing) error
	// GetByID returns the listing with its creator expanded.
	GetByID(ctx context.Context, id string) (*models.ListingDetails, error)
	FindByID(ctx context.Context, id string) (*models.Listing, error)
}

type listingRepository struct {
	coll  *mongo.Collection
	users UserRepository
}

func NewListingRepository(db *mongo.Database, users UserRepository) ListingRepository {
	return &listingRepository{
		coll:  db.Collection(config.ListingCollection),
		users: users,
	}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	exists, err := r.users.Exists(ctx, listing.Creator)
	if err != nil {
		return err
	}
	if !exists {
		return &ReferenceError{Entity: "creator", ID: listing.Creator.Hex()}
	}

	if len(listing.ListingPhotoPaths) == 0 {
		return &ValidationError{Reason: ReasonNoPhotos}
	}

	now := time.Now().UTC()
	listing.ID = primitive.NewObjectID()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if listing.Amenities == nil {
		listing.Amenities = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return persistenceError("insert listing", err)
	}
	log.Printf("Listing %s created by %s", listing.ID.Hex(), listing.Creator.Hex())
	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*models.ListingDetails, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &NotFoundError{Entity: "listing", ID: id}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": objID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         config.UserCollection,
			"localField":   "creator",
			"foreignField": "_id",
			"as":           "creator",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$creator",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$limit", Value: 1}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, persistenceError("aggregate listing", err)
	}
	defer cursor.Close(ctx)

	var results []models.ListingDetails
	if err := cursor.All(ctx, &results); err != nil {
		return nil, persistenceError("decode listing", err)
	}
	if len(results) == 0 {
		return nil, &NotFoundError{Entity: "listing", ID: id}
	}
	return &results[0], nil
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &NotFoundError{Entity: "listing", ID: id}
	}

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&listing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Entity: "listing", ID: id}
		}
		return nil, persistenceError("find listing", err)
	}
	return &listing, nil
}
