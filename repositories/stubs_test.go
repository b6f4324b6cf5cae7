package repositories

import (
	"context"

	"github.com/dcode-github/dream_nest/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUsers struct {
	existing map[primitive.ObjectID]bool
	err      error
}

func newStubUsers(ids ...primitive.ObjectID) *stubUsers {
	s := &stubUsers{existing: make(map[primitive.ObjectID]bool)}
	for _, id := range ids {
		s.existing[id] = true
	}
	return s
}

func (s *stubUsers) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	s.existing[user.ID] = true
	return nil
}

func (s *stubUsers) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if !s.existing[id] {
		return nil, &NotFoundError{Entity: "user", ID: id.Hex()}
	}
	return &models.User{ID: id}, nil
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, &NotFoundError{Entity: "user", ID: email}
}

func (s *stubUsers) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.existing[id], nil
}

type stubListings struct {
	listings map[string]*models.Listing
	err      error
}

func (s *stubListings) Create(ctx context.Context, listing *models.Listing) error {
	listing.ID = primitive.NewObjectID()
	s.listings[listing.ID.Hex()] = listing
	return nil
}

func (s *stubListings) GetByID(ctx context.Context, id string) (*models.ListingDetails, error) {
	l, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ListingDetails{ID: l.ID, Price: l.Price}, nil
}

func (s *stubListings) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	l, ok := s.listings[id]
	if !ok {
		return nil, &NotFoundError{Entity: "listing", ID: id}
	}
	return l, nil
}
