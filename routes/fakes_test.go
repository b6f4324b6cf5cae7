package routes

import (
	"context"
	"sync"

	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memStore struct {
	mu       sync.Mutex
	users    map[primitive.ObjectID]*models.User
	listings map[primitive.ObjectID]*models.Listing
	bookings []*models.Booking
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[primitive.ObjectID]*models.User),
		listings: make(map[primitive.ObjectID]*models.Listing),
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	r.s.users[user.ID] = user
	return nil
}

func (r memUsers) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, &repositories.NotFoundError{Entity: "user", ID: id.Hex()}
}

func (r memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, &repositories.NotFoundError{Entity: "user", ID: email}
}

func (r memUsers) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.users[id]
	return ok, nil
}

type memListings struct{ s *memStore }

func (r memListings) Create(ctx context.Context, listing *models.Listing) error {
	if ok, _ := (memUsers{r.s}).Exists(ctx, listing.Creator); !ok {
		return &repositories.ReferenceError{Entity: "creator", ID: listing.Creator.Hex()}
	}
	if len(listing.ListingPhotoPaths) == 0 {
		return &repositories.ValidationError{Reason: repositories.ReasonNoPhotos}
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	listing.ID = primitive.NewObjectID()
	r.s.listings[listing.ID] = listing
	return nil
}

func (r memListings) GetByID(ctx context.Context, id string) (*models.ListingDetails, error) {
	l, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	details := &models.ListingDetails{
		ID:                l.ID,
		Title:             l.Title,
		City:              l.City,
		Amenities:         l.Amenities,
		ListingPhotoPaths: l.ListingPhotoPaths,
		Price:             l.Price,
	}
	if u, ok := r.s.users[l.Creator]; ok {
		details.Creator = *u
	}
	return details, nil
}

func (r memListings) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &repositories.NotFoundError{Entity: "listing", ID: id}
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.listings[objID]; ok {
		return l, nil
	}
	return nil, &repositories.NotFoundError{Entity: "listing", ID: id}
}

type memBookings struct{ s *memStore }

func (r memBookings) Create(ctx context.Context, booking *models.Booking) error {
	if _, err := (memListings{r.s}).FindByID(ctx, booking.ListingID.Hex()); err != nil {
		return &repositories.ReferenceError{Entity: "listing", ID: booking.ListingID.Hex()}
	}
	if booking.CustomerID.IsZero() {
		return &repositories.ValidationError{Reason: repositories.ReasonMissingCustomer}
	}
	users := memUsers{r.s}
	if ok, _ := users.Exists(ctx, booking.CustomerID); !ok {
		return &repositories.ReferenceError{Entity: "customer", ID: booking.CustomerID.Hex()}
	}
	if ok, _ := users.Exists(ctx, booking.HostID); !ok {
		return &repositories.ReferenceError{Entity: "host", ID: booking.HostID.Hex()}
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	booking.ID = primitive.NewObjectID()
	r.s.bookings = append(r.s.bookings, booking)
	return nil
}

func (r memBookings) ListTripsByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	trips := []models.Trip{}
	for _, b := range r.s.bookings {
		if b.CustomerID == customerID {
			trips = append(trips, models.Trip{
				ID:         b.ID,
				CustomerID: b.CustomerID,
				HostID:     b.HostID,
				Listing:    *r.s.listings[b.ListingID],
				StartDate:  b.StartDate,
				EndDate:    b.EndDate,
				NightCount: b.NightCount,
				TotalPrice: b.TotalPrice,
			})
		}
	}
	return trips, nil
}
