package services

import (
	"context"
	"sync"

	"github.com/dcode-github/dream_nest/events"
	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the Mongo repositories. They apply the same
// checks in the same order so service behaviour can be tested without a
// database.

type memUsers struct {
	users map[primitive.ObjectID]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *memUsers) add(firstName string) primitive.ObjectID {
	u := &models.User{ID: primitive.NewObjectID(), FirstName: firstName}
	m.users[u.ID] = u
	return u.ID
}

func (m *memUsers) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	m.users[user.ID] = user
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, &repositories.NotFoundError{Entity: "user", ID: id.Hex()}
	}
	return u, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, &repositories.NotFoundError{Entity: "user", ID: email}
}

func (m *memUsers) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

type memListings struct {
	users    *memUsers
	listings map[string]*models.Listing
	getCalls int
}

func newMemListings(users *memUsers) *memListings {
	return &memListings{users: users, listings: make(map[string]*models.Listing)}
}

func (m *memListings) Create(ctx context.Context, listing *models.Listing) error {
	if ok, _ := m.users.Exists(ctx, listing.Creator); !ok {
		return &repositories.ReferenceError{Entity: "creator", ID: listing.Creator.Hex()}
	}
	if len(listing.ListingPhotoPaths) == 0 {
		return &repositories.ValidationError{Reason: repositories.ReasonNoPhotos}
	}
	listing.ID = primitive.NewObjectID()
	m.listings[listing.ID.Hex()] = listing
	return nil
}

func (m *memListings) GetByID(ctx context.Context, id string) (*models.ListingDetails, error) {
	m.getCalls++
	l, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var creator models.User
	if u, ok := m.users.users[l.Creator]; ok {
		creator = *u
	}
	return &models.ListingDetails{
		ID:                l.ID,
		Creator:           creator,
		Title:             l.Title,
		ListingPhotoPaths: l.ListingPhotoPaths,
		Price:             l.Price,
	}, nil
}

func (m *memListings) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	l, ok := m.listings[id]
	if !ok {
		return nil, &repositories.NotFoundError{Entity: "listing", ID: id}
	}
	return l, nil
}

type memBookings struct {
	listings *memListings
	users    *memUsers
	bookings []*models.Booking
}

func (m *memBookings) Create(ctx context.Context, booking *models.Booking) error {
	if _, err := m.listings.FindByID(ctx, booking.ListingID.Hex()); err != nil {
		return &repositories.ReferenceError{Entity: "listing", ID: booking.ListingID.Hex()}
	}
	if booking.CustomerID.IsZero() {
		return &repositories.ValidationError{Reason: repositories.ReasonMissingCustomer}
	}
	if ok, _ := m.users.Exists(ctx, booking.CustomerID); !ok {
		return &repositories.ReferenceError{Entity: "customer", ID: booking.CustomerID.Hex()}
	}
	if ok, _ := m.users.Exists(ctx, booking.HostID); !ok {
		return &repositories.ReferenceError{Entity: "host", ID: booking.HostID.Hex()}
	}
	booking.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, booking)
	return nil
}

func (m *memBookings) ListTripsByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Trip, error) {
	trips := []models.Trip{}
	for _, b := range m.bookings {
		if b.CustomerID != customerID {
			continue
		}
		trips = append(trips, models.Trip{
			ID:         b.ID,
			CustomerID: b.CustomerID,
			HostID:     b.HostID,
			Listing:    *m.listings.listings[b.ListingID.Hex()],
			TotalPrice: b.TotalPrice,
			NightCount: b.NightCount,
		})
	}
	return trips, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }
