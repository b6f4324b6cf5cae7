package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	ListingID  primitive.ObjectID `bson:"listingId" json:"listingId"`
	HostID     primitive.ObjectID `bson:"hostId" json:"hostId"`
	StartDate  time.Time          `bson:"startDate" json:"startDate"`
	EndDate    time.Time          `bson:"endDate" json:"endDate"`
	NightCount int                `bson:"nightCount" json:"nightCount"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the body of a create-booking call. HostID and
// TotalPrice are accepted for compatibility with existing clients but the
// server derives both from the stored listing.
type BookingRequest struct {
	CustomerID string    `json:"customerId"`
	ListingID  string    `json:"listingId"`
	HostID     string    `json:"hostId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	TotalPrice float64   `json:"totalPrice"`
}

// Trip is a booking with the booked listing embedded.
type Trip struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	HostID     primitive.ObjectID `bson:"hostId" json:"hostId"`
	Listing    Listing            `bson:"listing" json:"listing"`
	StartDate  time.Time          `bson:"startDate" json:"startDate"`
	EndDate    time.Time          `bson:"endDate" json:"endDate"`
	NightCount int                `bson:"nightCount" json:"nightCount"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
