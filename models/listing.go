package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Listing struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Creator           primitive.ObjectID `bson:"creator" json:"creator"`
	Category          string             `bson:"category" json:"category"`
	Type              string             `bson:"type" json:"type"`
	StreetAddress     string             `bson:"streetAddress" json:"streetAddress"`
	AptSuite          string             `bson:"aptSuite" json:"aptSuite"`
	City              string             `bson:"city" json:"city"`
	Province          string             `bson:"province" json:"province"`
	Country           string             `bson:"country" json:"country"`
	GuestCount        int                `bson:"guestCount" json:"guestCount"`
	BedroomCount      int                `bson:"bedroomCount" json:"bedroomCount"`
	BedCount          int                `bson:"bedCount" json:"bedCount"`
	BathroomCount     int                `bson:"bathroomCount" json:"bathroomCount"`
	Amenities         []string           `bson:"amenities" json:"amenities"`
	ListingPhotoPaths []string           `bson:"listingPhotoPaths" json:"listingPhotoPaths"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Highlight         string             `bson:"highlight" json:"highlight"`
	HighlightDesc     string             `bson:"highlightDesc" json:"highlightDesc"`
	Price             float64            `bson:"price" json:"price"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ListingDetails is a Listing with its creator expanded to the full user
// document, as returned by the listing detail endpoint.
type ListingDetails struct {
	ID                primitive.ObjectID `bson:"_id" json:"_id"`
	Creator           User               `bson:"creator" json:"creator"`
	Category          string             `bson:"category" json:"category"`
	Type              string             `bson:"type" json:"type"`
	StreetAddress     string             `bson:"streetAddress" json:"streetAddress"`
	AptSuite          string             `bson:"aptSuite" json:"aptSuite"`
	City              string             `bson:"city" json:"city"`
	Province          string             `bson:"province" json:"province"`
	Country           string             `bson:"country" json:"country"`
	GuestCount        int                `bson:"guestCount" json:"guestCount"`
	BedroomCount      int                `bson:"bedroomCount" json:"bedroomCount"`
	BedCount          int                `bson:"bedCount" json:"bedCount"`
	BathroomCount     int                `bson:"bathroomCount" json:"bathroomCount"`
	Amenities         []string           `bson:"amenities" json:"amenities"`
	ListingPhotoPaths []string           `bson:"listingPhotoPaths" json:"listingPhotoPaths"`
	ListingPhotoURLs  []string           `bson:"-" json:"listingPhotoUrls"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Highlight         string             `bson:"highlight" json:"highlight"`
	HighlightDesc     string             `bson:"highlightDesc" json:"highlightDesc"`
	Price             float64            `bson:"price" json:"price"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ListingForm carries the text fields of a create-listing multipart request.
type ListingForm struct {
	Creator       string `validate:"required"`
	Category      string
	Type          string
	StreetAddress string
	AptSuite      string
	City          string
	Province      string
	Country       string
	GuestCount    int `validate:"gte=0"`
	BedroomCount  int `validate:"gte=0"`
	BedCount      int `validate:"gte=0"`
	BathroomCount int `validate:"gte=0"`
	Amenities     []string
	Title         string
	Description   string
	Highlight     string
	HighlightDesc string
	Price         float64 `validate:"gte=0"`
}

type PriceQuote struct {
	ListingID    string  `json:"listingId"`
	NightCount   int     `json:"nightCount"`
	NightlyPrice float64 `json:"nightlyPrice"`
	TotalPrice   float64 `json:"totalPrice"`
}
