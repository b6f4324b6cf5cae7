package routes

import (
	"net/http"

	"github.com/dcode-github/dream_nest/controllers"
	"github.com/dcode-github/dream_nest/middleware"
	"github.com/dcode-github/dream_nest/services"
	"github.com/dcode-github/dream_nest/uploads"
	"github.com/gorilla/mux"
)

type Dependencies struct {
	Users    services.UserService
	Listings services.ListingService
	Bookings services.BookingService
	Uploads  *uploads.Store
}

func Routes(router *mux.Router, deps Dependencies) {
	// Auth routes
	router.HandleFunc("/auth/register", controllers.RegisterUser(deps.Users)).Methods("POST")
	router.HandleFunc("/auth/login", controllers.LoginUser(deps.Users)).Methods("POST")

	// Listing routes
	router.HandleFunc("/properties/create", controllers.CreateListing(deps.Listings, deps.Uploads)).Methods("POST")
	router.HandleFunc("/properties/{listingId}", controllers.GetListing(deps.Listings)).Methods("GET")
	router.HandleFunc("/properties/{listingId}/quote", controllers.QuoteListing(deps.Listings)).Methods("GET")

	// Booking routes
	router.HandleFunc("/bookings/create", controllers.CreateBooking(deps.Bookings)).Methods("POST")

	// Routes that require the caller to be the user in the path
	user := router.PathPrefix("/users/{userId}").Subrouter()
	user.Use(middleware.AuthMiddleware, middleware.SameUserMiddleware)
	user.HandleFunc("/trips", controllers.GetTrips(deps.Bookings)).Methods("GET")

	// Uploaded listing photos
	router.PathPrefix("/public/").Handler(
		http.StripPrefix("/public/", http.FileServer(deps.Uploads.FileSystem())),
	).Methods("GET")
}
