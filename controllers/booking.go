package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/repositories"
	"github.com/dcode-github/dream_nest/services"
	"github.com/gorilla/mux"
)

func CreateBooking(bookings services.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Invalid booking request body: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid request body", invalidInput("%v", err))
			return
		}

		booking, err := bookings.CreateBooking(r.Context(), req)
		if err != nil {
			status := statusFor(err)
			log.Printf("Create booking for listing %s failed: %v", req.ListingID, err)
			writeError(w, status, createBookingMessage(err, status), err)
			return
		}

		writeJSON(w, http.StatusOK, booking)
	}
}

func createBookingMessage(err error, status int) string {
	var validationErr *repositories.ValidationError
	switch {
	case status == http.StatusInternalServerError:
		return "Fail to create a new Booking!"
	case errors.As(err, &validationErr) && validationErr.Reason == repositories.ReasonInvalidDateRange:
		return "Booking failed. Invalid booking dates."
	default:
		return "Booking failed. Missing listing, host, or user information."
	}
}

func GetTrips(bookings services.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := mux.Vars(r)["userId"]

		trips, err := bookings.ListTrips(r.Context(), userID)
		if err != nil {
			status := statusFor(err)
			log.Printf("Error fetching trips for user %s: %v", userID, err)
			if status == http.StatusInternalServerError {
				writeError(w, status, "Can not find trips!", err)
			} else {
				writeError(w, status, "Invalid user ID", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, trips)
	}
}
