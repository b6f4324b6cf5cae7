package controllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/repositories"
	"github.com/dcode-github/dream_nest/services"
	"github.com/dcode-github/dream_nest/uploads"
	"github.com/gorilla/mux"
)

const (
	maxUploadMemory = 32 << 20
	photoFormKey    = "listingPhotos"
)

func CreateListing(listings services.ListingService, store *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			log.Printf("Invalid multipart form: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid form data", invalidInput("%v", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		form, err := parseListingForm(r)
		if err != nil {
			log.Printf("Invalid listing form: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid listing data", err)
			return
		}

		paths, err := store.SaveAll(r.MultipartForm.File[photoFormKey])
		if err != nil {
			log.Printf("Failed to store listing photos: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to create listing", nil)
			return
		}

		listing, err := listings.CreateListing(r.Context(), form, paths)
		if err != nil {
			store.Remove(paths)
			status := statusFor(err)
			log.Printf("Create listing failed: %v", err)
			writeError(w, status, createListingMessage(err, status), err)
			return
		}

		writeJSON(w, http.StatusCreated, listing)
	}
}

func createListingMessage(err error, status int) string {
	var (
		referenceErr  *repositories.ReferenceError
		validationErr *repositories.ValidationError
	)
	switch {
	case errors.As(err, &referenceErr):
		return "Invalid user ID. User does not exist."
	case errors.As(err, &validationErr) && validationErr.Reason == repositories.ReasonNoPhotos:
		return "No files uploaded."
	case status == http.StatusInternalServerError:
		return "Failed to create listing"
	default:
		return "Invalid listing data"
	}
}

func GetListing(listings services.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := mux.Vars(r)["listingId"]

		listing, err := listings.GetListing(r.Context(), listingID)
		if err != nil {
			status := statusFor(err)
			if status == http.StatusNotFound {
				log.Printf("Listing %s not found", listingID)
				writeError(w, status, "Listing not found!", nil)
				return
			}
			log.Printf("Error fetching listing %s: %v", listingID, err)
			writeError(w, http.StatusInternalServerError, "Error fetching listing", err)
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

func QuoteListing(listings services.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := mux.Vars(r)["listingId"]
		query := r.URL.Query()

		start, err := parseDate(query.Get("start"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid start date", invalidInput("start: %v", err))
			return
		}
		end, err := parseDate(query.Get("end"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid end date", invalidInput("end: %v", err))
			return
		}

		quote, err := listings.QuotePrice(r.Context(), listingID, start, end)
		if err != nil {
			status := statusFor(err)
			log.Printf("Quote for listing %s failed: %v", listingID, err)
			switch status {
			case http.StatusNotFound:
				writeError(w, status, "Listing not found!", nil)
			case http.StatusInternalServerError:
				writeError(w, status, "Error fetching listing", err)
			default:
				writeError(w, status, "Invalid date range", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}

// parseDate accepts an ISO-8601 timestamp or a plain calendar date.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func parseListingForm(r *http.Request) (models.ListingForm, error) {
	form := models.ListingForm{
		Creator:       strings.TrimSpace(r.FormValue("creator")),
		Category:      r.FormValue("category"),
		Type:          r.FormValue("type"),
		StreetAddress: r.FormValue("streetAddress"),
		AptSuite:      r.FormValue("aptSuite"),
		City:          r.FormValue("city"),
		Province:      r.FormValue("province"),
		Country:       r.FormValue("country"),
		Amenities:     r.MultipartForm.Value["amenities"],
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		Highlight:     r.FormValue("highlight"),
		HighlightDesc: r.FormValue("highlightDesc"),
	}

	counts := []struct {
		key string
		dst *int
	}{
		{"guestCount", &form.GuestCount},
		{"bedroomCount", &form.BedroomCount},
		{"bedCount", &form.BedCount},
		{"bathroomCount", &form.BathroomCount},
	}
	for _, c := range counts {
		v := strings.TrimSpace(r.FormValue(c.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return form, invalidInput("%s must be a whole number", c.key)
		}
		*c.dst = n
	}

	if v := strings.TrimSpace(r.FormValue("price")); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsInf(price, 0) || math.IsNaN(price) {
			return form, invalidInput("price must be a number")
		}
		form.Price = price
	}

	return form, nil
}
