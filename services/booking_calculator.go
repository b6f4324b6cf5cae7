package services

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Stay is the priced length of a booking.
type Stay struct {
	NightCount int
	TotalPrice float64
}

// CalculateStay prices the range [start, end] at nightlyPrice. The night
// count is the rounded number of whole days in the range and is never below
// one, so same-day and inverted ranges are charged a single night.
func CalculateStay(start, end time.Time, nightlyPrice float64) Stay {
	nights := int(math.Round(float64(end.Sub(start)) / float64(day)))
	if nights < 1 {
		nights = 1
	}
	return Stay{
		NightCount: nights,
		TotalPrice: nightlyPrice * float64(nights),
	}
}
