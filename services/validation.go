package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dcode-github/dream_nest/repositories"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &repositories.ValidationError{Reason: repositories.ReasonInvalidField, Detail: err.Error()}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return &repositories.ValidationError{
		Reason: repositories.ReasonInvalidField,
		Detail: strings.Join(msgs, "; "),
	}
}

// validateRange rejects stays with a missing date or an end before the start.
// Booking creation and price quotes both go through it.
func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return &repositories.ValidationError{Reason: repositories.ReasonInvalidDateRange, Detail: "start and end dates are required"}
	}
	if end.Before(start) {
		return &repositories.ValidationError{Reason: repositories.ReasonInvalidDateRange, Detail: "end date is before start date"}
	}
	return nil
}
