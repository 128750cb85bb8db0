package ports

import (
	"context"

	"github.com/amrkal/tennis-reservation/internal/core/domain"
)

// CreateReservationInput carries the raw, user-supplied booking fields.
type CreateReservationInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Date      string
	StartTime string
	EndTime   string
}

// ReservationService defines the booking use cases.
type ReservationService interface {
	// Create validates the input, normalizes the phone number, persists the
	// reservation and schedules an SMS reminder. A reminder scheduling
	// failure never fails the call.
	Create(ctx context.Context, input CreateReservationInput) (string, error)
	List(ctx context.Context) ([]domain.Reservation, error)
}
