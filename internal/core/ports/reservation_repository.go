package ports

import (
	"context"

	"github.com/amrkal/tennis-reservation/internal/core/domain"
)

// ReservationRepository defines the persistence interface for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (string, error)
	List(ctx context.Context) ([]domain.Reservation, error)
}
