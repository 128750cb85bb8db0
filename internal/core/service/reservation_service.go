package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/amrkal/tennis-reservation/internal/core/domain"
	"github.com/amrkal/tennis-reservation/internal/core/ports"
)

// ReservationService implements the booking workflow: validate, normalize,
// persist, schedule the reminder.
type ReservationService struct {
	repo      ports.ReservationRepository
	scheduler ports.ReminderScheduler
	logger    zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, scheduler ports.ReminderScheduler, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, scheduler: scheduler, logger: logger}
}

// Create admits a reservation request. Validation happens before any side
// effect; the reminder is scheduled only after the record is persisted, and
// a scheduling failure does not roll back or fail the reservation.
func (s *ReservationService) Create(ctx context.Context, input ports.CreateReservationInput) (string, error) {
	reservation := &domain.Reservation{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	if err := reservation.Validate(); err != nil {
		return "", err
	}

	reservation.Phone = domain.NormalizePhone(reservation.Phone)

	id, err := s.repo.Create(ctx, reservation)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create reservation")
		return "", err
	}

	if err := s.scheduler.Schedule(ctx, reservation.Phone, reservation.StartTime, reservation.Date); err != nil {
		s.logger.Error().Err(err).
			Str("reservation_id", id).
			Str("phone", reservation.Phone).
			Msg("failed to schedule reminder")
	}

	s.logger.Info().
		Str("reservation_id", id).
		Str("date", reservation.Date).
		Str("start_time", reservation.StartTime).
		Msg("reservation created")

	return id, nil
}

// List returns all stored reservations in insertion order.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list reservations")
		return nil, err
	}
	return reservations, nil
}
