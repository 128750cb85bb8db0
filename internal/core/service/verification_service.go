package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/amrkal/tennis-reservation/internal/core/domain"
	"github.com/amrkal/tennis-reservation/internal/core/ports"
)

// SendThrottle abstracts the per-phone cooldown store (Redis). It keeps a
// short-lived marker after each successful send so a client cannot hammer
// the provider with verification requests.
type SendThrottle interface {
	InCooldown(ctx context.Context, phone string) (bool, error)
	Mark(ctx context.Context, phone string) error
}

type verificationService struct {
	provider ports.VerificationProvider
	throttle SendThrottle
	log      zerolog.Logger
}

// NewVerificationService returns a VerificationService implementation.
// throttle may be nil, in which case no cooldown is enforced.
func NewVerificationService(provider ports.VerificationProvider, throttle SendThrottle, log zerolog.Logger) ports.VerificationService {
	return &verificationService{provider: provider, throttle: throttle, log: log}
}

// Start normalizes the phone number and asks the provider to send a
// one-time code. A provider-side compliance block surfaces as
// domain.ErrProviderBlocked so callers can render a distinct message.
func (s *verificationService) Start(ctx context.Context, phone string) error {
	if phone == "" {
		return domain.ErrMissingFields
	}
	normalized := domain.NormalizePhone(phone)

	if s.throttle != nil {
		cooling, err := s.throttle.InCooldown(ctx, normalized)
		if err != nil {
			s.log.Warn().Err(err).Str("phone", normalized).Msg("cooldown check failed, sending anyway")
		} else if cooling {
			s.log.Debug().Str("phone", normalized).Msg("verification send throttled")
			return domain.ErrProviderBlocked
		}
	}

	if err := s.provider.StartVerification(ctx, normalized); err != nil {
		s.log.Error().Err(err).Str("phone", normalized).Msg("verification start failed")
		return err
	}

	if s.throttle != nil {
		if err := s.throttle.Mark(ctx, normalized); err != nil {
			s.log.Warn().Err(err).Str("phone", normalized).Msg("failed to set cooldown key")
		}
	}

	s.log.Info().Str("phone", normalized).Msg("verification code sent")
	return nil
}

// Confirm checks the code with the provider. A rejected code is an expected
// outcome, reported as (false, nil).
func (s *verificationService) Confirm(ctx context.Context, phone, code string) (bool, error) {
	if phone == "" || code == "" {
		return false, domain.ErrMissingFields
	}
	normalized := domain.NormalizePhone(phone)

	approved, err := s.provider.CheckVerification(ctx, normalized, code)
	if err != nil {
		s.log.Error().Err(err).Str("phone", normalized).Msg("verification check failed")
		return false, err
	}

	s.log.Info().Str("phone", normalized).Bool("approved", approved).Msg("verification checked")
	return approved, nil
}
