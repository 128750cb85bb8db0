package ports

import (
	"context"

	"github.com/amrkal/tennis-reservation/internal/core/domain"
)

// AuthRepository defines the interface for user credential lookup.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
