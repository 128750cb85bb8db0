package ports

import "context"

type AuthService interface {
	// Login verifies the credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, error)
}
