package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/amrkal/tennis-reservation/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) add(username, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	r.users[username] = &domain.User{ID: username, Username: username, PasswordHash: string(hash)}
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("alice", "s3cret")
	svc := NewAuthService(repo, "secret", time.Hour)

	token, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_MissingInput(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice", ""); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("bob", "correct")
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "bob", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
