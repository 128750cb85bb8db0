package ports

import "context"

// VerificationProvider abstracts the external one-time-code service
// (Twilio Verify in production).
type VerificationProvider interface {
	// StartVerification asks the provider to send a one-time code by SMS.
	StartVerification(ctx context.Context, phone string) error
	// CheckVerification reports whether the provider approved the code.
	CheckVerification(ctx context.Context, phone, code string) (approved bool, err error)
}

// VerificationService defines the phone verification use cases.
type VerificationService interface {
	Start(ctx context.Context, phone string) error
	// Confirm returns false (not an error) when the code is rejected.
	Confirm(ctx context.Context, phone, code string) (bool, error)
}
