package domain

import "errors"

var ErrMissingFields = errors.New("missing required fields")
var ErrReservationNotFound = errors.New("reservation not found")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrProviderBlocked = errors.New("verification provider blocked the request")
var ErrProvider = errors.New("verification provider error")

// Reservation is the core booking record. All seven user-supplied fields must
// be non-empty before the record is persisted; Phone is always stored in
// normalized international format.
type Reservation struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Validate reports whether every required field is present. Overlapping
// bookings for the same slot are allowed; the store imposes no uniqueness.
func (r *Reservation) Validate() error {
	fields := []string{r.FirstName, r.LastName, r.Phone, r.Email, r.Date, r.StartTime, r.EndTime}
	for _, f := range fields {
		if f == "" {
			return ErrMissingFields
		}
	}
	return nil
}
