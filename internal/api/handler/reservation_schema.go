package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createReservationRequest carries the seven required booking fields. Every
// one of them must be present; the phone may arrive in local format and is
// normalized server-side.
type createReservationRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Phone     string `json:"phone"     validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Date      string `json:"date"      validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"   validate:"required"`
}

type createReservationResponse struct {
	Message       string `json:"message"`
	ReservationID string `json:"reservation_id"`
}
