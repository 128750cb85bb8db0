package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amrkal/tennis-reservation/internal/api/metrics"
	"github.com/amrkal/tennis-reservation/internal/core/ports"
)

// ReservationHandler handles HTTP requests for reservations.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List returns all reservations, identifiers rendered as strings.
//
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Reservation
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservations)
}

// Create admits a new reservation and schedules its SMS reminder.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Reservation details"
// @Success      201   {object}  createReservationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return err
	}

	metrics.ReservationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createReservationResponse{
		Message:       "Reservation added",
		ReservationID: id,
	})
}
