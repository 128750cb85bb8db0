package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amrkal/tennis-reservation/internal/api/metrics"
	"github.com/amrkal/tennis-reservation/internal/core/domain"
	"github.com/amrkal/tennis-reservation/internal/core/ports"
)

// VerificationHandler handles phone verification endpoints.
type VerificationHandler struct {
	service ports.VerificationService
}

func NewVerificationHandler(service ports.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

// Send requests a one-time verification code for a phone number.
//
// @Summary      Send a verification code via SMS
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body      sendVerificationRequest  true  "Phone number"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /send_verification [post]
func (h *VerificationHandler) Send(c echo.Context) error {
	var req sendVerificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Start(c.Request().Context(), req.Phone); err != nil {
		switch {
		case errors.Is(err, domain.ErrProviderBlocked):
			metrics.VerificationsStartedTotal.WithLabelValues("blocked").Inc()
		case errors.Is(err, domain.ErrMissingFields):
			// user error
		default:
			metrics.VerificationsStartedTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.VerificationsStartedTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Verification code sent"})
}

// Check confirms a verification code. A wrong code is a 400 with a distinct
// message, not a server error.
//
// @Summary      Check a verification code
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body      verifyCodeRequest  true  "Phone number and code"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /verify_code [post]
func (h *VerificationHandler) Check(c echo.Context) error {
	var req verifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	approved, err := h.service.Confirm(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		if !errors.Is(err, domain.ErrMissingFields) {
			metrics.VerificationsCheckedTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	if !approved {
		metrics.VerificationsCheckedTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid verification code")
	}

	metrics.VerificationsCheckedTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Phone number verified"})
}
