// Package sms adapts the Twilio REST API to the verification and messaging
// ports. All provider faults are folded into the domain error taxonomy here
// so no Twilio type leaks past this package.
package sms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	twilio "github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	verify "github.com/twilio/twilio-go/rest/verify/v2"

	"github.com/amrkal/tennis-reservation/internal/core/domain"
)

const statusApproved = "approved"

const defaultHTTPTimeout = 10 * time.Second

// Config holds the Twilio account settings. All fields are required.
type Config struct {
	AccountSID      string
	AuthToken       string
	VerifyServiceID string
	FromNumber      string
	// Timeout bounds every HTTP call to Twilio; zero selects the default.
	Timeout time.Duration
}

// Client implements ports.VerificationProvider and ports.MessageSender on top
// of Twilio Verify v2 and Twilio Messages.
type Client struct {
	rest            *twilio.RestClient
	verifyServiceID string
	fromNumber      string
}

// NewClient builds a Twilio client with a bounded request timeout.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	base := &twclient.Client{Credentials: twclient.NewCredentials(cfg.AccountSID, cfg.AuthToken)}
	base.SetTimeout(timeout)

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
		Client:   base,
	})

	return &Client{
		rest:            rest,
		verifyServiceID: cfg.VerifyServiceID,
		fromNumber:      cfg.FromNumber,
	}
}

// StartVerification asks Twilio Verify to send a one-time code over SMS.
func (c *Client) StartVerification(_ context.Context, phone string) error {
	params := &verify.CreateVerificationParams{}
	params.SetTo(phone)
	params.SetChannel("sms")

	if _, err := c.rest.VerifyV2.CreateVerification(c.verifyServiceID, params); err != nil {
		return translateError("start verification", err)
	}
	return nil
}

// CheckVerification asks Twilio Verify whether the code matches. A rejected
// code comes back as (false, nil).
func (c *Client) CheckVerification(_ context.Context, phone, code string) (bool, error) {
	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(phone)
	params.SetCode(code)

	check, err := c.rest.VerifyV2.CreateVerificationCheck(c.verifyServiceID, params)
	if err != nil {
		return false, translateError("check verification", err)
	}
	return check.Status != nil && *check.Status == statusApproved, nil
}

// SendSMS delivers a single outbound message from the configured number.
func (c *Client) SendSMS(_ context.Context, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.fromNumber)
	params.SetBody(body)

	if _, err := c.rest.Api.CreateMessage(params); err != nil {
		return translateError("send sms", err)
	}
	return nil
}

// translateError maps Twilio REST failures onto the domain taxonomy. A 403
// signals an account or compliance block (needs human intervention, not a
// retry); 429 means the provider is refusing further sends for now. Both
// surface as ErrProviderBlocked; everything else is a generic provider fault.
func translateError(op string, err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		if restErr.Status == http.StatusForbidden || restErr.Status == http.StatusTooManyRequests {
			return fmt.Errorf("%s: %w: %s", op, domain.ErrProviderBlocked, restErr.Message)
		}
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrProvider, err)
}
