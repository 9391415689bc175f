// Package payment talks to the separately deployed payment API. Both
// endpoints are public; card data arrives pre-tokenized.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/model"
)

// ErrPaymentFailed carries the payment API's own failure message for
// responses that are HTTP 200 but success=false.
type ErrPaymentFailed struct {
	Message string
}

func (e *ErrPaymentFailed) Error() string {
	if e.Message == "" {
		return "payment failed"
	}
	return "payment failed: " + e.Message
}

// Client wraps the payment endpoints.
type Client struct {
	api *api.Client
	log zerolog.Logger
}

// New creates a payment Client over the payment host.
func New(apiClient *api.Client, log zerolog.Logger) *Client {
	return &Client{
		api: apiClient,
		log: log.With().Str("component", "payment").Logger(),
	}
}

// Create initiates a payment from a tokenized card source.
func (c *Client) Create(ctx context.Context, req model.CreatePaymentRequest) (*model.Payment, error) {
	var env model.PaymentEnvelope
	if err := c.api.PublicPost(ctx, "/api/create-payment/", req, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &ErrPaymentFailed{Message: env.Message}
	}
	c.log.Info().Str("payment_id", paymentID(env.Payment)).Msg("payment created")
	return env.Payment, nil
}

// Status fetches the state of a payment.
func (c *Client) Status(ctx context.Context, id string) (*model.Payment, error) {
	var env model.PaymentEnvelope
	if err := c.api.PublicGet(ctx, fmt.Sprintf("/api/payment-status/%s/", id), &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Payment == nil {
		return nil, errors.New("payment status unavailable")
	}
	return env.Payment, nil
}

func paymentID(p *model.Payment) string {
	if p == nil {
		return ""
	}
	return p.ID
}
