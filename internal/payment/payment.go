// Package payment creates payment intents with the external provider.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Modes reported back to the client with the secret.
const (
	ModeLive = "live"
	ModeDemo = "demo"
)

// DemoClientSecret is returned when no provider key is configured.
const DemoClientSecret = "pi_demo_secret_placeholder"

// MaxAmountMinor is the largest charge Stripe accepts, in minor units.
const MaxAmountMinor = 99999999

var (
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrAmountTooLarge = fmt.Errorf("%w: amount exceeds %d minor units", ErrInvalidAmount, MaxAmountMinor)
)

// Provider creates a payment intent for an amount in minor currency units
// and returns its client secret.
type Provider interface {
	CreateIntent(ctx context.Context, amountMinor int64) (string, error)
}

// ProviderError carries the provider's own message for the caller.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Unwrap() error { return e.Err }

// ToMinorUnits converts an amount in major units (e.g. 12.5 dollars) to
// minor units (1250 cents), rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	minor := amount.Shift(2).Round(0)
	if !minor.IsPositive() {
		return 0, ErrInvalidAmount
	}
	if minor.GreaterThan(decimal.NewFromInt(MaxAmountMinor)) {
		return 0, ErrAmountTooLarge
	}
	return minor.IntPart(), nil
}

// Stripe creates payment intents through the Stripe API.
type Stripe struct {
	api      *client.API
	currency string
}

// NewStripe builds a Stripe provider. backends may be nil to use the
// default Stripe endpoints.
func NewStripe(secretKey, currency string, backends *stripe.Backends) *Stripe {
	return &Stripe{
		api:      client.New(secretKey, backends),
		currency: currency,
	}
}

func (s *Stripe) CreateIntent(ctx context.Context, amountMinor int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(s.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return "", &ProviderError{Message: stripeErr.Msg, Err: err}
		}
		return "", &ProviderError{Message: err.Error(), Err: err}
	}
	if pi.ClientSecret == "" {
		return "", fmt.Errorf("payment intent %s has no client secret", pi.ID)
	}
	return pi.ClientSecret, nil
}
