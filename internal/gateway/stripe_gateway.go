package gateway

import (
	"context"
	"net/http"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/apperror"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

type stripeGateway struct {
	currency string
	logger   *zap.Logger
}

// NewStripeGateway configures the global stripe client key and returns
// a Gateway backed by PaymentIntents.
func NewStripeGateway(secretKey, currency string, logger *zap.Logger) Gateway {
	stripe.Key = secretKey
	return &stripeGateway{
		currency: currency,
		logger:   logger.Named("gateway.stripe"),
	}
}

func (g *stripeGateway) CreateIntent(
	ctx context.Context,
	amount int64,
	currency string,
) (Intent, error) {
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error("create payment intent failed", zap.Error(err))
		return Intent{}, apperror.Wrap(
			err,
			apperror.CodePaymentGateway,
			"payment gateway rejected intent creation",
			http.StatusBadGateway,
		)
	}

	return Intent{
		Reference:    pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (g *stripeGateway) ConfirmSucceeded(
	ctx context.Context,
	reference string,
) (bool, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(reference, params)
	if err != nil {
		g.logger.Error("fetch payment intent failed",
			zap.String("reference", reference),
			zap.Error(err),
		)
		return false, apperror.Wrap(
			err,
			apperror.CodePaymentGateway,
			"payment gateway lookup failed",
			http.StatusBadGateway,
		)
	}

	return pi.Status == stripe.PaymentIntentStatusSucceeded, nil
}
