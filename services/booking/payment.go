package booking

import (
	"context"
	"fmt"

	"avira/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CreatePaymentIntent creates a Stripe payment intent for the booking's
// amount and returns the client secret. Payment status transitions are
// driven by the client; the booking stays unpaid until then.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, userID, bookingID string) (string, error) {
	logger := utils.GetLogger()

	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return "", NewBookingError(CodePersistenceError, fmt.Sprintf("failed to load booking: %v", err))
	}
	if booking == nil || booking.UserID != userID {
		return "", NewBookingError(CodeValidationError, "Booking not found")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(booking.PaymentAmount * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"booking_id": booking.ID,
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", NewBookingError(CodePersistenceError, fmt.Sprintf("failed to create payment intent: %v", err))
	}

	if err := s.Repo.SetPaymentIntent(ctx, booking.ID, intent.ID); err != nil {
		logger.Warn("failed to store payment intent id",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	return intent.ClientSecret, nil
}
