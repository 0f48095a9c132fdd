package booking

import (
	"context"
	"fmt"
	"math"

	"ecoclean/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// QuoteFetcher asks the core backend what is owed on a booking.
type QuoteFetcher interface {
	PurchaseQuote(ctx context.Context, token, bookingID string) (*models.PurchaseQuote, error)
}

// CheckoutProvider creates a hosted checkout session and returns its URL.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, reference string, quote models.PurchaseQuote) (string, error)
}

// PaymentHandler drives the purchase flow: quote from the backend, then
// either a hosted-checkout redirect or a synchronous paid flag.
type PaymentHandler struct {
	Backend  QuoteFetcher
	Checkout CheckoutProvider
	Logger   *zap.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(logger *zap.Logger, backend QuoteFetcher, checkout CheckoutProvider) *PaymentHandler {
	return &PaymentHandler{Backend: backend, Checkout: checkout, Logger: logger}
}

// Purchase returns a redirect URL when payment is due, or Paid=true when
// the backend reports nothing owed. The redirect abandons the page state
// in the browser, which is the implicit cancellation of anything in flight.
func (h *PaymentHandler) Purchase(ctx context.Context, token, bookingID string) (*models.PurchaseResult, error) {
	quote, err := h.Backend.PurchaseQuote(ctx, token, bookingID)
	if err != nil {
		return nil, err
	}
	if quote.Paid || quote.Amount <= 0 {
		return &models.PurchaseResult{Paid: true}, nil
	}

	reference := uuid.New().String()
	url, err := h.Checkout.CreateSession(ctx, reference, *quote)
	if err != nil {
		h.Logger.Error("checkout session creation failed",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil, fmt.Errorf("payment: create checkout session: %w", err)
	}
	return &models.PurchaseResult{RedirectURL: url, Reference: reference}, nil
}

// StripeCheckout implements CheckoutProvider on Stripe hosted Checkout.
type StripeCheckout struct {
	SuccessURL string
	CancelURL  string
}

// CreateSession creates a single-line-item payment session and returns
// the hosted page URL.
func (s *StripeCheckout) CreateSession(ctx context.Context, reference string, quote models.PurchaseQuote) (string, error) {
	currency := quote.Currency
	if currency == "" {
		currency = "usd"
	}
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(reference),
		SuccessURL:        stripe.String(s.SuccessURL),
		CancelURL:         stripe.String(s.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(int64(math.Round(quote.Amount * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("EcoClean booking " + quote.BookingID),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
