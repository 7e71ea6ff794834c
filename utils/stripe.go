package utils

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// StripeAPIBase is the production Stripe REST endpoint. Tests point the
// client at a local server instead.
const StripeAPIBase = "https://api.stripe.com/v1"

// StripeClient talks to the Stripe payment-intents API
type StripeClient struct {
	client    *resty.Client
	secretKey string
}

func NewStripeClient(secretKey, baseURL string) *StripeClient {
	return &StripeClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
		secretKey: secretKey,
	}
}

type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreatePaymentIntent stages a card payment for the given price in dollars
// and returns the provider's client secret. Stripe expects integer cents.
func (s *StripeClient) CreatePaymentIntent(price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return "", fmt.Errorf("invalid payment amount: %v", price)
	}

	var intent paymentIntent
	resp, err := s.client.R().
		SetAuthToken(s.secretKey).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amount, 10),
			"currency":               "usd",
			"payment_method_types[]": "card",
		}).
		SetResult(&intent).
		Post("/payment_intents")
	if err != nil {
		return "", fmt.Errorf("stripe request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Printf("Stripe payment intent failed (%d): %s", resp.StatusCode(), resp.String())
		return "", fmt.Errorf("stripe returned status %d", resp.StatusCode())
	}

	if intent.ClientSecret == "" {
		return "", fmt.Errorf("stripe response missing client_secret")
	}

	return intent.ClientSecret, nil
}
