package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	var gotForm map[string]string
	var gotAuth, gotIdempotency string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"amount":                 r.PostFormValue("amount"),
			"currency":               r.PostFormValue("currency"),
			"payment_method_types[]": r.PostFormValue("payment_method_types[]"),
		}
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456"}`))
	}))
	t.Cleanup(server.Close)

	client := NewStripeClient("sk_test_123", server.URL)

	secret, err := client.CreatePaymentIntent(10.50)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)

	// Stripe takes integer cents
	assert.Equal(t, "1050", gotForm["amount"])
	assert.Equal(t, "usd", gotForm["currency"])
	assert.Equal(t, "card", gotForm["payment_method_types[]"])
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.NotEmpty(t, gotIdempotency)
}

func TestCreatePaymentIntentProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	t.Cleanup(server.Close)

	client := NewStripeClient("sk_test_123", server.URL)

	_, err := client.CreatePaymentIntent(10)
	assert.Error(t, err)
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	client := NewStripeClient("sk_test_123", "http://localhost:0")

	_, err := client.CreatePaymentIntent(0)
	assert.Error(t, err)

	_, err = client.CreatePaymentIntent(-5)
	assert.Error(t, err)
}
