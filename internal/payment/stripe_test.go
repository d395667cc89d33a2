package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quefood/internal/config"
)

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk_test_123" {
			t.Errorf("authorization = %q", auth)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if amount := r.PostFormValue("amount"); amount != "1100" {
			t.Errorf("amount = %q, want 1100", amount)
		}
		if currency := r.PostFormValue("currency"); currency != "usd" {
			t.Errorf("currency = %q, want usd", currency)
		}
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_abc"}`))
	}))
	defer server.Close()

	client := NewClient(config.StripeConfig{SecretKey: "sk_test_123", BaseURL: server.URL})

	secret, err := client.CreateIntent(context.Background(), 1100, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "pi_1_secret_abc" {
		t.Fatalf("client secret = %q", secret)
	}
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	client := NewClient(config.StripeConfig{SecretKey: "sk_test_123", BaseURL: "http://unused"})

	for _, amount := range []int64{0, -500} {
		if _, err := client.CreateIntent(context.Background(), amount, "usd"); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("amount %d: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestCreateIntentSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"card declined"}}`))
	}))
	defer server.Close()

	client := NewClient(config.StripeConfig{SecretKey: "sk_test_123", BaseURL: server.URL})
	if _, err := client.CreateIntent(context.Background(), 1100, "usd"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
