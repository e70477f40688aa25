package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFreeCurrencyProvider_FetchRate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apikey") != "fx-key" {
			t.Errorf("expected apikey query param, got %q", q.Get("apikey"))
		}
		if q.Get("currencies") != "PKR" || q.Get("base_currency") != "USD" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]map[string]float64{
			"data": {"PKR": 278.25},
		})
	}))
	defer server.Close()

	p := NewFreeCurrencyProvider(server.Client(), server.URL, "fx-key")
	rate, err := p.FetchRate(context.Background(), "USD", "PKR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 278.25 {
		t.Errorf("rate = %v, want 278.25", rate)
	}
}

func TestFreeCurrencyProvider_FetchRate_NoCredential(t *testing.T) {
	p := NewFreeCurrencyProvider(http.DefaultClient, "http://127.0.0.1:0", "")
	_, err := p.FetchRate(context.Background(), "USD", "PKR")
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}

func TestFreeCurrencyProvider_FetchRate_MissingRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"EUR":0.92}}`))
	}))
	defer server.Close()

	p := NewFreeCurrencyProvider(server.Client(), server.URL, "fx-key")
	_, err := p.FetchRate(context.Background(), "USD", "PKR")
	if err == nil || !strings.Contains(err.Error(), "missing PKR rate") {
		t.Fatalf("expected missing rate error, got %v", err)
	}
}

func TestFreeCurrencyProvider_FetchRate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewFreeCurrencyProvider(server.Client(), server.URL, "fx-key")
	_, err := p.FetchRate(context.Background(), "USD", "PKR")
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected error mentioning 500, got %v", err)
	}
}
