package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const freeCurrencyAPIBaseURL = "https://api.freecurrencyapi.com/v1/latest"

// freeCurrencyResponse is the FreeCurrencyAPI "latest" payload.
type freeCurrencyResponse struct {
	Data map[string]float64 `json:"data"`
}

// FreeCurrencyProvider fetches exchange rates from freecurrencyapi.com.
type FreeCurrencyProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewFreeCurrencyProvider creates a FreeCurrencyAPI source. An empty baseURL selects the public endpoint.
func NewFreeCurrencyProvider(httpClient *http.Client, baseURL, apiKey string) *FreeCurrencyProvider {
	if baseURL == "" {
		baseURL = freeCurrencyAPIBaseURL
	}
	return &FreeCurrencyProvider{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey}
}

// Name returns the provider's display name.
func (p *FreeCurrencyProvider) Name() string { return "FreeCurrencyAPI" }

// FetchRate fetches the base→target multiplier.
func (p *FreeCurrencyProvider) FetchRate(ctx context.Context, base, target string) (float64, error) {
	if p.apiKey == "" {
		return 0, ErrNoCredential
	}

	q := url.Values{}
	q.Set("apikey", p.apiKey)
	q.Set("base_currency", base)
	q.Set("currencies", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("building fx request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fx http request for %s%s: %w", base, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &StatusError{Source: p.Name(), StatusCode: resp.StatusCode}
	}

	var body freeCurrencyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding fx response: %w", err)
	}

	rate := body.Data[target]
	if rate <= 0 {
		return 0, fmt.Errorf("invalid fx response: missing %s rate", target)
	}
	return rate, nil
}
