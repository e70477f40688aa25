package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const goldAPIBaseURL = "https://www.goldapi.io/api"

// goldAPIResponse is the GoldAPI spot price payload. Prices are per troy ounce.
type goldAPIResponse struct {
	Timestamp      int64   `json:"timestamp"`
	Metal          string  `json:"metal"`
	Currency       string  `json:"currency"`
	Price          float64 `json:"price"`
	PrevClosePrice float64 `json:"prev_close_price"`
	Change         float64 `json:"ch"`
	ChangePercent  float64 `json:"chp"`
	Ask            float64 `json:"ask"`
	Bid            float64 `json:"bid"`
}

// GoldAPIProvider fetches gold and silver spot prices from goldapi.io.
type GoldAPIProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewGoldAPIProvider creates a GoldAPI source. An empty baseURL selects the public endpoint.
func NewGoldAPIProvider(httpClient *http.Client, baseURL, apiKey string) *GoldAPIProvider {
	if baseURL == "" {
		baseURL = goldAPIBaseURL
	}
	return &GoldAPIProvider{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Name returns the provider's display name.
func (p *GoldAPIProvider) Name() string { return "GoldAPI" }

// FetchPricePerOunce fetches the spot price for symbol in currency.
func (p *GoldAPIProvider) FetchPricePerOunce(ctx context.Context, symbol, currency string) (float64, error) {
	if p.apiKey == "" {
		return 0, ErrNoCredential
	}

	url := p.baseURL + "/" + symbol + "/" + currency
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building goldapi request: %w", err)
	}
	req.Header.Set("x-access-token", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("goldapi http request for %s: %w", symbol, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &StatusError{Source: p.Name(), StatusCode: resp.StatusCode}
	}

	var body goldAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding goldapi response for %s: %w", symbol, err)
	}
	if body.Price <= 0 {
		return 0, fmt.Errorf("invalid goldapi response for %s: missing price", symbol)
	}

	return body.Price, nil
}
