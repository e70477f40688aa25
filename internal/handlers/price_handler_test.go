package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/models"
	"metalfolio/internal/pricing"
)

var priceNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func setupPriceRouter(svc *mockPriceService) *gin.Engine {
	h := NewPriceHandler(svc)
	h.now = func() time.Time { return priceNow }
	r := gin.New()
	r.GET("/prices", h.GetPrices)
	r.GET("/prices/history", h.GetPriceHistory)
	return r
}

func TestPriceHandler_GetPrices(t *testing.T) {
	t.Run("reports a recent snapshot as fresh", func(t *testing.T) {
		svc := &mockPriceService{
			getCurrentPricesFn: func(context.Context) (*pricing.Result, error) {
				snap := pricing.MockSnapshot(priceNow.Add(-2 * time.Minute)).WithSource(pricing.ProvenanceLive)
				return &pricing.Result{Snapshot: snap}, nil
			},
		}

		rec := doRequest(setupPriceRouter(svc), "GET", "/prices", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["isFresh"] != true {
			t.Errorf("expected isFresh true, got %v", result["isFresh"])
		}
		if result["ageMinutes"].(float64) != 2 {
			t.Errorf("expected ageMinutes 2, got %v", result["ageMinutes"])
		}
		if result["source"] != "live" {
			t.Errorf("expected source live, got %v", result["source"])
		}
		gold := result["gold"].(map[string]interface{})
		if gold["USD"].(float64) != pricing.MockGoldUSD {
			t.Errorf("expected gold USD %v, got %v", pricing.MockGoldUSD, gold["USD"])
		}
		rates := result["rates"].(map[string]interface{})
		if rates["PKR"].(float64) != pricing.MockUSDToPKR {
			t.Errorf("expected PKR rate %v, got %v", pricing.MockUSDToPKR, rates["PKR"])
		}
	})

	t.Run("reports an old cached snapshot as stale", func(t *testing.T) {
		svc := &mockPriceService{
			getCurrentPricesFn: func(context.Context) (*pricing.Result, error) {
				snap := pricing.MockSnapshot(priceNow.Add(-47 * time.Minute)).WithSource(pricing.ProvenanceCached)
				return &pricing.Result{Snapshot: snap, Age: 47 * time.Minute}, nil
			},
		}

		result := parseJSON(t, doRequest(setupPriceRouter(svc), "GET", "/prices", ""))

		if result["isFresh"] != false {
			t.Errorf("expected isFresh false, got %v", result["isFresh"])
		}
		if result["ageMinutes"].(float64) != 47 {
			t.Errorf("expected ageMinutes 47, got %v", result["ageMinutes"])
		}
		if result["source"] != "cached" {
			t.Errorf("expected source cached, got %v", result["source"])
		}
	})

	t.Run("returns 503 when no data is available", func(t *testing.T) {
		svc := &mockPriceService{
			getCurrentPricesFn: func(context.Context) (*pricing.Result, error) {
				return nil, apperrors.ErrNoDataAvailable
			},
		}

		rec := doRequest(setupPriceRouter(svc), "GET", "/prices", "")

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_DATA_AVAILABLE")
	})
}

func TestPriceHandler_GetPriceHistory(t *testing.T) {
	records := []models.PriceHistory{
		{Date: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), GoldUSD: 65.004, GoldPKR: 18071.118, SilverUSD: 0.8512, SilverPKR: 236.6336},
		{Date: time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), GoldUSD: 64, GoldPKR: 17792, SilverUSD: 0.8, SilverPKR: 222.4},
	}

	t.Run("returns rounded points oldest first", func(t *testing.T) {
		var gotDays int
		svc := &mockPriceService{
			getPriceHistoryFn: func(days int) ([]models.PriceHistory, error) {
				gotDays = days
				return records, nil
			},
		}

		rec := doRequest(setupPriceRouter(svc), "GET", "/prices/history?days=180&currency=USD", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDays != 180 {
			t.Errorf("expected days 180, got %d", gotDays)
		}
		result := parseJSON(t, rec)
		if result["currency"] != "USD" {
			t.Errorf("expected currency USD, got %v", result["currency"])
		}
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 points, got %d", len(data))
		}
		first := data[0].(map[string]interface{})
		if first["date"] != "2024-05-30" {
			t.Errorf("expected oldest point first, got %v", first["date"])
		}
		last := data[1].(map[string]interface{})
		if last["gold"].(float64) != 65 || last["silver"].(float64) != 0.85 {
			t.Errorf("expected rounded prices, got %v", last)
		}
	})

	t.Run("defaults to 30 days in PKR", func(t *testing.T) {
		var gotDays int
		svc := &mockPriceService{
			getPriceHistoryFn: func(days int) ([]models.PriceHistory, error) {
				gotDays = days
				return records[:1], nil
			},
		}

		result := parseJSON(t, doRequest(setupPriceRouter(svc), "GET", "/prices/history", ""))

		if gotDays != 30 {
			t.Errorf("expected default of 30 days, got %d", gotDays)
		}
		if result["currency"] != "PKR" {
			t.Errorf("expected currency PKR, got %v", result["currency"])
		}
		point := result["data"].([]interface{})[0].(map[string]interface{})
		if point["gold"].(float64) != 18071.12 {
			t.Errorf("expected gold 18071.12, got %v", point["gold"])
		}
	})

	t.Run("returns 400 on unsupported window", func(t *testing.T) {
		svc := &mockPriceService{
			getPriceHistoryFn: func(int) ([]models.PriceHistory, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "days must be one of 30, 180 or 365")
			},
		}

		rec := doRequest(setupPriceRouter(svc), "GET", "/prices/history?days=7", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-numeric days", func(t *testing.T) {
		rec := doRequest(setupPriceRouter(&mockPriceService{}), "GET", "/prices/history?days=month", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown currency", func(t *testing.T) {
		rec := doRequest(setupPriceRouter(&mockPriceService{}), "GET", "/prices/history?currency=EUR", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
