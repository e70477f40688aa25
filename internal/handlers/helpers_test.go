package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"metalfolio/internal/logger"
	"metalfolio/internal/middleware"
	"metalfolio/internal/models"
	"metalfolio/internal/pagination"
	"metalfolio/internal/pricing"
	"metalfolio/internal/services"
	"metalfolio/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

const testUserID = "0190b3c4-5d6e-7f80-9a1b-2c3d4e5f6a7b"

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock holding service ---

type mockHoldingService struct {
	createHoldingFn      func(userID string, in services.HoldingInput) (*models.Holding, error)
	getUserHoldingsFn    func(userID string, page pagination.PageRequest, metal *models.Metal) (*pagination.PageResponse[models.Holding], error)
	getAllUserHoldingsFn func(userID string) ([]models.Holding, error)
	getHoldingByIDFn     func(userID, holdingID string) (*models.Holding, error)
	updateHoldingFn      func(userID, holdingID string, upd services.HoldingUpdate) (*models.Holding, error)
	deleteHoldingFn      func(userID, holdingID string) error
}

func (m *mockHoldingService) CreateHolding(userID string, in services.HoldingInput) (*models.Holding, error) {
	if m.createHoldingFn != nil {
		return m.createHoldingFn(userID, in)
	}
	return &models.Holding{}, nil
}

func (m *mockHoldingService) GetUserHoldings(userID string, page pagination.PageRequest, metal *models.Metal) (*pagination.PageResponse[models.Holding], error) {
	if m.getUserHoldingsFn != nil {
		return m.getUserHoldingsFn(userID, page, metal)
	}
	resp := pagination.NewPageResponse([]models.Holding{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockHoldingService) GetAllUserHoldings(userID string) ([]models.Holding, error) {
	if m.getAllUserHoldingsFn != nil {
		return m.getAllUserHoldingsFn(userID)
	}
	return []models.Holding{}, nil
}

func (m *mockHoldingService) GetHoldingByID(userID, holdingID string) (*models.Holding, error) {
	if m.getHoldingByIDFn != nil {
		return m.getHoldingByIDFn(userID, holdingID)
	}
	return &models.Holding{}, nil
}

func (m *mockHoldingService) UpdateHolding(userID, holdingID string, upd services.HoldingUpdate) (*models.Holding, error) {
	if m.updateHoldingFn != nil {
		return m.updateHoldingFn(userID, holdingID, upd)
	}
	return &models.Holding{}, nil
}

func (m *mockHoldingService) DeleteHolding(userID, holdingID string) error {
	if m.deleteHoldingFn != nil {
		return m.deleteHoldingFn(userID, holdingID)
	}
	return nil
}

var _ services.HoldingServicer = (*mockHoldingService)(nil)

// --- mock price service ---

type mockPriceService struct {
	getCurrentPricesFn  func(ctx context.Context) (*pricing.Result, error)
	recordDailyPricesFn func(ctx context.Context) (*models.PriceHistory, error)
	getPriceHistoryFn   func(days int) ([]models.PriceHistory, error)
}

func (m *mockPriceService) GetCurrentPrices(ctx context.Context) (*pricing.Result, error) {
	if m.getCurrentPricesFn != nil {
		return m.getCurrentPricesFn(ctx)
	}
	res := pricing.Result{Snapshot: pricing.MockSnapshot(time.Now())}
	return &res, nil
}

func (m *mockPriceService) RecordDailyPrices(ctx context.Context) (*models.PriceHistory, error) {
	if m.recordDailyPricesFn != nil {
		return m.recordDailyPricesFn(ctx)
	}
	return &models.PriceHistory{}, nil
}

func (m *mockPriceService) GetPriceHistory(days int) ([]models.PriceHistory, error) {
	if m.getPriceHistoryFn != nil {
		return m.getPriceHistoryFn(days)
	}
	return []models.PriceHistory{}, nil
}

var _ services.PriceServicer = (*mockPriceService)(nil)
