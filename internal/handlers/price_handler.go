package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"metalfolio/internal/charts"
	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/services"
)

// PriceHandler handles current and historical price requests.
type PriceHandler struct {
	priceService services.PriceServicer
	now          func() time.Time
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(priceService services.PriceServicer) *PriceHandler {
	return &PriceHandler{priceService: priceService, now: time.Now}
}

// GetPrices handles fetching the current price snapshot.
// @Summary     Get current prices
// @Description Current per-gram gold and silver prices in USD and PKR, the exchange rate, provenance (live/cached/mock) and freshness
// @Tags        prices
// @Produce     json
// @Success     200 {object} PricesResponse "Current prices"
// @Failure     429 {object} ErrorResponse "Rate limited"
// @Failure     503 {object} ErrorResponse "No price data available"
// @Router      /prices [get]
func (h *PriceHandler) GetPrices(c *gin.Context) {
	res, err := h.priceService.GetCurrentPrices(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPricesResponse(*res, h.now()))
}

// GetPriceHistory handles fetching recorded daily prices.
// @Summary     Get price history
// @Tags        prices
// @Produce     json
// @Param       days     query int    false "Window in days: 30, 180 or 365 (default 30)"
// @Param       currency query string false "USD or PKR (default PKR)"
// @Success     200 {array}  PricePointResponse "Daily prices, oldest first"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /prices/history [get]
func (h *PriceHandler) GetPriceHistory(c *gin.Context) {
	days, err := parseDays(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	currency, err := parseCurrency(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.priceService.GetPriceHistory(days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"currency": currency,
		"days":     days,
		"data":     newPricePoints(charts.PriceHistory(records, currency)),
	})
}

// parseDays reads the "days" query parameter, defaulting to 30.
func parseDays(c *gin.Context) (int, error) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "days must be a number")
	}
	return days, nil
}
