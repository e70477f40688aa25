package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"metalfolio/internal/services"
)

// PortfolioHandler handles portfolio valuation requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	now              func() time.Time
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, now: time.Now}
}

// GetPortfolio handles valuing the user's holdings.
// @Summary     Get portfolio valuation
// @Description Totals, per-metal summaries and per-holding figures, with the prices used
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       currency query string false "USD or PKR (default PKR)"
// @Success     200 {object} PortfolioResponse "Portfolio"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "No price data available"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	currency, err := parseCurrency(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.portfolioService.GetPortfolio(c.Request.Context(), userID, currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPortfolioResponse(report, h.now()))
}

// GetCharts handles fetching every chart series for the user's portfolio.
// @Summary     Get portfolio charts
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       currency query string false "USD or PKR (default PKR)"
// @Param       days     query int    false "Price history window: 30, 180 or 365 (default 30)"
// @Success     200 {object} ChartsResponse "Chart series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "No price data available"
// @Router      /portfolio/charts [get]
func (h *PortfolioHandler) GetCharts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	currency, err := parseCurrency(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	days, err := parseDays(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.portfolioService.GetCharts(c.Request.Context(), userID, currency, days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newChartsResponse(result, h.now()))
}
