package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metalfolio/internal/services"
)

// PipelineHandler handles machine-to-machine endpoints.
type PipelineHandler struct {
	priceService services.PriceServicer
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(priceService services.PriceServicer) *PipelineHandler {
	return &PipelineHandler{priceService: priceService}
}

// RecordPrices handles storing today's prices in the price history.
// @Summary     Record daily prices
// @Description Fetch current prices and upsert today's price history row
// @Tags        pipeline
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} models.PriceHistory "Recorded prices"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "No price data available"
// @Router      /pipeline/prices/record [post]
func (h *PipelineHandler) RecordPrices(c *gin.Context) {
	record, err := h.priceService.RecordDailyPrices(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"price_history": record})
}
