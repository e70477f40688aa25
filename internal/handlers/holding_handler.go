package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/models"
	"metalfolio/internal/pagination"
	"metalfolio/internal/services"
	"metalfolio/internal/units"
)

// HoldingHandler handles holding-related requests.
type HoldingHandler struct {
	holdingService services.HoldingServicer
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingService services.HoldingServicer) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService}
}

// CreateHoldingRequest represents the request payload for recording a holding.
type CreateHoldingRequest struct {
	Metal         models.Metal    `json:"metal" binding:"required,metal"`
	Purity        models.Purity   `json:"purity" binding:"required,purity"`
	Quantity      float64         `json:"quantity" binding:"required,gt=0"`
	Unit          units.Unit      `json:"unit" binding:"required,unit"`
	PurchasePrice float64         `json:"buy_price" binding:"required,gt=0"`
	Currency      models.Currency `json:"currency" binding:"required,currency"`
	PurchaseDate  string          `json:"buy_date" binding:"required" example:"2024-01-15"`
}

// UpdateHoldingRequest represents the request payload for editing a holding.
type UpdateHoldingRequest struct {
	Metal         *models.Metal    `json:"metal" binding:"omitempty,metal"`
	Purity        *models.Purity   `json:"purity" binding:"omitempty,purity"`
	Quantity      *float64         `json:"quantity" binding:"omitempty,gt=0"`
	Unit          *units.Unit      `json:"unit" binding:"omitempty,unit"`
	PurchasePrice *float64         `json:"buy_price" binding:"omitempty,gt=0"`
	Currency      *models.Currency `json:"currency" binding:"omitempty,currency"`
	PurchaseDate  *string          `json:"buy_date" example:"2024-01-15"`
}

// CreateHolding handles recording a new holding.
// @Summary     Create a holding
// @Description Record a metal purchase for the authenticated user
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateHoldingRequest true "Holding details"
// @Success     201 {object} models.Holding "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [post]
func (h *HoldingHandler) CreateHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	bought, err := parseDate("buy_date", req.PurchaseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.CreateHolding(userID, services.HoldingInput{
		Metal:         req.Metal,
		Purity:        req.Purity,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		Currency:      req.Currency,
		PurchaseDate:  bought,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// GetHoldings handles listing the user's holdings.
// @Summary     Get holdings
// @Description Get a paginated list of holdings, most recently bought first
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       metal     query string false "Filter by metal (gold/silver)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Holding] "Paginated holdings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [get]
func (h *HoldingHandler) GetHoldings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var metal *models.Metal
	if v := c.Query("metal"); v != "" {
		m := models.Metal(v)
		if !m.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "metal must be 'gold' or 'silver'"))
			return
		}
		metal = &m
	}

	result, err := h.holdingService.GetUserHoldings(userID, page, metal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHolding handles fetching a single holding.
// @Summary     Get a holding
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     200 {object} models.Holding "Holding"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [get]
func (h *HoldingHandler) GetHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.GetHoldingByID(userID, holdingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// UpdateHolding handles editing a holding.
// @Summary     Update a holding
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Holding ID"
// @Param       request body UpdateHoldingRequest true "Fields to change"
// @Success     200 {object} models.Holding "Holding updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	upd := services.HoldingUpdate{
		Metal:         req.Metal,
		Purity:        req.Purity,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		Currency:      req.Currency,
	}
	if req.PurchaseDate != nil {
		bought, err := parseDate("buy_date", *req.PurchaseDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		upd.PurchaseDate = &bought
	}

	holding, err := h.holdingService.UpdateHolding(userID, holdingID, upd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// DeleteHolding handles deleting a holding.
// @Summary     Delete a holding
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     200 {object} map[string]string "Holding deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.DeleteHolding(userID, holdingID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Holding deleted successfully"})
}
