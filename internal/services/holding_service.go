package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/models"
	"metalfolio/internal/pagination"
)

// holdingService handles holding-related business logic.
type holdingService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewHoldingService creates a new HoldingServicer.
func NewHoldingService(db *gorm.DB) HoldingServicer {
	return &holdingService{db: db, now: time.Now}
}

// validateHolding rejects holdings the valuation engine must never see.
func (s *holdingService) validateHolding(h *models.Holding) error {
	switch {
	case !h.Metal.Valid():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported metal")
	case !h.Purity.Valid():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported purity")
	case !h.Unit.Valid():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported unit")
	case !h.Currency.Valid():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported currency")
	case !(h.Quantity > 0):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be greater than zero")
	case !(h.PurchasePrice > 0):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price must be greater than zero")
	case h.PurchaseDate.IsZero():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase date is required")
	case h.PurchaseDate.After(s.latestPurchaseDate()):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase date cannot be in the future")
	}
	return nil
}

// latestPurchaseDate is the start of tomorrow in UTC. Purchase dates are
// calendar dates, and a user east of UTC is already on tomorrow's date.
func (s *holdingService) latestPurchaseDate() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}

// CreateHolding records a new holding for the user.
func (s *holdingService) CreateHolding(userID string, in HoldingInput) (*models.Holding, error) {
	holding := &models.Holding{
		UserID:        userID,
		Metal:         in.Metal,
		Purity:        in.Purity,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		PurchasePrice: in.PurchasePrice,
		Currency:      in.Currency,
		PurchaseDate:  in.PurchaseDate,
	}
	if err := s.validateHolding(holding); err != nil {
		return nil, err
	}

	if err := s.db.Create(holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holding, nil
}

// GetUserHoldings returns a paginated list of the user's holdings, most
// recently bought first, optionally filtered by metal.
func (s *holdingService) GetUserHoldings(userID string, page pagination.PageRequest, metal *models.Metal) (*pagination.PageResponse[models.Holding], error) {
	page.Defaults()

	base := s.db.Model(&models.Holding{}).Where("user_id = ?", userID)
	if metal != nil {
		base = base.Where("metal = ?", *metal)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var holdings []models.Holding
	if err := base.Order("buy_date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(holdings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllUserHoldings returns every holding of the user, oldest purchase first.
func (s *holdingService) GetAllUserHoldings(userID string) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := s.db.Where("user_id = ?", userID).
		Order("buy_date ASC, created_at ASC").
		Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holdings, nil
}

// GetHoldingByID returns one of the user's holdings.
func (s *holdingService) GetHoldingByID(userID, holdingID string) (*models.Holding, error) {
	var holding models.Holding
	if err := s.db.Where("id = ? AND user_id = ?", holdingID, userID).First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &holding, nil
}

// UpdateHolding applies the non-nil fields of upd to one of the user's holdings.
func (s *holdingService) UpdateHolding(userID, holdingID string, upd HoldingUpdate) (*models.Holding, error) {
	holding, err := s.GetHoldingByID(userID, holdingID)
	if err != nil {
		return nil, err
	}

	if upd.Metal != nil {
		holding.Metal = *upd.Metal
	}
	if upd.Purity != nil {
		holding.Purity = *upd.Purity
	}
	if upd.Quantity != nil {
		holding.Quantity = *upd.Quantity
	}
	if upd.Unit != nil {
		holding.Unit = *upd.Unit
	}
	if upd.PurchasePrice != nil {
		holding.PurchasePrice = *upd.PurchasePrice
	}
	if upd.Currency != nil {
		holding.Currency = *upd.Currency
	}
	if upd.PurchaseDate != nil {
		holding.PurchaseDate = *upd.PurchaseDate
	}
	if err := s.validateHolding(holding); err != nil {
		return nil, err
	}

	if err := s.db.Save(holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holding, nil
}

// DeleteHolding permanently removes one of the user's holdings.
func (s *holdingService) DeleteHolding(userID, holdingID string) error {
	result := s.db.Where("id = ? AND user_id = ?", holdingID, userID).Delete(&models.Holding{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}
