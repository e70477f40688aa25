package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/logger"
	"metalfolio/internal/models"
	"metalfolio/internal/pricing"
)

// HistoryRanges are the supported price history windows, in days.
var HistoryRanges = []int{30, 180, 365}

// priceService serves current prices and records daily price history.
type priceService struct {
	db     *gorm.DB
	source pricing.Source
	now    func() time.Time
}

// NewPriceService creates a new PriceServicer backed by source.
func NewPriceService(db *gorm.DB, source pricing.Source) PriceServicer {
	return &priceService{db: db, source: source, now: time.Now}
}

// GetCurrentPrices returns the current snapshot with its provenance.
func (s *priceService) GetCurrentPrices(ctx context.Context) (*pricing.Result, error) {
	res, err := s.source.GetPrices(ctx)
	if err != nil {
		if errors.Is(err, pricing.ErrNoDataAvailable) {
			return nil, apperrors.Wrap(apperrors.ErrNoDataAvailable, err)
		}
		if errors.Is(err, pricing.ErrSourceUnavailable) {
			return nil, apperrors.Wrap(apperrors.ErrSourceUnavailable, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &res, nil
}

// RecordDailyPrices stores today's prices, replacing any earlier record for
// the same day.
func (s *priceService) RecordDailyPrices(ctx context.Context) (*models.PriceHistory, error) {
	res, err := s.GetCurrentPrices(ctx)
	if err != nil {
		return nil, err
	}
	snap := res.Snapshot

	y, m, d := s.now().UTC().Date()
	record := models.PriceHistory{
		Date:         time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		GoldUSD:      snap.Gold.USD,
		GoldPKR:      snap.Gold.PKR,
		SilverUSD:    snap.Silver.USD,
		SilverPKR:    snap.Silver.PKR,
		ExchangeRate: snap.Rates.PKR,
		Source:       string(snap.Source),
	}

	// One row per day: a concurrent or repeated run for the same date
	// overwrites the prices in place and keeps the original id.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gold_usd", "gold_pkr", "silver_usd", "silver_pkr", "exchange_rate", "source", "updated_at",
			}),
		}).Create(&record).Error
		if err != nil {
			return err
		}
		return tx.Where("date = ?", record.Date).First(&record).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("recorded daily prices",
		"date", record.Date.Format(time.DateOnly),
		"source", record.Source,
		"gold_usd", record.GoldUSD,
		"silver_usd", record.SilverUSD,
		"pkr_per_usd", record.ExchangeRate,
	)
	return &record, nil
}

// GetPriceHistory returns recorded prices for the last days days, oldest first.
func (s *priceService) GetPriceHistory(days int) ([]models.PriceHistory, error) {
	if !validRange(days) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "days must be one of 30, 180 or 365")
	}

	y, m, d := s.now().UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)

	var records []models.PriceHistory
	if err := s.db.Where("date >= ?", from).Order("date ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if records == nil {
		records = []models.PriceHistory{}
	}
	return records, nil
}

func validRange(days int) bool {
	for _, r := range HistoryRanges {
		if days == r {
			return true
		}
	}
	return false
}
