package scheduler

import (
	"context"

	"metalfolio/internal/logger"
	"metalfolio/internal/services"
)

// PriceHistoryJob records the day's prices into price history.
type PriceHistoryJob struct {
	prices services.PriceServicer
}

// NewPriceHistoryJob creates a PriceHistoryJob.
func NewPriceHistoryJob(prices services.PriceServicer) *PriceHistoryJob {
	return &PriceHistoryJob{prices: prices}
}

// Name returns the job name
func (j *PriceHistoryJob) Name() string {
	return "price_history"
}

// Run upserts today's price history row from the current snapshot.
func (j *PriceHistoryJob) Run(ctx context.Context) error {
	record, err := j.prices.RecordDailyPrices(ctx)
	if err != nil {
		return err
	}
	logger.Named("scheduler").Infow("Recorded daily prices",
		"date", record.Date.Format("2006-01-02"),
		"source", record.Source,
	)
	return nil
}
