package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type overdueExpirer interface {
	ExpireOverdue(ctx context.Context) (*domain.ExpiryReport, error)
}

// Scheduler periodically expires slips past valid_until and bookings past
// end_time, returning their units to the ledger. The first sweep runs on
// start.
type Scheduler struct {
	slipService overdueExpirer
	interval    time.Duration
	logger      logger.Logger
}

func New(
	slipService overdueExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		slipService: slipService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	started := time.Now()
	report, err := s.slipService.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue slips and bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, sl := range report.Slips {
		s.logger.Info("slip expired",
			logger.String("slip_id", sl.ID),
			logger.String("slip_number", sl.SlipNumber),
			logger.String("spot_id", sl.ParkingSpotID),
		)
	}
	for _, b := range report.Bookings {
		s.logger.Info("booking ended",
			logger.String("booking_id", b.ID),
			logger.String("spot_id", b.ParkingSpotID),
		)
	}

	s.logger.Debug("overdue sweep finished",
		logger.Int("expired", len(report.Slips)+len(report.Bookings)),
		logger.Duration("took", time.Since(started)),
	)
}
