package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/toynest/toynest/internal/market/store"
)

// HousekeepingService periodically clears expired reset tokens so stale
// fingerprints don't accumulate on accounts.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup clears reset-token pairs whose expiry has passed. An expired pair
// is already unusable; this just removes the leftovers.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	n, err := s.Store.Accounts().ClearExpiredResetTokens(ctx, time.Now().UTC())
	if err != nil {
		s.Logger.Error("failed to clear expired reset tokens", "error", err)
		return
	}
	if n > 0 {
		s.Logger.Info("cleared expired reset tokens", "count", n)
	}
}
