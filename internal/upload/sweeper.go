// Copyright (c) 2026 Bookvault. All rights reserved.

package upload

import (
	"context"
	"log/slog"
	"time"

	"github.com/minhngoc/bookvault/internal/platform/constants"
	"github.com/minhngoc/bookvault/internal/platform/metrics"
	"github.com/minhngoc/bookvault/internal/storage"
)

// Sweeper reclaims uploads that were staged but never committed to a book
// record before their TTL ran out: it deletes the orphaned objects from
// storage, then drops the staged rows.
type Sweeper struct {
	staged   Store
	uploader storage.Uploader
	interval time.Duration
	logger   *slog.Logger
}

// NewSweeper constructs a [Sweeper].
func NewSweeper(staged Store, uploader storage.Uploader, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		staged:   staged,
		uploader: uploader,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps on a fixed interval until ctx is cancelled. Intended to be
// launched as a goroutine from the process entry point.
func (sweeper *Sweeper) Run(ctx context.Context) {
	// Staged rows can only exist if storage was configured at upload time;
	// without a client we could drop rows but never reclaim objects, so do nothing.
	if sweeper.uploader == nil {
		sweeper.logger.Info("upload_sweeper_disabled_no_storage")
		return
	}

	ticker := time.NewTicker(sweeper.interval)
	defer ticker.Stop()

	sweeper.logger.Info("upload_sweeper_started", slog.Duration("interval", sweeper.interval))

	for {
		select {
		case <-ctx.Done():
			sweeper.logger.Info("upload_sweeper_stopped")
			return
		case <-ticker.C:
			sweeper.sweep(ctx)
		}
	}
}

// sweep reclaims one batch of expired staged uploads.
//
// A staged row is dropped only after both of its objects are gone, so a
// failed object delete keeps the row for the next pass instead of leaking
// the object forever.
func (sweeper *Sweeper) sweep(ctx context.Context) {
	expired, err := sweeper.staged.ListExpired(ctx, time.Now(), constants.SweepBatchSize)
	if err != nil {
		sweeper.logger.Error("upload_sweep_list_failed", slog.Any("error", err))
		return
	}
	if len(expired) == 0 {
		return
	}

	reclaimed := make([]string, 0, len(expired))
	for _, staged := range expired {
		if !sweeper.deleteObjects(ctx, staged) {
			continue
		}
		reclaimed = append(reclaimed, staged.ID)
	}

	if len(reclaimed) == 0 {
		return
	}

	if err := sweeper.staged.DeleteStaged(ctx, reclaimed); err != nil {
		sweeper.logger.Error("upload_sweep_delete_rows_failed", slog.Any("error", err))
		return
	}

	metrics.StagedSweepsTotal.Add(float64(len(reclaimed)))
	sweeper.logger.Info("upload_sweep_completed",
		slog.Int("expired", len(expired)),
		slog.Int("reclaimed", len(reclaimed)),
	)
}

// deleteObjects removes both objects of one staged pair; reports whether both
// deletes succeeded.
func (sweeper *Sweeper) deleteObjects(ctx context.Context, staged *StagedUpload) bool {
	ok := true
	for _, key := range []string{staged.FileKey, staged.CoverKey} {
		if err := sweeper.uploader.Delete(ctx, key); err != nil {
			sweeper.logger.Warn("upload_sweep_object_delete_failed",
				slog.String("key", key), slog.Any("error", err))
			ok = false
		}
	}
	return ok
}
