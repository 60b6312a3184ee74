// Copyright (c) 2026 Bookvault. All rights reserved.

package upload

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/minhngoc/bookvault/internal/platform/apperr"
	"github.com/minhngoc/bookvault/internal/platform/metrics"
	"github.com/minhngoc/bookvault/internal/storage"
	"github.com/minhngoc/bookvault/pkg/keypath"
	"github.com/minhngoc/bookvault/pkg/uuidv7"
)

// Coordinator orchestrates the dual-file upload: key derivation, the two
// object-store writes, and the staging record.
type Coordinator struct {
	uploader storage.Uploader
	staged   Store
	cdnHost  string
	ttl      time.Duration
	logger   *slog.Logger
}

// NewCoordinator constructs a [Coordinator].
//
// uploader may be nil when object storage is not configured; the coordinator
// then reports itself unconfigured and refuses uploads without touching the
// request body.
func NewCoordinator(uploader storage.Uploader, staged Store, cdnHost string, ttl time.Duration, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		uploader: uploader,
		staged:   staged,
		cdnHost:  cdnHost,
		ttl:      ttl,
		logger:   logger,
	}
}

// Configured reports whether the object-store surface is usable.
func (coordinator *Coordinator) Configured() bool {
	return coordinator.uploader != nil && coordinator.cdnHost != ""
}

// Upload writes both files to object storage and stages the result.
//
// The two PUTs run concurrently; both must succeed. On partial failure the
// file that did land is deleted best-effort before the error surfaces, so a
// failed upload leaves no half-pair behind.
func (coordinator *Coordinator) Upload(ctx context.Context, title string, book, cover FilePart) (*Result, error) {
	if !coordinator.Configured() {
		return nil, apperr.NotConfigured("Object storage")
	}

	bookObject := keypath.Derive(coordinator.cdnHost, title, book.Name)
	coverObject := keypath.Derive(coordinator.cdnHost, title, cover.Name)

	// Per-file errors are tracked separately so compensation knows which
	// write actually landed.
	var bookErr, coverErr error

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		bookErr = coordinator.uploader.Put(groupCtx, bookObject.Key, book.Body, book.ContentType)
		return bookErr
	})
	group.Go(func() error {
		coverErr = coordinator.uploader.Put(groupCtx, coverObject.Key, cover.Body, cover.ContentType)
		return coverErr
	})

	if err := group.Wait(); err != nil {
		coordinator.compensate(ctx, bookErr, bookObject.Key, coverErr, coverObject.Key)
		metrics.UploadsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, apperr.StorageFailure(err)
	}

	// Record the staged pair. A failure here must not fail the upload: the
	// files are durable and the client holds the URLs; the row only feeds
	// the orphan sweeper.
	staged := &StagedUpload{
		ID:        uuidv7.New(),
		BookTitle: title,
		FileKey:   bookObject.Key,
		FileURL:   bookObject.URL,
		CoverKey:  coverObject.Key,
		CoverURL:  coverObject.URL,
		ExpiresAt: time.Now().Add(coordinator.ttl),
	}
	if err := coordinator.staged.CreateStaged(ctx, staged); err != nil {
		coordinator.logger.Warn("staged_upload_record_failed",
			slog.String("file_key", staged.FileKey),
			slog.Any("error", err),
		)
	}

	metrics.UploadsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	coordinator.logger.Info("upload_completed",
		slog.String("book_title", title),
		slog.String("file_key", bookObject.Key),
		slog.String("cover_key", coverObject.Key),
	)

	return &Result{
		Message:   "Files uploaded successfully",
		BookTitle: title,
		FileURL:   bookObject.URL,
		CoverURL:  coverObject.URL,
	}, nil
}

// compensate deletes whichever file of the pair was written before the
// other failed. Deletes run on a non-cancelled context since the request
// context may already be dead.
func (coordinator *Coordinator) compensate(ctx context.Context, bookErr error, bookKey string, coverErr error, coverKey string) {
	cleanupCtx := context.WithoutCancel(ctx)

	if bookErr == nil {
		if err := coordinator.uploader.Delete(cleanupCtx, bookKey); err != nil {
			coordinator.logger.Warn("upload_compensation_failed",
				slog.String("key", bookKey), slog.Any("error", err))
		} else {
			metrics.UploadsTotal.WithLabelValues(metrics.OutcomeCompensated).Inc()
		}
	}

	if coverErr == nil {
		if err := coordinator.uploader.Delete(cleanupCtx, coverKey); err != nil {
			coordinator.logger.Warn("upload_compensation_failed",
				slog.String("key", coverKey), slog.Any("error", err))
		} else {
			metrics.UploadsTotal.WithLabelValues(metrics.OutcomeCompensated).Inc()
		}
	}
}
