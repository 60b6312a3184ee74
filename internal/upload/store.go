// Copyright (c) 2026 Bookvault. All rights reserved.

package upload

import (
	"context"
	"time"
)

// Store persists staged uploads pending commitment to a book record.
type Store interface {
	// CreateStaged records a fresh upload with its expiry deadline.
	CreateStaged(context context.Context, staged *StagedUpload) error

	// ClaimByURLs removes staged rows whose file or cover URL appears in urls.
	// Called when a book record commits the URLs; claiming an unknown URL is a no-op.
	ClaimByURLs(context context.Context, urls []string) error

	// ListExpired returns up to limit staged uploads whose expiry has passed.
	ListExpired(context context.Context, now time.Time, limit int) ([]*StagedUpload, error)

	// DeleteStaged removes the staged rows with the given ids.
	DeleteStaged(context context.Context, ids []string) error
}
