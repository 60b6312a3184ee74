// Copyright (c) 2026 Bookvault. All rights reserved.

package book

import (
	"context"
	"log/slog"

	"github.com/minhngoc/bookvault/internal/platform/validate"
	"github.com/minhngoc/bookvault/pkg/uuidv7"
)

// StagedClaimer marks previously staged upload URLs as committed so the
// orphan sweeper leaves their objects alone.
type StagedClaimer interface {
	ClaimByURLs(context context.Context, urls []string) error
}

type Service struct {
	repo   Repository
	staged StagedClaimer
	cache  *Cache
	logger *slog.Logger
}

// NewService constructs the book service. staged and cache may be nil;
// both concerns then silently degrade to direct repository access.
func NewService(repo Repository, staged StagedClaimer, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		staged: staged,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.List(context)
}

// GetBook returns the hydrated book, or (nil, nil) when absent.
func (service *Service) GetBook(context context.Context, id string) (*Book, error) {
	if cached, hit := service.cache.Get(context, id); hit {
		return cached, nil
	}

	b, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}
	if b != nil {
		service.cache.Set(context, b)
	}

	return b, nil
}

// CreateBook commits a new record. The file and image URLs, if carried from
// a prior upload, are claimed out of the staging table on success.
//
// Rating is stored as supplied with no range enforcement; the admin frontend
// owns that check.
func (service *Service) CreateBook(context context.Context, input CreateInput) (*Book, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 500)
	validator.Required(FieldAuthorID, input.AuthorID)
	if input.AuthorID != "" {
		validator.UUID(FieldAuthorID, input.AuthorID)
	}
	for _, genre := range input.Genres {
		validator.Required(FieldGenres, genre.ID)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	b, err := service.repo.Create(context, uuidv7.New(), input)
	if err != nil {
		return nil, err
	}

	service.claimUploads(context, input.FileURL, input.ImageURL)
	service.logger.Info("book_created",
		slog.String("book_id", b.ID),
		slog.String("title", b.Title),
	)

	return b, nil
}

// UpdateBook applies a partial update and returns the new version.
func (service *Service) UpdateBook(context context.Context, id string, update Update) (*Book, error) {
	validator := &validate.Validator{}
	if update.Title != nil {
		validator.Required(FieldTitle, *update.Title).MaxLen(FieldTitle, *update.Title, 500)
	}
	if update.AuthorID != nil {
		validator.UUID(FieldAuthorID, *update.AuthorID)
	}
	for _, genre := range update.Genres {
		validator.Required(FieldGenres, genre.ID)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	b, err := service.repo.Update(context, id, update)
	if err != nil {
		return nil, err
	}

	service.claimUploads(context, update.FileURL, update.ImageURL)
	service.cache.Invalidate(context, id)
	service.logger.Info("book_updated", slog.String("book_id", id))

	return b, nil
}

// DeleteBook removes the record. The underlying object-storage files are
// deliberately left in place.
func (service *Service) DeleteBook(context context.Context, id string) (*Book, error) {
	b, err := service.repo.Delete(context, id)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, id)
	service.logger.Warn("book_deleted", slog.String("book_id", id))

	return b, nil
}

// claimUploads releases the given URLs from upload staging. Best effort:
// the committed record is already durable, so a claim failure only means
// the sweeper may later skip rows it cannot match.
func (service *Service) claimUploads(context context.Context, urls ...*string) {
	if service.staged == nil {
		return
	}

	committed := make([]string, 0, len(urls))
	for _, url := range urls {
		if url != nil && *url != "" {
			committed = append(committed, *url)
		}
	}
	if len(committed) == 0 {
		return
	}

	if err := service.staged.ClaimByURLs(context, committed); err != nil {
		service.logger.Warn("staged_claim_failed", slog.Any("error", err))
	}
}
