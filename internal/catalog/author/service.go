// Copyright (c) 2026 Bookvault. All rights reserved.

package author

import (
	"context"
	"log/slog"

	"github.com/minhngoc/bookvault/internal/platform/validate"
	"github.com/minhngoc/bookvault/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.List(context)
}

// GetAuthor returns the author, or (nil, nil) when absent.
func (service *Service) GetAuthor(context context.Context, id string) (*Author, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) CreateAuthor(context context.Context, a *Author) error {
	if err := validateAuthor(a); err != nil {
		return err
	}

	a.ID = uuidv7.New()
	if err := service.repo.Create(context, a); err != nil {
		return err
	}

	service.logger.Info("author_created", slog.String("author_id", a.ID), slog.String("full_name", a.FullName))
	return nil
}

func (service *Service) UpdateAuthor(context context.Context, id string, a *Author) error {
	a.ID = id
	if err := validateAuthor(a); err != nil {
		return err
	}

	if err := service.repo.Update(context, a); err != nil {
		return err
	}

	service.logger.Info("author_updated", slog.String("author_id", id))
	return nil
}

// DeleteAuthor removes the author. A delete of an author still referenced by
// books surfaces the foreign-key violation from the store.
func (service *Service) DeleteAuthor(context context.Context, id string) (*Author, error) {
	a, err := service.repo.Delete(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id))
	return a, nil
}

func validateAuthor(a *Author) error {
	validator := &validate.Validator{}
	validator.Required(FieldFirstName, a.FirstName).MaxLen(FieldFirstName, a.FirstName, 200)
	validator.Required(FieldLastName, a.LastName).MaxLen(FieldLastName, a.LastName, 200)
	validator.Required(FieldFullName, a.FullName).MaxLen(FieldFullName, a.FullName, 400)
	return validator.Err()
}
