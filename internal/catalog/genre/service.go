// Copyright (c) 2026 Bookvault. All rights reserved.

package genre

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

func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.List(context)
}

// GetGenre returns the genre, or (nil, nil) when absent.
func (service *Service) GetGenre(context context.Context, id string) (*Genre, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) CreateGenre(context context.Context, g *Genre) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, g.Title).MaxLen(FieldTitle, g.Title, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	g.ID = uuidv7.New()
	if err := service.repo.Create(context, g); err != nil {
		return err
	}

	service.logger.Info("genre_created", slog.String("genre_id", g.ID), slog.String("title", g.Title))
	return nil
}

func (service *Service) UpdateGenre(context context.Context, id string, g *Genre) error {
	g.ID = id

	validator := &validate.Validator{}
	validator.Required(FieldTitle, g.Title).MaxLen(FieldTitle, g.Title, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, g); err != nil {
		return err
	}

	service.logger.Info("genre_updated", slog.String("genre_id", id))
	return nil
}

// DeleteGenre removes the genre; junction rows cascade away with it.
func (service *Service) DeleteGenre(context context.Context, id string) (*Genre, error) {
	g, err := service.repo.Delete(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Warn("genre_deleted", slog.String("genre_id", id))
	return g, nil
}
