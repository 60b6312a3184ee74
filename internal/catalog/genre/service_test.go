// Copyright (c) 2026 Bookvault. All rights reserved.

package genre

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngoc/bookvault/internal/platform/apperr"
)

type fakeRepository struct {
	genres map[string]*Genre
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{genres: make(map[string]*Genre)}
}

func (f *fakeRepository) List(_ context.Context) ([]*Genre, error) {
	genres := make([]*Genre, 0, len(f.genres))
	for _, g := range f.genres {
		genres = append(genres, g)
	}
	return genres, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Genre, error) {
	return f.genres[id], nil
}

func (f *fakeRepository) Create(_ context.Context, g *Genre) error {
	f.genres[g.ID] = g
	return nil
}

func (f *fakeRepository) Update(_ context.Context, g *Genre) error {
	if _, ok := f.genres[g.ID]; !ok {
		return apperr.NotFound("Genre")
	}
	f.genres[g.ID] = g
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) (*Genre, error) {
	g, ok := f.genres[id]
	if !ok {
		return nil, apperr.NotFound("Genre")
	}
	delete(f.genres, id)
	return g, nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestGenreService(t *testing.T) {
	t.Run("create assigns id and persists", func(t *testing.T) {
		service, repo := newTestService()

		g := &Genre{Title: "Science Fiction"}
		require.NoError(t, service.CreateGenre(context.Background(), g))

		assert.NotEmpty(t, g.ID)
		assert.Contains(t, repo.genres, g.ID)
	})

	t.Run("create rejects empty title", func(t *testing.T) {
		service, _ := newTestService()

		err := service.CreateGenre(context.Background(), &Genre{})
		require.Error(t, err)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		service, repo := newTestService()

		g := &Genre{Title: "Sci-Fi"}
		require.NoError(t, service.CreateGenre(context.Background(), g))

		updated := &Genre{Title: "Science Fiction"}
		require.NoError(t, service.UpdateGenre(context.Background(), g.ID, updated))

		assert.Equal(t, "Science Fiction", repo.genres[g.ID].Title)
	})

	t.Run("get absent genre yields nil without error", func(t *testing.T) {
		service, _ := newTestService()

		g, err := service.GetGenre(context.Background(), "018f3b2a-0000-7000-8000-00000000dead")
		require.NoError(t, err)
		assert.Nil(t, g)
	})
}
