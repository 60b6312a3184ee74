// Copyright (c) 2026 Bookvault. All rights reserved.

package book

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngoc/bookvault/pkg/pointer"
)

// fakeRepository keeps books in memory and applies Update with the same
// presence rules as the SQL store.
type fakeRepository struct {
	books map[string]*Book
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: make(map[string]*Book)}
}

func (f *fakeRepository) List(_ context.Context) ([]*Book, error) {
	books := make([]*Book, 0, len(f.books))
	for _, b := range f.books {
		books = append(books, b)
	}
	return books, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Book, error) {
	return f.books[id], nil
}

func (f *fakeRepository) Create(_ context.Context, id string, input CreateInput) (*Book, error) {
	b := &Book{
		ID:          id,
		Title:       input.Title,
		ImageURL:    input.ImageURL,
		FileURL:     input.FileURL,
		Description: input.Description,
		BestSelling: input.BestSelling != nil && *input.BestSelling,
		Recommended: input.Recommended != nil && *input.Recommended,
		Rating:      input.Rating,
		AuthorID:    input.AuthorID,
		Genres:      append([]GenreRef{}, input.Genres...),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if input.ReleasedAt != nil && *input.ReleasedAt != "" {
		parsed, err := time.Parse("2006-01-02", *input.ReleasedAt)
		if err != nil {
			return nil, err
		}
		b.ReleasedAt = &parsed
	}
	f.books[id] = b
	return b, nil
}

func (f *fakeRepository) Update(_ context.Context, id string, update Update) (*Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, errNotFoundForTest
	}

	if update.Title != nil {
		b.Title = *update.Title
	}
	if update.ImageURL != nil {
		b.ImageURL = update.ImageURL
	}
	if update.FileURL != nil {
		b.FileURL = update.FileURL
	}
	if update.Description != nil {
		b.Description = update.Description
	}
	if update.BestSelling != nil {
		b.BestSelling = *update.BestSelling
	}
	if update.Recommended != nil {
		b.Recommended = *update.Recommended
	}
	if update.Rating != nil {
		b.Rating = update.Rating
	}
	if update.AuthorID != nil {
		b.AuthorID = *update.AuthorID
	}
	if update.Genres != nil {
		b.Genres = append([]GenreRef{}, update.Genres...)
	}
	return b, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) (*Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, errNotFoundForTest
	}
	delete(f.books, id)
	return b, nil
}

var errNotFoundForTest = assert.AnError

// fakeClaimer records claimed URLs.
type fakeClaimer struct {
	claimed []string
}

func (f *fakeClaimer) ClaimByURLs(_ context.Context, urls []string) error {
	f.claimed = append(f.claimed, urls...)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo Repository, claimer StagedClaimer) *Service {
	return NewService(repo, claimer, nil, testLogger())
}

const (
	testAuthorID = "018f3b2a-0000-7000-8000-000000000001"
	testGenre1   = "018f3b2a-0000-7000-8000-0000000000a1"
	testGenre2   = "018f3b2a-0000-7000-8000-0000000000a2"
)

func TestServiceCreateBook(t *testing.T) {
	t.Run("valid input creates and claims upload urls", func(t *testing.T) {
		repo := newFakeRepository()
		claimer := &fakeClaimer{}
		service := newTestService(repo, claimer)

		b, err := service.CreateBook(context.Background(), CreateInput{
			Title:    "Moby Dick",
			AuthorID: testAuthorID,
			FileURL:  pointer.To("https://cdn.example.com/books/Moby-Dick/f.epub"),
			ImageURL: pointer.To("https://cdn.example.com/books/Moby-Dick/c.jpg"),
			Genres:   []GenreRef{{ID: testGenre1}, {ID: testGenre2}},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Len(t, b.Genres, 2)
		assert.ElementsMatch(t, claimer.claimed, []string{
			"https://cdn.example.com/books/Moby-Dick/f.epub",
			"https://cdn.example.com/books/Moby-Dick/c.jpg",
		})
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		service := newTestService(newFakeRepository(), &fakeClaimer{})

		_, err := service.CreateBook(context.Background(), CreateInput{AuthorID: testAuthorID})
		require.Error(t, err)
	})

	t.Run("missing author_id is rejected", func(t *testing.T) {
		service := newTestService(newFakeRepository(), &fakeClaimer{})

		_, err := service.CreateBook(context.Background(), CreateInput{Title: "Dune"})
		require.Error(t, err)
	})

	t.Run("rating is stored unvalidated", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, &fakeClaimer{})

		b, err := service.CreateBook(context.Background(), CreateInput{
			Title:    "Dune",
			AuthorID: testAuthorID,
			Rating:   pointer.To(42.0),
		})

		require.NoError(t, err)
		assert.Equal(t, 42.0, *b.Rating)
	})
}

func TestServiceUpdateBook(t *testing.T) {
	seed := func(t *testing.T) (*Service, *fakeRepository, string) {
		t.Helper()
		repo := newFakeRepository()
		service := newTestService(repo, &fakeClaimer{})
		b, err := service.CreateBook(context.Background(), CreateInput{
			Title:       "Moby Dick",
			AuthorID:    testAuthorID,
			BestSelling: pointer.To(true),
			Recommended: pointer.To(true),
			Genres:      []GenreRef{{ID: testGenre1}},
		})
		require.NoError(t, err)
		return service, repo, b.ID
	}

	t.Run("flipping one boolean leaves the other untouched", func(t *testing.T) {
		service, repo, id := seed(t)

		b, err := service.UpdateBook(context.Background(), id, Update{
			Recommended: pointer.To(false),
		})

		require.NoError(t, err)
		assert.False(t, b.Recommended)
		assert.True(t, b.BestSelling)
		assert.Equal(t, "Moby Dick", repo.books[id].Title)
	})

	t.Run("empty genre list replaces a non-empty set", func(t *testing.T) {
		service, _, id := seed(t)

		b, err := service.UpdateBook(context.Background(), id, Update{
			Genres: []GenreRef{},
		})

		require.NoError(t, err)
		assert.Empty(t, b.Genres)
	})

	t.Run("absent genres leave the relation untouched", func(t *testing.T) {
		service, _, id := seed(t)

		b, err := service.UpdateBook(context.Background(), id, Update{
			Title: pointer.To("Moby Dick, Revised"),
		})

		require.NoError(t, err)
		assert.Len(t, b.Genres, 1)
	})

	t.Run("present empty title is rejected", func(t *testing.T) {
		service, _, id := seed(t)

		_, err := service.UpdateBook(context.Background(), id, Update{
			Title: pointer.To(""),
		})
		require.Error(t, err)
	})
}

func TestServiceGetBook(t *testing.T) {
	t.Run("absent book yields nil without error", func(t *testing.T) {
		service := newTestService(newFakeRepository(), &fakeClaimer{})

		b, err := service.GetBook(context.Background(), "018f3b2a-0000-7000-8000-00000000dead")

		require.NoError(t, err)
		assert.Nil(t, b)
	})
}

func TestUpdateDecoding(t *testing.T) {
	// The partial-update contract hinges on JSON presence mapping onto nil
	// versus non-nil slots.
	t.Run("absent fields decode to nil", func(t *testing.T) {
		var update Update
		require.NoError(t, json.Unmarshal([]byte(`{}`), &update))

		assert.Nil(t, update.Title)
		assert.Nil(t, update.Recommended)
		assert.Nil(t, update.Genres)
		assert.Nil(t, update.ReleasedAt)
	})

	t.Run("explicit false decodes to non-nil false", func(t *testing.T) {
		var update Update
		require.NoError(t, json.Unmarshal([]byte(`{"recommended": false}`), &update))

		require.NotNil(t, update.Recommended)
		assert.False(t, *update.Recommended)
	})

	t.Run("empty genre array decodes to non-nil empty slice", func(t *testing.T) {
		var update Update
		require.NoError(t, json.Unmarshal([]byte(`{"genres": []}`), &update))

		require.NotNil(t, update.Genres)
		assert.Empty(t, update.Genres)
	})
}
