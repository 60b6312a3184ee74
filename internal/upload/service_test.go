// Copyright (c) 2026 Bookvault. All rights reserved.

package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader records puts and deletes; failKeys makes matching puts fail.
type fakeUploader struct {
	mu       sync.Mutex
	puts     map[string]string // key -> payload
	deletes  []string
	failFunc func(key string) error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{puts: make(map[string]string)}
}

func (f *fakeUploader) Put(_ context.Context, key string, body io.Reader, _ string) error {
	if f.failFunc != nil {
		if err := f.failFunc(key); err != nil {
			return err
		}
	}

	payload, _ := io.ReadAll(body)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts[key] = string(payload)
	return nil
}

func (f *fakeUploader) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, key)
	delete(f.puts, key)
	return nil
}

// fakeStagedStore records staged rows in memory.
type fakeStagedStore struct {
	mu      sync.Mutex
	rows    []*StagedUpload
	failing bool
}

func (f *fakeStagedStore) CreateStaged(_ context.Context, staged *StagedUpload) error {
	if f.failing {
		return errors.New("staging table unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, staged)
	return nil
}

func (f *fakeStagedStore) ClaimByURLs(_ context.Context, urls []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.rows[:0]
	for _, row := range f.rows {
		claimed := false
		for _, url := range urls {
			if row.FileURL == url || row.CoverURL == url {
				claimed = true
				break
			}
		}
		if !claimed {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeStagedStore) ListExpired(_ context.Context, now time.Time, limit int) ([]*StagedUpload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var expired []*StagedUpload
	for _, row := range f.rows {
		if row.ExpiresAt.Before(now) && len(expired) < limit {
			expired = append(expired, row)
		}
	}
	return expired, nil
}

func (f *fakeStagedStore) DeleteStaged(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.rows[:0]
	for _, row := range f.rows {
		remove := false
		for _, id := range ids {
			if row.ID == id {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func part(name, content string) FilePart {
	return FilePart{Name: name, ContentType: "application/octet-stream", Body: strings.NewReader(content)}
}

func TestCoordinatorUpload(t *testing.T) {
	t.Run("both files land and result carries both urls", func(t *testing.T) {
		uploader := newFakeUploader()
		staged := &fakeStagedStore{}
		coordinator := NewCoordinator(uploader, staged, "cdn.example.com", time.Hour, testLogger())

		result, err := coordinator.Upload(context.Background(), "Moby Dick",
			part("moby.epub", "book-bytes"), part("moby.jpg", "cover-bytes"))

		require.NoError(t, err)
		assert.Equal(t, "Moby Dick", result.BookTitle)
		assert.Contains(t, result.FileURL, "https://cdn.example.com/books/Moby-Dick/")
		assert.Contains(t, result.CoverURL, "https://cdn.example.com/books/Moby-Dick/")
		assert.NotEqual(t, result.FileURL, result.CoverURL)
		assert.Len(t, uploader.puts, 2)
	})

	t.Run("staged row recorded with ttl", func(t *testing.T) {
		uploader := newFakeUploader()
		staged := &fakeStagedStore{}
		coordinator := NewCoordinator(uploader, staged, "cdn.example.com", time.Hour, testLogger())

		before := time.Now()
		result, err := coordinator.Upload(context.Background(), "Dune",
			part("dune.epub", "a"), part("dune.png", "b"))

		require.NoError(t, err)
		require.Len(t, staged.rows, 1)
		row := staged.rows[0]
		assert.Equal(t, "Dune", row.BookTitle)
		assert.Equal(t, result.FileURL, row.FileURL)
		assert.Equal(t, result.CoverURL, row.CoverURL)
		assert.True(t, row.ExpiresAt.After(before.Add(59*time.Minute)))
	})

	t.Run("partial failure compensates the file that landed", func(t *testing.T) {
		uploader := newFakeUploader()
		uploader.failFunc = func(key string) error {
			if strings.HasSuffix(key, ".jpg") {
				return errors.New("bucket rejected write")
			}
			return nil
		}
		staged := &fakeStagedStore{}
		coordinator := NewCoordinator(uploader, staged, "cdn.example.com", time.Hour, testLogger())

		_, err := coordinator.Upload(context.Background(), "Moby Dick",
			part("moby.epub", "book"), part("moby.jpg", "cover"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket rejected write")
		// The successful book-file write must have been rolled back.
		assert.Empty(t, uploader.puts)
		assert.Empty(t, staged.rows)
	})

	t.Run("unconfigured coordinator refuses without writes", func(t *testing.T) {
		staged := &fakeStagedStore{}
		coordinator := NewCoordinator(nil, staged, "", time.Hour, testLogger())

		assert.False(t, coordinator.Configured())

		_, err := coordinator.Upload(context.Background(), "Dune",
			part("a.epub", "a"), part("b.jpg", "b"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("staging failure does not fail the upload", func(t *testing.T) {
		uploader := newFakeUploader()
		staged := &fakeStagedStore{failing: true}
		coordinator := NewCoordinator(uploader, staged, "cdn.example.com", time.Hour, testLogger())

		result, err := coordinator.Upload(context.Background(), "Dune",
			part("dune.epub", "a"), part("dune.png", "b"))

		require.NoError(t, err)
		assert.NotEmpty(t, result.FileURL)
		assert.Len(t, uploader.puts, 2)
	})
}

func TestSweeper(t *testing.T) {
	t.Run("expired rows are reclaimed with their objects", func(t *testing.T) {
		uploader := newFakeUploader()
		uploader.puts["books/Dune/a.epub"] = "a"
		uploader.puts["books/Dune/b.png"] = "b"

		staged := &fakeStagedStore{rows: []*StagedUpload{
			{
				ID:        "expired-1",
				FileKey:   "books/Dune/a.epub",
				CoverKey:  "books/Dune/b.png",
				ExpiresAt: time.Now().Add(-time.Minute),
			},
			{
				ID:        "fresh-1",
				FileKey:   "books/Moby/c.epub",
				CoverKey:  "books/Moby/d.png",
				ExpiresAt: time.Now().Add(time.Hour),
			},
		}}

		sweeper := NewSweeper(staged, uploader, time.Minute, testLogger())
		sweeper.sweep(context.Background())

		assert.Empty(t, uploader.puts)
		assert.ElementsMatch(t, uploader.deletes, []string{"books/Dune/a.epub", "books/Dune/b.png"})
		require.Len(t, staged.rows, 1)
		assert.Equal(t, "fresh-1", staged.rows[0].ID)
	})

	t.Run("committed urls are claimed and never swept", func(t *testing.T) {
		uploader := newFakeUploader()
		staged := &fakeStagedStore{rows: []*StagedUpload{
			{
				ID:        "committed-1",
				FileURL:   "https://cdn.example.com/books/Dune/a.epub",
				CoverURL:  "https://cdn.example.com/books/Dune/b.png",
				ExpiresAt: time.Now().Add(-time.Minute),
			},
		}}

		// The book commit claims the URLs before the sweeper's next pass.
		err := staged.ClaimByURLs(context.Background(), []string{"https://cdn.example.com/books/Dune/a.epub"})
		require.NoError(t, err)

		sweeper := NewSweeper(staged, uploader, time.Minute, testLogger())
		sweeper.sweep(context.Background())

		assert.Empty(t, uploader.deletes)
		assert.Empty(t, staged.rows)
	})
}
