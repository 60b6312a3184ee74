// Copyright (c) 2026 Bookvault. All rights reserved.

package book

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(service *Service) http.Handler {
	router := chi.NewRouter()
	router.Route("/book", func(r chi.Router) {
		NewHandler(service).RegisterRoutes(r)
	})
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	envelope := map[string]json.RawMessage{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	}
	return recorder, envelope
}

func TestBookHandler(t *testing.T) {
	t.Run("create returns message and book envelope", func(t *testing.T) {
		router := newTestRouter(newTestService(newFakeRepository(), &fakeClaimer{}))

		recorder, envelope := doJSON(t, router, http.MethodPost, "/book", map[string]any{
			"title":     "Moby Dick",
			"author_id": testAuthorID,
			"genres":    []map[string]string{{"id": testGenre1}},
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `"Created successfully"`, string(envelope["message"]))

		var created Book
		require.NoError(t, json.Unmarshal(envelope["book"], &created))
		assert.Equal(t, "Moby Dick", created.Title)
	})

	t.Run("list wraps books key", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, &fakeClaimer{})
		router := newTestRouter(service)

		doJSON(t, router, http.MethodPost, "/book", map[string]any{
			"title": "Dune", "author_id": testAuthorID,
		})

		recorder, envelope := doJSON(t, router, http.MethodGet, "/book", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		var books []Book
		require.NoError(t, json.Unmarshal(envelope["books"], &books))
		assert.Len(t, books, 1)
	})

	t.Run("get returns identical content on repeated reads", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, &fakeClaimer{})
		router := newTestRouter(service)

		_, createEnvelope := doJSON(t, router, http.MethodPost, "/book", map[string]any{
			"title": "Dune", "author_id": testAuthorID,
		})
		var created Book
		require.NoError(t, json.Unmarshal(createEnvelope["book"], &created))

		first, firstEnvelope := doJSON(t, router, http.MethodGet, "/book/"+created.ID, nil)
		second, secondEnvelope := doJSON(t, router, http.MethodGet, "/book/"+created.ID, nil)

		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusOK, second.Code)
		assert.JSONEq(t, string(firstEnvelope["book"]), string(secondEnvelope["book"]))
	})

	t.Run("get absent book yields 404 with error key", func(t *testing.T) {
		router := newTestRouter(newTestService(newFakeRepository(), &fakeClaimer{}))

		recorder, envelope := doJSON(t, router, http.MethodGet, "/book/018f3b2a-0000-7000-8000-00000000dead", nil)

		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, envelope, "error")
	})

	t.Run("put applies partial update", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, &fakeClaimer{})
		router := newTestRouter(service)

		_, createEnvelope := doJSON(t, router, http.MethodPost, "/book", map[string]any{
			"title": "Dune", "author_id": testAuthorID, "recommended": true, "best_selling": true,
		})
		var created Book
		require.NoError(t, json.Unmarshal(createEnvelope["book"], &created))

		recorder, envelope := doJSON(t, router, http.MethodPut, "/book/"+created.ID, map[string]any{
			"recommended": false,
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		var updated Book
		require.NoError(t, json.Unmarshal(envelope["book"], &updated))
		assert.False(t, updated.Recommended)
		assert.True(t, updated.BestSelling)
	})

	t.Run("delete returns message and the removed book", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, &fakeClaimer{})
		router := newTestRouter(service)

		_, createEnvelope := doJSON(t, router, http.MethodPost, "/book", map[string]any{
			"title": "Dune", "author_id": testAuthorID,
		})
		var created Book
		require.NoError(t, json.Unmarshal(createEnvelope["book"], &created))

		recorder, envelope := doJSON(t, router, http.MethodDelete, "/book/"+created.ID, nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `"Deleted successfully"`, string(envelope["message"]))
		assert.Contains(t, envelope, "book")
		assert.Empty(t, repo.books)
	})
}
