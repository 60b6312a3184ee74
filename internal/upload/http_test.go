// Copyright (c) 2026 Bookvault. All rights reserved.

package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRequest(t *testing.T, fields map[string]string, files map[string][2]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	for field, value := range fields {
		require.NoError(t, form.WriteField(field, value))
	}
	for field, nameAndContent := range files {
		part, err := form.CreateFormFile(field, nameAndContent[0])
		require.NoError(t, err)
		_, err = part.Write([]byte(nameAndContent[1]))
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/file/upload", body)
	request.Header.Set("Content-Type", form.FormDataContentType())
	return request
}

func newTestRouter(coordinator *Coordinator) http.Handler {
	router := chi.NewRouter()
	router.Route("/file", func(r chi.Router) {
		NewHandler(coordinator).RegisterRoutes(r)
	})
	return router
}

func TestUploadHandler(t *testing.T) {
	t.Run("success returns message and both urls", func(t *testing.T) {
		uploader := newFakeUploader()
		coordinator := NewCoordinator(uploader, &fakeStagedStore{}, "cdn.example.com", time.Hour, testLogger())

		request := newUploadRequest(t,
			map[string]string{"book-title": "Moby Dick"},
			map[string][2]string{
				"book-file":  {"moby.epub", "book-bytes"},
				"cover-file": {"moby.jpg", "cover-bytes"},
			})
		recorder := httptest.NewRecorder()
		newTestRouter(coordinator).ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, "Files uploaded successfully", payload["message"])
		assert.Equal(t, "Moby Dick", payload["bookTitle"])
		assert.Contains(t, payload["file_url"], "books/Moby-Dick/")
		assert.Contains(t, payload["cover_url"], "books/Moby-Dick/")
	})

	t.Run("missing cover-file yields 400 and no object writes", func(t *testing.T) {
		uploader := newFakeUploader()
		coordinator := NewCoordinator(uploader, &fakeStagedStore{}, "cdn.example.com", time.Hour, testLogger())

		request := newUploadRequest(t,
			map[string]string{"book-title": "Moby Dick"},
			map[string][2]string{
				"book-file": {"moby.epub", "book-bytes"},
			})
		recorder := httptest.NewRecorder()
		newTestRouter(coordinator).ServeHTTP(recorder, request)

		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Contains(t, payload, "error")
		assert.Empty(t, uploader.puts)
	})

	t.Run("missing book-title yields 400", func(t *testing.T) {
		uploader := newFakeUploader()
		coordinator := NewCoordinator(uploader, &fakeStagedStore{}, "cdn.example.com", time.Hour, testLogger())

		request := newUploadRequest(t,
			map[string]string{},
			map[string][2]string{
				"book-file":  {"a.epub", "a"},
				"cover-file": {"b.jpg", "b"},
			})
		recorder := httptest.NewRecorder()
		newTestRouter(coordinator).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, uploader.puts)
	})

	t.Run("unconfigured storage yields 500 before parsing", func(t *testing.T) {
		coordinator := NewCoordinator(nil, &fakeStagedStore{}, "", time.Hour, testLogger())

		// Deliberately broken body: it must never be read.
		request := httptest.NewRequest(http.MethodPost, "/file/upload", bytes.NewBufferString("not-multipart"))
		request.Header.Set("Content-Type", "multipart/form-data; boundary=missing")

		recorder := httptest.NewRecorder()
		newTestRouter(coordinator).ServeHTTP(recorder, request)

		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Contains(t, payload, "error")
		assert.Equal(t, "NOT_CONFIGURED", payload["code"])
	})

	t.Run("storage failure yields 500 with cause", func(t *testing.T) {
		uploader := newFakeUploader()
		uploader.failFunc = func(string) error { return assert.AnError }
		coordinator := NewCoordinator(uploader, &fakeStagedStore{}, "cdn.example.com", time.Hour, testLogger())

		request := newUploadRequest(t,
			map[string]string{"book-title": "Dune"},
			map[string][2]string{
				"book-file":  {"a.epub", "a"},
				"cover-file": {"b.jpg", "b"},
			})
		recorder := httptest.NewRecorder()
		newTestRouter(coordinator).ServeHTTP(recorder, request)

		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, "STORAGE_FAILURE", payload["code"])
		assert.Contains(t, payload["error"], "File upload failed")
	})
}
