// Copyright (c) 2026 Bookvault. All rights reserved.

package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhngoc/bookvault/internal/platform/apperr"
	requestutil "github.com/minhngoc/bookvault/internal/platform/request"
	"github.com/minhngoc/bookvault/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listGenres)
	router.Post("/", handler.createGenre)
	router.Get("/{id}", handler.getGenre)
	router.Put("/{id}", handler.updateGenre)
	router.Delete("/{id}", handler.deleteGenre)
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"genres": genres})
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	g, err := handler.service.GetGenre(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if g == nil {
		respond.Error(writer, request, apperr.NotFound("Genre"))
		return
	}

	respond.OK(writer, map[string]any{"genre": g})
}

func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	var input Genre
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateGenre(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Created successfully",
		"genre":   input,
	})
}

func (handler *Handler) updateGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Genre
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateGenre(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"genre": input})
}

func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	g, err := handler.service.DeleteGenre(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Deleted successfully",
		"genre":   g,
	})
}
