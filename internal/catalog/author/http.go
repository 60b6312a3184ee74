// Copyright (c) 2026 Bookvault. All rights reserved.

package author

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
	router.Get("/", handler.listAuthors)
	router.Post("/", handler.createAuthor)
	router.Get("/{id}", handler.getAuthor)
	router.Put("/{id}", handler.updateAuthor)
	router.Delete("/{id}", handler.deleteAuthor)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"authors": authors})
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	a, err := handler.service.GetAuthor(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if a == nil {
		respond.Error(writer, request, apperr.NotFound("Author"))
		return
	}

	respond.OK(writer, map[string]any{"author": a})
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var input Author
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAuthor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Created successfully",
		"author":  input,
	})
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Author
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAuthor(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"author": input})
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	a, err := handler.service.DeleteAuthor(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Deleted successfully",
		"author":  a,
	})
}
