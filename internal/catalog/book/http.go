// Copyright (c) 2026 Bookvault. All rights reserved.

package book

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
	router.Get("/", handler.listBooks)
	router.Post("/", handler.createBook)
	router.Get("/{id}", handler.getBook)
	router.Put("/{id}", handler.updateBook)
	router.Delete("/{id}", handler.deleteBook)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"books": books})
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	b, err := handler.service.GetBook(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if b == nil {
		respond.Error(writer, request, apperr.NotFound("Book"))
		return
	}

	respond.OK(writer, map[string]any{"book": b})
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	b, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Created successfully",
		"book":    b,
	})
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var update Update
	if err := requestutil.DecodeJSON(request, &update); err != nil {
		respond.Error(writer, request, err)
		return
	}

	b, err := handler.service.UpdateBook(request.Context(), id, update)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"book": b})
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	b, err := handler.service.DeleteBook(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Deleted successfully",
		"book":    b,
	})
}
