// Copyright (c) 2026 Bookvault. All rights reserved.

package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhngoc/bookvault/internal/platform/apperr"
	"github.com/minhngoc/bookvault/internal/platform/constants"
	"github.com/minhngoc/bookvault/internal/platform/respond"
	"github.com/minhngoc/bookvault/internal/platform/validate"
)

type Handler struct {
	coordinator *Coordinator
}

func NewHandler(coordinator *Coordinator) *Handler {
	return &Handler{coordinator: coordinator}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/upload", handler.upload)
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	// Refuse before touching the body: an unconfigured store is a deployment
	// fault and parsing a multi-hundred-megabyte form first would waste it all.
	if !handler.coordinator.Configured() {
		respond.Error(writer, request, apperr.NotConfigured("Object storage"))
		return
	}

	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)
	if err := request.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart form data"))
		return
	}

	bookFile, bookHeader, bookErr := request.FormFile(constants.FieldBookFile)
	if bookErr == nil {
		defer bookFile.Close()
	}
	coverFile, coverHeader, coverErr := request.FormFile(constants.FieldCoverFile)
	if coverErr == nil {
		defer coverFile.Close()
	}
	title := request.FormValue(constants.FieldBookTitle)

	validator := &validate.Validator{}
	validator.Custom(constants.FieldBookFile, bookErr != nil, "This file is required")
	validator.Custom(constants.FieldCoverFile, coverErr != nil, "This file is required")
	validator.Required(constants.FieldBookTitle, title)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.coordinator.Upload(request.Context(), title,
		FilePart{
			Name:        bookHeader.Filename,
			ContentType: bookHeader.Header.Get("Content-Type"),
			Body:        bookFile,
		},
		FilePart{
			Name:        coverHeader.Filename,
			ContentType: coverHeader.Header.Get("Content-Type"),
			Body:        coverFile,
		},
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
