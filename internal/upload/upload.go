// Copyright (c) 2026 Bookvault. All rights reserved.

// Package upload implements the book-file ingestion pipeline: a multipart
// request carrying a book file and a cover image is written to object
// storage under derived keys, and both public URLs are returned for the
// client to carry into the subsequent book create call.
//
// Every successful upload is also recorded in a staging table with a TTL.
// Committing a book claims the staged rows; a background [Sweeper] reclaims
// the objects of uploads that were never committed.
package upload

import (
	"io"
	"time"
)

// FilePart is one file extracted from the multipart form.
type FilePart struct {
	// Name is the client-supplied filename; only its extension is used.
	Name string
	// ContentType is the declared MIME type, possibly empty.
	ContentType string
	// Body streams the file payload.
	Body io.Reader
}

// Result echoes back what the client needs to commit the book record.
type Result struct {
	Message   string `json:"message"`
	BookTitle string `json:"bookTitle"`
	FileURL   string `json:"file_url"`
	CoverURL  string `json:"cover_url"`
}

// StagedUpload tracks an upload that has hit object storage but has not yet
// been referenced by a committed book record.
type StagedUpload struct {
	ID        string    `json:"id"`
	BookTitle string    `json:"book_title"`
	FileKey   string    `json:"file_key"`
	FileURL   string    `json:"file_url"`
	CoverKey  string    `json:"cover_key"`
	CoverURL  string    `json:"cover_url"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
