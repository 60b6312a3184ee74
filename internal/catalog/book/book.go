// Copyright (c) 2026 Bookvault. All rights reserved.

// Package book implements the catalog's central aggregate: the book record,
// its embedded author and genre references, and the two-phase create flow
// that links previously uploaded file URLs to a committed record.
package book

import "time"

// AuthorRef is the author projection embedded in book reads.
type AuthorRef struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// GenreRef is the genre projection embedded in book reads. On writes only
// the ID is consumed; Title is ignored.
type GenreRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// Book is the persisted catalog record.
type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	ImageURL    *string    `json:"image_url"`
	FileURL     *string    `json:"file_url"`
	Description *string    `json:"description"`
	BestSelling bool       `json:"best_selling"`
	Recommended bool       `json:"recommended"`
	Rating      *float64   `json:"rating"`
	ReleasedAt  *time.Time `json:"released_at"`
	AuthorID    string     `json:"author_id"`
	Author      *AuthorRef `json:"author,omitempty"`
	Genres      []GenreRef `json:"genres"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateInput carries the full field set for a new book. ReleasedAt is kept
// as the raw date string; the repository parses it on write.
type CreateInput struct {
	Title       string     `json:"title"`
	ImageURL    *string    `json:"image_url"`
	FileURL     *string    `json:"file_url"`
	Description *string    `json:"description"`
	BestSelling *bool      `json:"best_selling"`
	Recommended *bool      `json:"recommended"`
	Rating      *float64   `json:"rating"`
	Genres      []GenreRef `json:"genres"`
	ReleasedAt  *string    `json:"released_at"`
	AuthorID    string     `json:"author_id"`
}

// Update is the explicit optional-field partial update: one slot per mutable
// attribute, nil meaning "leave untouched".
//
// Presence rules mirror the write contract exactly:
//   - Strings, Rating, AuthorID: applied when non-nil.
//   - BestSelling, Recommended: applied when non-nil, including false.
//   - Genres: nil leaves the relation untouched; non-nil (even empty)
//     replaces the book's entire genre set.
//   - ReleasedAt: parsed and applied only when non-nil AND non-empty; an
//     empty string leaves the stored date untouched.
type Update struct {
	Title       *string    `json:"title"`
	ImageURL    *string    `json:"image_url"`
	FileURL     *string    `json:"file_url"`
	Description *string    `json:"description"`
	BestSelling *bool      `json:"best_selling"`
	Recommended *bool      `json:"recommended"`
	Rating      *float64   `json:"rating"`
	Genres      []GenreRef `json:"genres"`
	ReleasedAt  *string    `json:"released_at"`
	AuthorID    *string    `json:"author_id"`
}

// Field names for validation messages.
const (
	FieldTitle    = "title"
	FieldAuthorID = "author_id"
	FieldImageURL = "image_url"
	FieldFileURL  = "file_url"
	FieldGenres   = "genres"
)
