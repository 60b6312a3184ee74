// Copyright (c) 2026 Bookvault. All rights reserved.

package book

import "context"

// Repository is the persistence surface for book records.
type Repository interface {
	// List returns all books with embedded author and genres.
	List(context context.Context) ([]*Book, error)

	// GetByID returns the hydrated book, or (nil, nil) when no such book
	// exists. Absence is an ordinary result here, not an error.
	GetByID(context context.Context, id string) (*Book, error)

	// Create persists a new book under the given id, connecting the genre
	// references in one transaction, and returns the hydrated record.
	Create(context context.Context, id string, input CreateInput) (*Book, error)

	// Update applies the present fields of update and returns the hydrated
	// record. A non-nil Genres slice replaces the relation set entirely.
	Update(context context.Context, id string, update Update) (*Book, error)

	// Delete removes the record and returns it. Object-storage files the
	// record pointed at are left untouched.
	Delete(context context.Context, id string) (*Book, error)
}
