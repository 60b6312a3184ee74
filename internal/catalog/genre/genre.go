// Copyright (c) 2026 Bookvault. All rights reserved.

// Package genre provides CRUD over the genres a book can relate to.
package genre

import "time"

// Genre is a categorization attribute books relate to many-to-many.
type Genre struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const FieldTitle = "title"
