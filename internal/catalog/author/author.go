// Copyright (c) 2026 Bookvault. All rights reserved.

// Package author provides CRUD over the writers referenced by book records.
package author

import "time"

// Author represents the writer of one or more books.
type Author struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Field names for validation messages.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldFullName  = "full_name"
)
