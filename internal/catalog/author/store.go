// Copyright (c) 2026 Bookvault. All rights reserved.

package author

import "context"

type Repository interface {
	List(context context.Context) ([]*Author, error)
	GetByID(context context.Context, id string) (*Author, error)
	Create(context context.Context, author *Author) error
	Update(context context.Context, author *Author) error
	Delete(context context.Context, id string) (*Author, error)
}
