// Copyright (c) 2026 Bookvault. All rights reserved.

package genre

import "context"

type Repository interface {
	List(context context.Context) ([]*Genre, error)
	GetByID(context context.Context, id string) (*Genre, error)
	Create(context context.Context, genre *Genre) error
	Update(context context.Context, genre *Genre) error
	Delete(context context.Context, id string) (*Genre, error)
}
