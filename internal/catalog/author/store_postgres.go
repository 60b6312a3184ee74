// Copyright (c) 2026 Bookvault. All rights reserved.

package author

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhngoc/bookvault/internal/platform/database/schema"
	"github.com/minhngoc/bookvault/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.FirstName, schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.FullName, schema.CatalogAuthor.Description,
		schema.CatalogAuthor.CreatedAt, schema.CatalogAuthor.UpdatedAt,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.FullName,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := make([]*Author, 0)
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.FullName, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.FirstName, schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.FullName, schema.CatalogAuthor.Description,
		schema.CatalogAuthor.CreatedAt, schema.CatalogAuthor.UpdatedAt,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.ID,
	)

	a := &Author{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.FullName, &a.Description, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}

	return a, nil
}

func (repository *PostgresRepository) Create(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.FirstName, schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.FullName, schema.CatalogAuthor.Description,
		schema.CatalogAuthor.CreatedAt, schema.CatalogAuthor.UpdatedAt,
		schema.CatalogAuthor.CreatedAt, schema.CatalogAuthor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.FirstName, a.LastName, a.FullName, a.Description,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) Update(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.FirstName, schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.FullName, schema.CatalogAuthor.Description,
		schema.CatalogAuthor.UpdatedAt,
		schema.CatalogAuthor.ID,
		schema.CatalogAuthor.CreatedAt, schema.CatalogAuthor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.FirstName, a.LastName, a.FullName, a.Description,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "update_author")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s, %s, %s, %s, %s, %s, %s
	`,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.ID,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.FirstName, schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.FullName, schema.CatalogAuthor.Description,
		schema.CatalogAuthor.CreatedAt, schema.CatalogAuthor.UpdatedAt,
	)

	a := &Author{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.FullName, &a.Description, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_author")
	}

	return a, nil
}
