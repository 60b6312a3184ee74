// Copyright (c) 2026 Bookvault. All rights reserved.

package genre

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

func (repository *PostgresRepository) List(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.CatalogGenre.ID, schema.CatalogGenre.Title, schema.CatalogGenre.Description,
		schema.CatalogGenre.CreatedAt, schema.CatalogGenre.UpdatedAt,
		schema.CatalogGenre.Table, schema.CatalogGenre.Title,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	genres := make([]*Genre, 0)
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Genre, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogGenre.ID, schema.CatalogGenre.Title, schema.CatalogGenre.Description,
		schema.CatalogGenre.CreatedAt, schema.CatalogGenre.UpdatedAt,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID,
	)

	g := &Genre{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&g.ID, &g.Title, &g.Description, &g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}

	return g, nil
}

func (repository *PostgresRepository) Create(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogGenre.Table,
		schema.CatalogGenre.ID, schema.CatalogGenre.Title, schema.CatalogGenre.Description,
		schema.CatalogGenre.CreatedAt, schema.CatalogGenre.UpdatedAt,
		schema.CatalogGenre.CreatedAt, schema.CatalogGenre.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, g.ID, g.Title, g.Description).
		Scan(&g.CreatedAt, &g.UpdatedAt)

	return dberr.Wrap(err, "create_genre")
}

func (repository *PostgresRepository) Update(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CatalogGenre.Table,
		schema.CatalogGenre.Title, schema.CatalogGenre.Description, schema.CatalogGenre.UpdatedAt,
		schema.CatalogGenre.ID,
		schema.CatalogGenre.CreatedAt, schema.CatalogGenre.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, g.ID, g.Title, g.Description).
		Scan(&g.CreatedAt, &g.UpdatedAt)

	return dberr.Wrap(err, "update_genre")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) (*Genre, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s, %s, %s, %s, %s
	`,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID,
		schema.CatalogGenre.ID, schema.CatalogGenre.Title, schema.CatalogGenre.Description,
		schema.CatalogGenre.CreatedAt, schema.CatalogGenre.UpdatedAt,
	)

	g := &Genre{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&g.ID, &g.Title, &g.Description, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_genre")
	}

	return g, nil
}
