// Copyright (c) 2026 Bookvault. All rights reserved.

package upload

import (
	"context"
	"fmt"
	"time"

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

func (repository *PostgresRepository) CreateStaged(context context.Context, staged *StagedUpload) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		schema.StagedUpload.Table,
		schema.StagedUpload.ID, schema.StagedUpload.BookTitle,
		schema.StagedUpload.FileKey, schema.StagedUpload.FileURL,
		schema.StagedUpload.CoverKey, schema.StagedUpload.CoverURL,
		schema.StagedUpload.ExpiresAt, schema.StagedUpload.CreatedAt,
		schema.StagedUpload.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		staged.ID, staged.BookTitle,
		staged.FileKey, staged.FileURL,
		staged.CoverKey, staged.CoverURL,
		staged.ExpiresAt,
	).Scan(&staged.CreatedAt)

	return dberr.Wrap(err, "create_staged_upload")
}

func (repository *PostgresRepository) ClaimByURLs(context context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ANY($1) OR %s = ANY($1)`,
		schema.StagedUpload.Table, schema.StagedUpload.FileURL, schema.StagedUpload.CoverURL,
	)

	_, err := repository.db.Exec(context, query, urls)
	return dberr.Wrap(err, "claim_staged_uploads")
}

func (repository *PostgresRepository) ListExpired(context context.Context, now time.Time, limit int) ([]*StagedUpload, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s < $1
		ORDER BY %s ASC
		LIMIT $2
	`,
		schema.StagedUpload.ID, schema.StagedUpload.BookTitle,
		schema.StagedUpload.FileKey, schema.StagedUpload.FileURL,
		schema.StagedUpload.CoverKey, schema.StagedUpload.CoverURL,
		schema.StagedUpload.ExpiresAt, schema.StagedUpload.CreatedAt,
		schema.StagedUpload.Table, schema.StagedUpload.ExpiresAt, schema.StagedUpload.ExpiresAt,
	)

	rows, err := repository.db.Query(context, query, now, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_expired_staged_uploads")
	}
	defer rows.Close()

	var expired []*StagedUpload
	for rows.Next() {
		staged := &StagedUpload{}
		if err := rows.Scan(
			&staged.ID, &staged.BookTitle,
			&staged.FileKey, &staged.FileURL,
			&staged.CoverKey, &staged.CoverURL,
			&staged.ExpiresAt, &staged.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_staged_upload")
		}
		expired = append(expired, staged)
	}

	return expired, nil
}

func (repository *PostgresRepository) DeleteStaged(context context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ANY($1)`,
		schema.StagedUpload.Table, schema.StagedUpload.ID,
	)

	_, err := repository.db.Exec(context, query, ids)
	return dberr.Wrap(err, "delete_staged_uploads")
}
