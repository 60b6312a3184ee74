// Copyright (c) 2026 Bookvault. All rights reserved.

package book

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhngoc/bookvault/internal/platform/apperr"
	"github.com/minhngoc/bookvault/internal/platform/database/schema"
	"github.com/minhngoc/bookvault/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectQuery builds the hydrating SELECT: all book columns, the genre set
// aggregated to JSON in a sub-select, and the author joined for display.
func selectQuery(where string) string {
	return fmt.Sprintf(`
		SELECT
			b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', g.%s, 'title', g.%s))
				FROM %s g
				JOIN %s bg ON g.%s = bg.%s
				WHERE bg.%s = b.%s
			), '[]') AS genres,
			a.%s, a.%s
		FROM %s b
		LEFT JOIN %s a ON b.%s = a.%s
		%s
	`,
		schema.CatalogBook.ID, schema.CatalogBook.Title, schema.CatalogBook.ImageURL,
		schema.CatalogBook.FileURL, schema.CatalogBook.Description, schema.CatalogBook.BestSelling,
		schema.CatalogBook.Recommended, schema.CatalogBook.Rating, schema.CatalogBook.ReleasedAt,
		schema.CatalogBook.AuthorID, schema.CatalogBook.CreatedAt, schema.CatalogBook.UpdatedAt,
		schema.CatalogGenre.ID, schema.CatalogGenre.Title,
		schema.CatalogGenre.Table,
		schema.BookGenre.Table, schema.CatalogGenre.ID, schema.BookGenre.GenreID,
		schema.BookGenre.BookID, schema.CatalogBook.ID,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.FullName,
		schema.CatalogBook.Table,
		schema.CatalogAuthor.Table, schema.CatalogBook.AuthorID, schema.CatalogAuthor.ID,
		where,
	)
}

// scanBook reads one hydrated row produced by [selectQuery].
func scanBook(row pgx.Row) (*Book, error) {
	b := &Book{}
	var genresJSON []byte
	var authorID, authorName *string

	err := row.Scan(
		&b.ID, &b.Title, &b.ImageURL, &b.FileURL, &b.Description,
		&b.BestSelling, &b.Recommended, &b.Rating, &b.ReleasedAt,
		&b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
		&genresJSON, &authorID, &authorName,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(genresJSON, &b.Genres); err != nil {
		return nil, fmt.Errorf("postgres: failed to decode genres: %w", err)
	}
	if authorID != nil {
		b.Author = &AuthorRef{ID: *authorID, FullName: *authorName}
	}

	return b, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Book, error) {
	query := selectQuery(fmt.Sprintf("ORDER BY b.%s DESC", schema.CatalogBook.CreatedAt))

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := make([]*Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	return books, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Book, error) {
	query := selectQuery(fmt.Sprintf("WHERE b.%s = $1", schema.CatalogBook.ID))

	b, err := scanBook(repository.db.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		// Absence is an ordinary answer for reads, not a failure.
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}

	return b, nil
}

func (repository *PostgresRepository) Create(context context.Context, id string, input CreateInput) (*Book, error) {
	releasedAt, err := parseReleaseDate(input.ReleasedAt)
	if err != nil {
		return nil, err
	}

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "create_book_begin")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`,
		schema.CatalogBook.Table,
		schema.CatalogBook.ID, schema.CatalogBook.Title, schema.CatalogBook.ImageURL,
		schema.CatalogBook.FileURL, schema.CatalogBook.Description, schema.CatalogBook.BestSelling,
		schema.CatalogBook.Recommended, schema.CatalogBook.Rating, schema.CatalogBook.ReleasedAt,
		schema.CatalogBook.AuthorID, schema.CatalogBook.CreatedAt, schema.CatalogBook.UpdatedAt,
	)

	_, err = transaction.Exec(context, query,
		id, input.Title, input.ImageURL, input.FileURL, input.Description,
		boolValue(input.BestSelling), boolValue(input.Recommended),
		input.Rating, releasedAt, input.AuthorID,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "create_book")
	}

	if err := replaceGenres(context, transaction, id, genreIDs(input.Genres)); err != nil {
		return nil, err
	}

	if err := transaction.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "create_book_commit")
	}

	return repository.GetByID(context, id)
}

func (repository *PostgresRepository) Update(context context.Context, id string, update Update) (*Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()",
		schema.CatalogBook.Table, schema.CatalogBook.UpdatedAt))

	var args []any
	argID := 1

	applyColumn := func(column string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	// Presence is the pointer being non-nil, never the value being truthy,
	// so booleans can be flipped to false through the same path.
	if update.Title != nil {
		applyColumn(schema.CatalogBook.Title, *update.Title)
	}
	if update.ImageURL != nil {
		applyColumn(schema.CatalogBook.ImageURL, *update.ImageURL)
	}
	if update.FileURL != nil {
		applyColumn(schema.CatalogBook.FileURL, *update.FileURL)
	}
	if update.Description != nil {
		applyColumn(schema.CatalogBook.Description, *update.Description)
	}
	if update.BestSelling != nil {
		applyColumn(schema.CatalogBook.BestSelling, *update.BestSelling)
	}
	if update.Recommended != nil {
		applyColumn(schema.CatalogBook.Recommended, *update.Recommended)
	}
	if update.Rating != nil {
		applyColumn(schema.CatalogBook.Rating, *update.Rating)
	}
	if update.AuthorID != nil {
		applyColumn(schema.CatalogBook.AuthorID, *update.AuthorID)
	}

	// An empty date string leaves the stored value untouched.
	if update.ReleasedAt != nil && *update.ReleasedAt != "" {
		releasedAt, err := parseReleaseDate(update.ReleasedAt)
		if err != nil {
			return nil, err
		}
		applyColumn(schema.CatalogBook.ReleasedAt, releasedAt)
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d", schema.CatalogBook.ID, argID))
	args = append(args, id)

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "update_book_begin")
	}
	defer transaction.Rollback(context)

	response, err := transaction.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "update_book")
	}
	if response.RowsAffected() == 0 {
		return nil, apperr.NotFound("Book")
	}

	// A present genre list is the complete replacement set for the relation.
	if update.Genres != nil {
		if err := replaceGenres(context, transaction, id, genreIDs(update.Genres)); err != nil {
			return nil, err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "update_book_commit")
	}

	return repository.GetByID(context, id)
}

func (repository *PostgresRepository) Delete(context context.Context, id string) (*Book, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1
		RETURNING %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
	`,
		schema.CatalogBook.Table, schema.CatalogBook.ID,
		schema.CatalogBook.ID, schema.CatalogBook.Title, schema.CatalogBook.ImageURL,
		schema.CatalogBook.FileURL, schema.CatalogBook.Description, schema.CatalogBook.BestSelling,
		schema.CatalogBook.Recommended, schema.CatalogBook.Rating, schema.CatalogBook.ReleasedAt,
		schema.CatalogBook.AuthorID, schema.CatalogBook.CreatedAt, schema.CatalogBook.UpdatedAt,
	)

	b := &Book{Genres: make([]GenreRef, 0)}
	err := repository.db.QueryRow(context, query, id).Scan(
		&b.ID, &b.Title, &b.ImageURL, &b.FileURL, &b.Description,
		&b.BestSelling, &b.Recommended, &b.Rating, &b.ReleasedAt,
		&b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_book")
	}

	return b, nil
}

// replaceGenres synchronizes the book-genre junction with a clear-and-insert
// pass inside the caller's transaction. An empty set simply clears.
func replaceGenres(context context.Context, transaction pgx.Tx, bookID string, genreIDs []string) error {
	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.BookGenre.Table, schema.BookGenre.BookID)
	if _, err := transaction.Exec(context, delQuery, bookID); err != nil {
		return dberr.Wrap(err, "clear_book_genres")
	}

	if len(genreIDs) == 0 {
		return nil
	}

	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.BookGenre.GenreID)

	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(insQuery, bookID, genreID)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return dberr.Wrap(err, "insert_book_genres")
	}

	return nil
}

func genreIDs(refs []GenreRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}

func boolValue(value *bool) bool {
	return value != nil && *value
}

// parseReleaseDate turns the raw released_at string into a date value.
// A nil input stores NULL; the admin frontend sends plain dates, so that
// layout is tried before full RFC 3339 timestamps.
func parseReleaseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, *value); err == nil {
			return &parsed, nil
		}
	}

	return nil, apperr.ValidationError("Invalid released_at date", apperr.FieldError{
		Field:   "released_at",
		Message: "Must be an ISO date (YYYY-MM-DD) or RFC 3339 timestamp",
	})
}
