// Package storeserver is the backing store the CLI talks to: a SQLite
// repository for authors and categories and the REST handlers in front of it.
package storeserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/vmanager/internal/catalog"
)

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store provides access to authors and categories.
type Store struct {
	db *sql.DB
}

// NewStore creates a new store. The schema in migrations.InitialSQL must
// already be applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// mapSQLiteError converts SQLite errors to package errors.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	return err
}

func scanAuthor(id int, name, videosJSON string) (catalog.Author, error) {
	a := catalog.Author{ID: id, Name: name, Videos: []catalog.Video{}}
	if err := json.Unmarshal([]byte(videosJSON), &a.Videos); err != nil {
		return catalog.Author{}, fmt.Errorf("decode videos of author %d: %w", id, err)
	}
	if a.Videos == nil {
		a.Videos = []catalog.Video{}
	}
	return a, nil
}

func encodeVideos(videos []catalog.Video) (string, error) {
	if videos == nil {
		videos = []catalog.Video{}
	}
	data, err := json.Marshal(videos)
	if err != nil {
		return "", fmt.Errorf("encode videos: %w", err)
	}
	return string(data), nil
}

// ListAuthors returns every author ordered by ID.
func (s *Store) ListAuthors(ctx context.Context) ([]catalog.Author, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, videos FROM authors ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	authors := []catalog.Author{}
	for rows.Next() {
		var (
			id         int
			name       string
			videosJSON string
		)
		if err := rows.Scan(&id, &name, &videosJSON); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		a, err := scanAuthor(id, name, videosJSON)
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}
	return authors, nil
}

// GetAuthor retrieves an author by ID.
// Returns ErrNotFound if the author does not exist.
func (s *Store) GetAuthor(ctx context.Context, id int) (catalog.Author, error) {
	var (
		name       string
		videosJSON string
	)
	err := s.db.QueryRowContext(ctx, "SELECT name, videos FROM authors WHERE id = ?", id).Scan(&name, &videosJSON)
	if err != nil {
		return catalog.Author{}, fmt.Errorf("get author %d: %w", id, mapSQLiteError(err))
	}
	return scanAuthor(id, name, videosJSON)
}

// PutAuthor replaces an existing author record whole.
// Returns ErrNotFound if the author does not exist.
func (s *Store) PutAuthor(ctx context.Context, a catalog.Author) error {
	videosJSON, err := encodeVideos(a.Videos)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx,
		"UPDATE authors SET name = ?, videos = ?, updated_at = ? WHERE id = ?",
		a.Name, videosJSON, time.Now(), a.ID,
	)
	if err != nil {
		return fmt.Errorf("update author %d: %w", a.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update author %d: %w", a.ID, ErrNotFound)
	}
	return nil
}

// ListCategories returns every category ordered by ID.
func (s *Store) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := []catalog.Category{}
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// IsEmpty reports whether the store holds no authors and no categories.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM authors) + (SELECT COUNT(*) FROM categories)",
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count records: %w", err)
	}
	return n == 0, nil
}

func insertAuthor(ctx context.Context, q querier, a catalog.Author) error {
	videosJSON, err := encodeVideos(a.Videos)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx,
		"INSERT INTO authors (id, name, videos, updated_at) VALUES (?, ?, ?, ?)",
		a.ID, a.Name, videosJSON, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert author %d: %w", a.ID, mapSQLiteError(err))
	}
	return nil
}

func insertCategory(ctx context.Context, q querier, c catalog.Category) error {
	_, err := q.ExecContext(ctx, "INSERT INTO categories (id, name) VALUES (?, ?)", c.ID, c.Name)
	if err != nil {
		return fmt.Errorf("insert category %d: %w", c.ID, mapSQLiteError(err))
	}
	return nil
}

// Load inserts every author and category of data in one transaction.
func (s *Store) Load(ctx context.Context, data SeedData) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, c := range data.Categories {
		if err = insertCategory(ctx, tx, c); err != nil {
			return err
		}
	}
	for _, a := range data.Authors {
		if err = insertAuthor(ctx, tx, a); err != nil {
			return err
		}
	}
	return tx.Commit()
}
