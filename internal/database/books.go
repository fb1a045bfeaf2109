// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Hendrich/book-catalog/internal/metrics"
	"github.com/Hendrich/book-catalog/internal/models"
)

// user_id is cast to VARCHAR on read: scanning a DuckDB UUID column into a
// Go string yields the raw 16-byte representation, not the canonical text.
const bookColumns = "id, title, author, user_id::VARCHAR, created_at, updated_at"

// scanBook scans a single book row in bookColumns order.
func scanBook(row *sql.Row) (*models.Book, error) {
	var b models.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.UserID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CountBooks returns the number of books owned by userID matching params.
func (db *DB) CountBooks(ctx context.Context, userID string, params models.ListBooksParams) (int64, error) {
	query := "SELECT COUNT(*) FROM books WHERE user_id = ?"
	args := []interface{}{userID}

	if params.Search != "" {
		query += " AND (title ILIKE ? OR author ILIKE ?)"
		pattern := "%" + params.Search + "%"
		args = append(args, pattern, pattern)
	}

	start := time.Now()
	var total int64
	err := db.conn.QueryRowContext(ctx, query, args...).Scan(&total)
	metrics.RecordDBQuery("count", "books", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return total, nil
}

// ListBooks returns a page of books owned by userID, newest first.
func (db *DB) ListBooks(ctx context.Context, userID string, params models.ListBooksParams) ([]models.Book, error) {
	query := "SELECT " + bookColumns + " FROM books WHERE user_id = ?"
	args := []interface{}{userID}

	if params.Search != "" {
		query += " AND (title ILIKE ? OR author ILIKE ?)"
		pattern := "%" + params.Search + "%"
		args = append(args, pattern, pattern)
	}

	query += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, params.Limit, params.Offset())

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "books", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, params.Limit)
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.UserID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

// GetBook returns the book with the given id if it is owned by userID.
// Returns ErrBookNotFound when the book does not exist or is owned by
// someone else.
func (db *DB) GetBook(ctx context.Context, userID string, id int64) (*models.Book, error) {
	query := "SELECT " + bookColumns + " FROM books WHERE id = ? AND user_id = ?"

	start := time.Now()
	book, err := scanBook(db.conn.QueryRowContext(ctx, query, id, userID))
	metrics.RecordDBQuery("select", "books", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

// CreateBook inserts a new book for userID and returns the stored row.
// Returns ErrDuplicateBook when the user already owns a book with the same
// title and author.
func (db *DB) CreateBook(ctx context.Context, userID, title, author string) (*models.Book, error) {
	// Pre-check gives the common case a clean conflict without relying on
	// driver error text. The unique constraint still backstops races.
	existsQuery := "SELECT COUNT(*) FROM books WHERE user_id = ? AND title = ? AND author = ?"

	start := time.Now()
	var count int64
	err := db.conn.QueryRowContext(ctx, existsQuery, userID, title, author).Scan(&count)
	metrics.RecordDBQuery("count", "books", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate book: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateBook
	}

	now := time.Now().UTC()
	insertQuery := `INSERT INTO books (title, author, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?) RETURNING ` + bookColumns

	start = time.Now()
	book, err := scanBook(db.conn.QueryRowContext(ctx, insertQuery, title, author, userID, now, now))
	metrics.RecordDBQuery("insert", "books", time.Since(start), err)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateBook
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

// UpdateBook applies the non-nil fields to the book with the given id when
// it is owned by userID, bumps updated_at, and returns the updated row.
// Returns ErrBookNotFound when the book does not exist or is owned by
// someone else.
func (db *DB) UpdateBook(ctx context.Context, userID string, id int64, fields models.BookFields) (*models.Book, error) {
	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)

	if fields.Title != nil {
		setClauses = append(setClauses, "title = ?")
		args = append(args, *fields.Title)
	}
	if fields.Author != nil {
		setClauses = append(setClauses, "author = ?")
		args = append(args, *fields.Author)
	}
	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, time.Now().UTC())

	query := "UPDATE books SET " + strings.Join(setClauses, ", ") +
		" WHERE id = ? AND user_id = ? RETURNING " + bookColumns
	args = append(args, id, userID)

	start := time.Now()
	book, err := scanBook(db.conn.QueryRowContext(ctx, query, args...))
	metrics.RecordDBQuery("update", "books", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateBook
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

// DeleteBook removes the book with the given id when it is owned by userID
// and returns the deleted row. Returns ErrBookNotFound when the book does
// not exist or is owned by someone else.
func (db *DB) DeleteBook(ctx context.Context, userID string, id int64) (*models.Book, error) {
	query := "DELETE FROM books WHERE id = ? AND user_id = ? RETURNING " + bookColumns

	start := time.Now()
	book, err := scanBook(db.conn.QueryRowContext(ctx, query, id, userID))
	metrics.RecordDBQuery("delete", "books", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}
	return book, nil
}
