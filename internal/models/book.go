// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

// Package models defines the domain types and API request/response shapes
// shared by the database and api packages.
package models

import "time"

// Book is a user-owned book record.
//
// Invariants:
//   - Title and Author are non-empty and at most 255 characters after trimming
//   - A book belongs to exactly one owner (UserID)
//   - (Title, Author, UserID) is unique per owner
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBookRequest is the body for POST /api/books.
// Pointer fields distinguish a missing field from an empty string so the
// validator can report "is required" vs "cannot be empty".
type CreateBookRequest struct {
	Title  *string `json:"title" validate:"required,notblank,max=255"`
	Author *string `json:"author" validate:"required,notblank,max=255"`
}

// UpdateBookRequest is the body for PUT /api/books/{id}. Both fields are
// optional; only the supplied columns are written.
type UpdateBookRequest struct {
	Title  *string `json:"title" validate:"omitempty,notblank,max=255"`
	Author *string `json:"author" validate:"omitempty,notblank,max=255"`
}

// BookFields holds the validated column values for a partial update.
// Nil pointers mean "leave unchanged".
type BookFields struct {
	Title  *string
	Author *string
}

// ListBooksParams are the query parameters for GET /api/books. The handler
// coerces page and limit to sane values and clamps limit to the configured
// maximum before the params reach the store.
type ListBooksParams struct {
	Page   int
	Limit  int
	Search string
}

// Offset returns the row offset for the requested page.
func (p ListBooksParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
