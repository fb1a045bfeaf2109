// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/Hendrich/book-catalog/internal/config"
	"github.com/Hendrich/book-catalog/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   2,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()
	user, err := db.CreateUser(context.Background(), email, "hashed")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func TestCreateAndGetBook(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, db, "owner@example.com")

	created, err := db.CreateBook(ctx, owner.ID, "Dune", "Frank Herbert")
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("ID = %d, want positive", created.ID)
	}
	if created.Title != "Dune" || created.Author != "Frank Herbert" {
		t.Errorf("stored %q/%q, want Dune/Frank Herbert", created.Title, created.Author)
	}
	if created.UserID != owner.ID {
		t.Errorf("UserID = %q, want %q", created.UserID, owner.ID)
	}
	if _, err := uuid.Parse(created.UserID); err != nil {
		t.Errorf("scanned UserID %q is not a canonical UUID: %v", created.UserID, err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}

	got, err := db.GetBook(ctx, owner.ID, created.ID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Title != created.Title || got.Author != created.Author {
		t.Errorf("GetBook returned %q/%q, want %q/%q", got.Title, got.Author, created.Title, created.Author)
	}
}

func TestCreateBookDuplicate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, db, "owner@example.com")

	if _, err := db.CreateBook(ctx, owner.ID, "Dune", "Herbert"); err != nil {
		t.Fatalf("first CreateBook: %v", err)
	}
	if _, err := db.CreateBook(ctx, owner.ID, "Dune", "Herbert"); !errors.Is(err, ErrDuplicateBook) {
		t.Fatalf("second CreateBook err = %v, want ErrDuplicateBook", err)
	}

	total, err := db.CountBooks(ctx, owner.ID, models.ListBooksParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("CountBooks: %v", err)
	}
	if total != 1 {
		t.Errorf("table has %d rows for owner, want exactly 1", total)
	}

	// The same pair under a different owner is not a duplicate.
	other := newTestUser(t, db, "other@example.com")
	if _, err := db.CreateBook(ctx, other.ID, "Dune", "Herbert"); err != nil {
		t.Errorf("CreateBook for second owner: %v", err)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := newTestUser(t, db, "alice@example.com")
	bob := newTestUser(t, db, "bob@example.com")

	book, err := db.CreateBook(ctx, alice.ID, "Solaris", "Lem")
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	if _, err := db.GetBook(ctx, bob.ID, book.ID); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("GetBook as non-owner err = %v, want ErrBookNotFound", err)
	}

	title := "Stolen"
	if _, err := db.UpdateBook(ctx, bob.ID, book.ID, models.BookFields{Title: &title}); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("UpdateBook as non-owner err = %v, want ErrBookNotFound", err)
	}

	if _, err := db.DeleteBook(ctx, bob.ID, book.ID); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("DeleteBook as non-owner err = %v, want ErrBookNotFound", err)
	}

	// Owner still sees the untouched row.
	got, err := db.GetBook(ctx, alice.ID, book.ID)
	if err != nil {
		t.Fatalf("GetBook as owner: %v", err)
	}
	if got.Title != "Solaris" {
		t.Errorf("Title = %q after failed cross-owner update, want Solaris", got.Title)
	}
}

func TestUpdateBookPartialFields(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, db, "owner@example.com")

	book, err := db.CreateBook(ctx, owner.ID, "Dune", "Herbert")
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	title := "Dune Messiah"
	updated, err := db.UpdateBook(ctx, owner.ID, book.ID, models.BookFields{Title: &title})
	if err != nil {
		t.Fatalf("UpdateBook: %v", err)
	}
	if updated.Title != "Dune Messiah" {
		t.Errorf("Title = %q, want Dune Messiah", updated.Title)
	}
	if updated.Author != "Herbert" {
		t.Errorf("Author = %q, want unchanged Herbert", updated.Author)
	}
	if !updated.UpdatedAt.After(book.UpdatedAt) && !updated.UpdatedAt.Equal(book.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards: %v -> %v", book.UpdatedAt, updated.UpdatedAt)
	}
}

func TestDeleteBook(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, db, "owner@example.com")

	book, err := db.CreateBook(ctx, owner.ID, "Dune", "Herbert")
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	deleted, err := db.DeleteBook(ctx, owner.ID, book.ID)
	if err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
	if deleted.ID != book.ID {
		t.Errorf("deleted ID = %d, want %d", deleted.ID, book.ID)
	}

	if _, err := db.GetBook(ctx, owner.ID, book.ID); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("GetBook after delete err = %v, want ErrBookNotFound", err)
	}
	if _, err := db.DeleteBook(ctx, owner.ID, book.ID); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("second DeleteBook err = %v, want ErrBookNotFound", err)
	}
}

func TestListBooksPaginationAndSearch(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, db, "owner@example.com")

	for i := 0; i < 25; i++ {
		if _, err := db.CreateBook(ctx, owner.ID, fmt.Sprintf("Book %02d", i), "Author"); err != nil {
			t.Fatalf("CreateBook %d: %v", i, err)
		}
	}

	params := models.ListBooksParams{Page: 1, Limit: 10}
	total, err := db.CountBooks(ctx, owner.ID, params)
	if err != nil {
		t.Fatalf("CountBooks: %v", err)
	}
	if total != 25 {
		t.Fatalf("total = %d, want 25", total)
	}

	page1, err := db.ListBooks(ctx, owner.ID, params)
	if err != nil {
		t.Fatalf("ListBooks page 1: %v", err)
	}
	if len(page1) != 10 {
		t.Errorf("page 1 has %d rows, want 10", len(page1))
	}

	params.Page = 3
	page3, err := db.ListBooks(ctx, owner.ID, params)
	if err != nil {
		t.Fatalf("ListBooks page 3: %v", err)
	}
	if len(page3) != 5 {
		t.Errorf("page 3 has %d rows, want 5", len(page3))
	}

	// Case-insensitive substring search on title or author.
	search := models.ListBooksParams{Page: 1, Limit: 10, Search: "book 04"}
	matches, err := db.ListBooks(ctx, owner.ID, search)
	if err != nil {
		t.Fatalf("ListBooks search: %v", err)
	}
	if len(matches) != 1 || matches[0].Title != "Book 04" {
		t.Errorf("search matched %v, want single Book 04", matches)
	}

	byAuthor := models.ListBooksParams{Page: 1, Limit: 100, Search: "AUTHOR"}
	authorMatches, err := db.ListBooks(ctx, owner.ID, byAuthor)
	if err != nil {
		t.Fatalf("ListBooks author search: %v", err)
	}
	if len(authorMatches) != 25 {
		t.Errorf("author search matched %d rows, want 25", len(authorMatches))
	}
}
