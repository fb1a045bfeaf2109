// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

// Package api implements the HTTP surface of the book catalog service:
// the chi router, the authentication and book CRUD handlers, and the
// uniform JSON response envelope.
package api

import (
	"context"
	"time"

	"github.com/Hendrich/book-catalog/internal/auth"
	"github.com/Hendrich/book-catalog/internal/config"
	"github.com/Hendrich/book-catalog/internal/models"
)

// Version is the reported service version, overridable at build time via
// -ldflags "-X github.com/Hendrich/book-catalog/internal/api.Version=...".
var Version = "dev"

// BookStore is the persistence surface the book handlers depend on.
// *database.DB satisfies it; tests substitute stubs.
type BookStore interface {
	CountBooks(ctx context.Context, userID string, params models.ListBooksParams) (int64, error)
	ListBooks(ctx context.Context, userID string, params models.ListBooksParams) ([]models.Book, error)
	GetBook(ctx context.Context, userID string, id int64) (*models.Book, error)
	CreateBook(ctx context.Context, userID, title, author string) (*models.Book, error)
	UpdateBook(ctx context.Context, userID string, id int64, fields models.BookFields) (*models.Book, error)
	DeleteBook(ctx context.Context, userID string, id int64) (*models.Book, error)
}

// UserStore is the persistence surface the auth handlers depend on.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// HealthChecker reports backing store liveness for the health endpoint.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	books        BookStore
	users        UserStore
	health       HealthChecker
	jwt          *auth.JWTManager
	hasher       *auth.PasswordHasher
	loginLimiter *auth.LoginLimiter
	cfg          *config.Config
	startTime    time.Time
}

// NewHandler creates the handler set with its dependencies.
func NewHandler(books BookStore, users UserStore, health HealthChecker,
	jwt *auth.JWTManager, hasher *auth.PasswordHasher, loginLimiter *auth.LoginLimiter,
	cfg *config.Config) *Handler {
	return &Handler{
		books:        books,
		users:        users,
		health:       health,
		jwt:          jwt,
		hasher:       hasher,
		loginLimiter: loginLimiter,
		cfg:          cfg,
		startTime:    time.Now(),
	}
}
