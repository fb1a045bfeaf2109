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
	"time"

	"github.com/google/uuid"

	"github.com/Hendrich/book-catalog/internal/metrics"
	"github.com/Hendrich/book-catalog/internal/models"
)

// CreateUser inserts a new user with a generated UUID and returns it.
// Returns ErrDuplicateEmail when the email is already registered.
func (db *DB) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	query := "INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)"

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.CreatedAt)
	metrics.RecordDBQuery("insert", "users", time.Since(start), err)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByEmail returns the user with the given email.
// Returns ErrUserNotFound when no such user exists.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	// id is cast to VARCHAR so the UUID comes back in canonical text form.
	query := "SELECT id::VARCHAR, email, password_hash, created_at FROM users WHERE email = ?"

	start := time.Now()
	var u models.User
	err := db.conn.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	metrics.RecordDBQuery("select", "users", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
