// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package database

import "errors"

// Sentinel errors returned by store methods. Handlers map these to the
// corresponding HTTP responses; any other error is treated as internal.
var (
	// ErrBookNotFound is returned when a book does not exist or belongs to
	// another user. The two cases are deliberately indistinguishable.
	ErrBookNotFound = errors.New("book not found")

	// ErrDuplicateBook is returned when the same user already owns a book
	// with the same title and author.
	ErrDuplicateBook = errors.New("duplicate book")

	// ErrUserNotFound is returned when no user exists for the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when registering an already-used email.
	ErrDuplicateEmail = errors.New("email already registered")
)
