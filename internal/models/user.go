// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package models

import "time"

// User is a registered account. The password hash never leaves the database
// and api layers; JSON serialization exposes only id and email.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the client-visible projection of a User, returned from the
// auth endpoints.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Public returns the client-visible projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}

// CredentialsRequest is the body for POST /api/auth/register and
// POST /api/auth/login.
type CredentialsRequest struct {
	Email    *string `json:"email" validate:"required,notblank,email"`
	Password *string `json:"password" validate:"required,min=6,max=128"`
}

// LoginResponse is the success payload for POST /api/auth/login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
