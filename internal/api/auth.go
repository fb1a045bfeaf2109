// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Hendrich/book-catalog/internal/database"
	"github.com/Hendrich/book-catalog/internal/logging"
	"github.com/Hendrich/book-catalog/internal/metrics"
	"github.com/Hendrich/book-catalog/internal/models"
	"github.com/Hendrich/book-catalog/internal/validation"
)

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if verr := decodeJSON(r, &req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	email := strings.ToLower(strings.TrimSpace(*req.Email))

	hash, err := h.hasher.Hash(*req.Password)
	if err != nil {
		respondInternalError(w, r, "Failed to register user", err)
		return
	}

	user, err := h.users.CreateUser(r.Context(), email, hash)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, CodeValidationError, "Email already registered")
			return
		}
		respondInternalError(w, r, "Failed to register user", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", user.ID).
		Msg("User registered")

	respondJSON(w, http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    user.Public(),
		Message: "User registered successfully",
	})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if verr := decodeJSON(r, &req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	if h.loginLimiter != nil && !h.loginLimiter.Allow(clientIP(r)) {
		metrics.RecordAuthFailure("rate_limited")
		respondError(w, http.StatusTooManyRequests, CodeRateLimited,
			"Too many login attempts, please try again later")
		return
	}

	email := strings.ToLower(strings.TrimSpace(*req.Email))

	user, err := h.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			// Same response as a wrong password so the endpoint does not
			// reveal which emails are registered.
			metrics.RecordAuthFailure("bad_credentials")
			respondError(w, http.StatusUnauthorized, CodeUnauthenticated, "Invalid credentials")
			return
		}
		respondInternalError(w, r, "Failed to log in", err)
		return
	}

	if !h.hasher.Compare(user.PasswordHash, *req.Password) {
		metrics.RecordAuthFailure("bad_credentials")
		respondError(w, http.StatusUnauthorized, CodeUnauthenticated, "Invalid credentials")
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		respondInternalError(w, r, "Failed to log in", err)
		return
	}
	metrics.AuthTokensIssuedTotal.Inc()

	logging.Ctx(r.Context()).Info().
		Str("user_id", user.ID).
		Msg("User logged in")

	respondData(w, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user.Public(),
	})
}
