// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/Hendrich/book-catalog/internal/logging"
	"github.com/Hendrich/book-catalog/internal/metrics"
	"github.com/Hendrich/book-catalog/internal/models"
)

type contextKey string

// ClaimsContextKey is the context key under which verified claims are stored.
const ClaimsContextKey contextKey = "claims"

// Middleware enforces bearer authentication on protected route groups.
type Middleware struct {
	jwtManager *JWTManager
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(jwtManager *JWTManager) *Middleware {
	return &Middleware{jwtManager: jwtManager}
}

// Authenticate verifies the Authorization header and places the decoded
// claims in the request context. Missing credential and invalid credential
// produce distinct 401 bodies:
//
//	missing  -> UNAUTHENTICATED "No token provided"
//	invalid  -> INVALID_TOKEN   "Invalid or expired token"
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r)
		if !ok {
			metrics.RecordAuthFailure("missing_token")
			respondUnauthorized(w, "UNAUTHENTICATED", "No token provided")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			metrics.RecordAuthFailure("invalid_token")
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Token validation failed")
			respondUnauthorized(w, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of "Authorization: Bearer <token>".
func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// ClaimsFromContext retrieves verified claims placed by Authenticate.
// Returns nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(ClaimsContextKey).(*Claims); ok {
		return claims
	}
	return nil
}

// respondUnauthorized writes a 401 response in the standard envelope.
func respondUnauthorized(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	body, err := json.Marshal(&models.APIResponse{
		Success:   false,
		Error:     &models.APIError{Message: message, Code: code},
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return
	}
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write unauthorized response")
	}
}
