// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package api

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/Hendrich/book-catalog/internal/logging"
	"github.com/Hendrich/book-catalog/internal/models"
	"github.com/Hendrich/book-catalog/internal/validation"
)

// Error codes carried in the response envelope.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInvalidToken    = "INVALID_TOKEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// maxRequestBody caps request bodies accepted by decodeJSON.
const maxRequestBody = 1 << 20 // 1MB

// respondJSON writes a success envelope with the given payload.
func respondJSON(w http.ResponseWriter, status int, resp models.APIResponse) {
	resp.Timestamp = time.Now().UTC()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondData writes a success envelope wrapping data.
func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, models.APIResponse{Success: true, Data: data})
}

// respondError writes an error envelope. The message is what the client sees;
// internal detail must be logged by the caller, never echoed.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, models.APIResponse{
		Success: false,
		Error:   &models.APIError{Message: message, Code: code},
	})
}

// respondValidationError writes the aggregated validation failure as a 400.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	respondError(w, http.StatusBadRequest, CodeValidationError, verr.Error())
}

// respondInternalError logs the underlying error and writes a generic 500.
// The client only ever sees the action phrase, e.g. "Failed to create book".
func respondInternalError(w http.ResponseWriter, r *http.Request, action string, err error) {
	logging.Ctx(r.Context()).Error().Err(err).
		Str("path", r.URL.Path).
		Str("method", r.Method).
		Msg(action)
	respondError(w, http.StatusInternalServerError, CodeInternalError, action)
}

// decodeJSON reads and decodes the request body into dst.
// Returns a client-facing validation error on malformed input.
func decodeJSON(r *http.Request, dst interface{}) *validation.RequestValidationError {
	body := http.MaxBytesReader(nil, r.Body, maxRequestBody)
	defer func() { _, _ = io.Copy(io.Discard, body) }()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return validation.NewRequestValidationError("request body is required")
		}
		if strings.Contains(err.Error(), "unknown field") {
			return validation.NewRequestValidationError("request body contains unknown fields")
		}
		return validation.NewRequestValidationError("request body must be valid JSON")
	}
	return nil
}

// clientIP returns the caller's IP for rate limiting, trusting the leftmost
// X-Forwarded-For entry when present. chi's RealIP middleware normalizes
// RemoteAddr earlier in the chain, so this is a fallback path.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
