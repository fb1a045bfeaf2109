// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package models

import (
	"math"
	"time"
)

// APIResponse is the uniform response envelope used by every endpoint.
//
// Success field values:
//   - true: request completed, see Data
//   - false: request failed, see Error
//
// Example successful response:
//
//	{
//	  "success": true,
//	  "data": {"id": 1, "title": "Dune", "author": "Herbert", ...},
//	  "timestamp": "2026-01-15T12:00:00Z"
//	}
//
// Example error response:
//
//	{
//	  "success": false,
//	  "error": {"message": "Book not found", "code": "NOT_FOUND"},
//	  "timestamp": "2026-01-15T12:00:00Z"
//	}
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      *APIError   `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// APIError carries the error details of a failed response.
//
// Error codes:
//   - VALIDATION_ERROR: invalid input (400)
//   - UNAUTHENTICATED: missing bearer credential (401)
//   - INVALID_TOKEN: invalid or expired bearer credential (401)
//   - NOT_FOUND: resource absent or not owned by the caller (404)
//   - CONFLICT: duplicate resource (409)
//   - RATE_LIMITED: too many attempts from one address (429)
//   - INTERNAL_ERROR: unexpected failure, detail logged server-side (500)
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the pagination block for a list response.
// TotalPages is ceil(total/limit) and 0 when total is 0.
func NewPagination(page, limit, total int) *Pagination {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// DeletedBook is the success payload for DELETE /api/books/{id},
// echoing the removed identifier.
type DeletedBook struct {
	ID int64 `json:"id"`
}

// HealthStatus is the payload for GET /health.
type HealthStatus struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime_seconds"`
}
