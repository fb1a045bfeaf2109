// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package sanitize

import (
	"bytes"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/Hendrich/book-catalog/internal/logging"
)

// maxBodyBytes bounds how much request body the sanitizer will buffer.
const maxBodyBytes = 1 << 20 // 1MB

// Middleware rewrites the JSON request body and the URL query string with all
// string values sanitized, before routing reaches any handler. Every non-empty
// body is attempted, whatever its Content-Type claims: the handlers decode
// JSON regardless of the header, so the sanitizer must not be skippable by
// omitting it. Malformed JSON passes through untouched; the handler's decoder
// reports it as a validation failure.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sanitizeQuery(r)

			if hasBody(r) {
				sanitizeBody(r)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hasBody reports whether the request carries a body worth rewriting.
// ContentLength is -1 for chunked bodies, which still count.
func hasBody(r *http.Request) bool {
	return r.Body != nil && r.ContentLength != 0
}

// sanitizeQuery rewrites r.URL.RawQuery with every parameter value sanitized.
func sanitizeQuery(r *http.Request) {
	query := r.URL.Query()
	changed := false
	for key, values := range query {
		for i, v := range values {
			clean := String(v)
			if clean != v {
				values[i] = clean
				changed = true
			}
		}
		query[key] = values
	}
	if changed {
		r.URL.RawQuery = query.Encode()
	}
}

// sanitizeBody decodes the JSON body, sanitizes every string leaf, and
// replaces r.Body with the re-encoded result.
func sanitizeBody(r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	closeQuietly(r.Body)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to read request body for sanitization")
		r.Body = io.NopCloser(bytes.NewReader(nil))
		return
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		// Not valid JSON; let the handler's decoder surface the error.
		r.Body = io.NopCloser(bytes.NewReader(body))
		return
	}

	clean, err := json.Marshal(Value(payload))
	if err != nil {
		r.Body = io.NopCloser(bytes.NewReader(body))
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(clean))
	r.ContentLength = int64(len(clean))
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
