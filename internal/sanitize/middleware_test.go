// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package sanitize

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// captureBody runs the middleware around a handler that records the body it
// received and returns that body.
func captureBody(t *testing.T, contentType, body string) string {
	t.Helper()

	var got string
	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("failed to read body in handler: %v", err)
		}
		got = string(data)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestMiddlewareSanitizesBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "json content type",
			contentType: "application/json",
			body:        `{"title":"<script>alert(1)</script>Clean"}`,
			want:        `{"title":"Clean"}`,
		},
		{
			name:        "missing content type still sanitized",
			contentType: "",
			body:        `{"title":"  <b>Dune</b>  ","author":"<i>Herbert</i>"}`,
			want:        `{"author":"Herbert","title":"Dune"}`,
		},
		{
			name:        "wrong content type still sanitized",
			contentType: "text/plain",
			body:        `{"title":"  spaced  "}`,
			want:        `{"title":"spaced"}`,
		},
		{
			name:        "malformed json passes through",
			contentType: "application/json",
			body:        `{"title": not json`,
			want:        `{"title": not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := captureBody(t, tt.contentType, tt.body); got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddlewareSanitizesQuery(t *testing.T) {
	var gotSearch string
	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/books?search=%3Cscript%3Ex%3C%2Fscript%3Edune", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotSearch != "dune" {
		t.Errorf("search = %q, want %q", gotSearch, "dune")
	}
}
