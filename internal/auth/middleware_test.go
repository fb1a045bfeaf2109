// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/Hendrich/book-catalog/internal/models"
)

func TestAuthenticate(t *testing.T) {
	m, err := NewJWTManager(testSecurityConfig(time.Hour))
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	mw := NewMiddleware(m)

	var gotClaims *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Authenticate(next)

	validToken, err := m.GenerateToken("user-abc", "a@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCode   string
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"wrong scheme", "Basic abc123", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"invalid token", "Bearer junk.token.here", http.StatusUnauthorized, "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClaims = nil
			req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantCode == "" {
				if gotClaims == nil {
					t.Fatal("claims missing from request context")
				}
				if gotClaims.UserID() != "user-abc" {
					t.Errorf("UserID = %q, want %q", gotClaims.UserID(), "user-abc")
				}
				return
			}

			var resp models.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response JSON: %v", err)
			}
			if resp.Success {
				t.Error("success = true on rejected request")
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %q", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestLoginLimiter(t *testing.T) {
	l := NewLoginLimiter(3, time.Hour)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("attempt %d unexpectedly blocked", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("fourth attempt should be blocked")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("different IP should not share the limit")
	}
}
