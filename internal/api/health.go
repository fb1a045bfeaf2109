// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package api

import (
	"net/http"
	"time"

	"github.com/Hendrich/book-catalog/internal/models"
)

// Health handles GET /health. Reports degraded when the backing store does
// not respond; the endpoint itself always returns 200 so load balancers can
// distinguish "unreachable" from "unhealthy".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			status = "degraded"
		}
	}

	respondData(w, http.StatusOK, models.HealthStatus{
		Status:  status,
		Version: Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	})
}
