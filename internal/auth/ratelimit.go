// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiter implements per-IP rate limiting for credential endpoints with
// automatic cleanup of idle entries. It backs the brute-force protection on
// POST /api/auth/login in addition to the route-level httprate limit.
type LoginLimiter struct {
	limiters  map[string]*loginLimiterEntry
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	stopClean chan struct{}
}

// loginLimiterEntry wraps a rate limiter with last access time.
type loginLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewLoginLimiter allows attempts per window attempts from one IP, refilling
// over the window duration.
func NewLoginLimiter(attempts int, window time.Duration) *LoginLimiter {
	l := &LoginLimiter{
		limiters:  make(map[string]*loginLimiterEntry),
		rate:      rate.Every(window / time.Duration(attempts)),
		burst:     attempts,
		stopClean: make(chan struct{}),
	}
	go l.startCleanup(5 * time.Minute)
	return l
}

// Allow reports whether a login attempt from the given IP is permitted.
func (l *LoginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	entry, exists := l.limiters[ip]
	if !exists {
		entry = &loginLimiterEntry{
			limiter:    rate.NewLimiter(l.rate, l.burst),
			lastAccess: time.Now(),
		}
		l.limiters[ip] = entry
	} else {
		entry.lastAccess = time.Now()
	}
	limiter := entry.limiter
	l.mu.Unlock()

	return limiter.Allow()
}

// startCleanup periodically removes limiters idle for over an hour.
func (l *LoginLimiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopClean:
			return
		}
	}
}

func (l *LoginLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := time.Now().Add(-1 * time.Hour)
	for ip, entry := range l.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(l.limiters, ip)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *LoginLimiter) Stop() {
	close(l.stopClean)
}
