// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseID validates and coerces a numeric path identifier. The failure kinds
// produce distinct messages:
//
//	""       -> "ID is required"
//	"abc"    -> "ID must be a number"
//	"1.5"    -> "ID must be an integer"
//	"0", "-3" -> "ID must be a positive number"
func ParseID(name, raw string) (int64, *RequestValidationError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewRequestValidationError(fmt.Sprintf("%s is required", name))
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, NewRequestValidationError(fmt.Sprintf("%s must be a number", name))
	}
	if f != math.Trunc(f) {
		return 0, NewRequestValidationError(fmt.Sprintf("%s must be an integer", name))
	}
	if f <= 0 {
		return 0, NewRequestValidationError(fmt.Sprintf("%s must be a positive number", name))
	}

	return int64(f), nil
}

// ParsePositiveInt coerces an optional query parameter to a positive integer,
// falling back to def when absent or malformed.
func ParsePositiveInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
