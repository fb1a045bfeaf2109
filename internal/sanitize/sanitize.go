// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

// Package sanitize strips HTML and script markup from request input before any
// handler logic runs. Sanitization is total: it never fails, and in the worst
// case a string field is reduced to "".
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// scriptRe matches complete <script>...</script> blocks including their
	// content, so embedded code is removed rather than left as bare text.
	scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)

	// tagRe matches any remaining <...> delimited markup.
	tagRe = regexp.MustCompile(`<[^>]*>`)
)

// String removes script blocks and markup tags from s and trims surrounding
// whitespace. Markup is removed entirely, not escaped; the result is the
// non-markup text content of the input. Interior whitespace is left alone.
func String(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Value recursively sanitizes a JSON-shaped value. String leaves are stripped
// and trimmed; objects and arrays are walked; numbers, booleans, and null pass
// through unchanged. The result is structurally identical to the input.
func Value(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return String(val)
	case map[string]interface{}:
		for k, item := range val {
			val[k] = Value(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = Value(item)
		}
		return val
	default:
		return v
	}
}
