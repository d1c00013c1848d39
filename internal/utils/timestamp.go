// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strconv"
	"time"
)

// FormatTimestamp renders t as decimal Unix epoch milliseconds, the form in
// which user documents store their dates and in which dateCreated enters the
// password digest. The zero time renders as an empty string.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseTimestamp is the inverse of FormatTimestamp. An empty string parses to
// the zero time.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}

	return time.UnixMilli(ms).UTC(), nil
}
