// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "epoch millis", in: time.UnixMilli(1700000000000), want: "1700000000000"},
		{name: "sub-millisecond part is dropped", in: time.UnixMilli(1700000000000).Add(999 * time.Microsecond), want: "1700000000000"},
		{name: "zone does not matter", in: time.UnixMilli(1700000000000).In(time.FixedZone("X", 3600)), want: "1700000000000"},
		{name: "zero time", in: time.Time{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("1700000000000")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.UnixMilli(1700000000000)))
	assert.Equal(t, time.UTC, got.Location())

	zero, err := ParseTimestamp("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = ParseTimestamp("yesterday")
	assert.Error(t, err)
}
