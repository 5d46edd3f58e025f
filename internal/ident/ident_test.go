package ident

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCategoryID(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty catalog", nil, "A00"},
		{"sequential", []string{"A00", "A01", "A02"}, "A03"},
		{"gaps do not refill", []string{"A00", "A05"}, "A06"},
		{"unordered input", []string{"A07", "A03", "A05"}, "A08"},
		{"rolls into next letter", []string{"A99"}, "B00"},
		{"later letters win", []string{"A99", "B12"}, "B13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextCategoryID(tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextCategoryIDFullWalk(t *testing.T) {
	// Allocating one at a time from empty walks A00..A99 then B00.
	var existing []string
	for i := 0; i < 100; i++ {
		id, err := NextCategoryID(existing)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("A%02d", i), id)
		existing = append(existing, id)
	}
	id, err := NextCategoryID(existing)
	require.NoError(t, err)
	assert.Equal(t, "B00", id)
}

func TestNextCategoryIDErrors(t *testing.T) {
	_, err := NextCategoryID([]string{"Z99"})
	assert.ErrorIs(t, err, ErrSpaceExhausted)

	for _, bad := range []string{"a01", "A1", "A123", "1A2", ""} {
		_, err := NextCategoryID([]string{bad})
		assert.ErrorIs(t, err, ErrMalformedID, "id %q", bad)
	}
}

func TestNextProductID(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty category", nil, "01"},
		{"sequential", []string{"01", "02"}, "03"},
		{"gaps do not refill", []string{"01", "07"}, "08"},
		{"zero padded", []string{"08"}, "09"},
		{"two digits stay two digits", []string{"09"}, "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextProductID(tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextProductIDErrors(t *testing.T) {
	_, err := NextProductID([]string{"99"})
	assert.ErrorIs(t, err, ErrSpaceExhausted)

	for _, bad := range []string{"1", "123", "ab", ""} {
		_, err := NextProductID([]string{bad})
		assert.ErrorIs(t, err, ErrMalformedID, "id %q", bad)
	}
}

func TestNextBatchID(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		existing []string
		want     string
	}{
		{"first of the month", 2025, 8, nil, "202508A"},
		{"next suffix", 2025, 8, []string{"202508A"}, "202508B"},
		{"other months ignored", 2025, 9, []string{"202508A", "202508B"}, "202509A"},
		{"month zero padded", 2026, 1, nil, "202601A"},
		{"mixed months", 2025, 8, []string{"202507C", "202508A"}, "202508B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextBatchID(tt.year, tt.month, tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextBatchIDErrors(t *testing.T) {
	_, err := NextBatchID(2025, 8, []string{"202508Z"})
	assert.ErrorIs(t, err, ErrSpaceExhausted)

	_, err = NextBatchID(2025, 13, nil)
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = NextBatchID(2025, 0, nil)
	assert.ErrorIs(t, err, ErrMalformedID)

	for _, bad := range []string{"202508", "2025081", "2025089"} {
		_, err := NextBatchID(2025, 8, []string{bad})
		assert.ErrorIs(t, err, ErrMalformedID, "id %q", bad)
	}
}
