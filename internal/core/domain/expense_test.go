package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Diciembre 2024", domain.MonthLabel(time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Enero 2025", domain.MonthLabel(time.Date(2025, time.January, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "Septiembre 2026", domain.MonthLabel(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseMonthLabel(t *testing.T) {
	year, month, ok := domain.ParseMonthLabel("Diciembre 2024")
	require.True(t, ok)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)

	// Month matching ignores case and surrounding whitespace.
	year, month, ok = domain.ParseMonthLabel("  enero 2025 ")
	require.True(t, ok)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)

	for _, label := range []string{"", "Diciembre", "2024", "Frobnuary 2024", "Diciembre veinte", "Diciembre 2024 extra"} {
		_, _, ok := domain.ParseMonthLabel(label)
		assert.False(t, ok, "label %q should not parse", label)
	}
}

func TestMonthLabelRoundTrip(t *testing.T) {
	date := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	year, month, ok := domain.ParseMonthLabel(domain.MonthLabel(date))
	require.True(t, ok)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.June, month)
}
