package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.14, Round2(3.14159))
	assert.Equal(t, 2.5, Round2(2.499999))
	assert.Equal(t, 0.0, Round2(0.001))
	assert.Equal(t, 5.0, Round2(4.999))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.InDelta(t, 3.65, Mean([]float64{3.5, 3.8}), 1e-9)
}

func TestDaysBefore(t *testing.T) {
	now := time.Date(2026, time.October, 16, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC), StartOfDay(now))
	assert.Equal(t, time.Date(2026, time.October, 6, 0, 0, 0, 0, time.UTC), DaysBefore(now, 10))
	assert.Equal(t, "2025-10-16", FormatDate(DaysBefore(now, 365)))
}
