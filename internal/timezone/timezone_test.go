package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
}

func TestToday_UsesZone(t *testing.T) {
	// 20:00 UTC is already the next day in India.
	now := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-05-01", Today(now, "UTC"))
	assert.Equal(t, "2026-05-02", Today(now, "Asia/Kolkata"))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "March 7, 2026", DisplayDate("2026-03-07"))
	assert.Equal(t, "soon", DisplayDate("soon"))
}
