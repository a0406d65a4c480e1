package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Bogota"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Nowhere/City"))
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("bad").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestStamp(t *testing.T) {
	_, err := time.Parse(time.RFC3339, Stamp("UTC"))
	assert.NoError(t, err)
}

func TestDayBounds(t *testing.T) {
	start, end, err := DayBounds("2026-03-31", DefaultTimezone)
	require.NoError(t, err)

	loc := Location(DefaultTimezone)
	assert.True(t, start.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, loc)))
	assert.True(t, end.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, loc)))

	_, _, err = DayBounds("31/03/2026", DefaultTimezone)
	assert.Error(t, err)
}
