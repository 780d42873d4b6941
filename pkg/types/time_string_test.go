package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", ts.String())

	_, err = NewTimeStringFromString("10:60")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("10am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("08:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 8*60+30, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("08:00")

	got, err := ts.AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), got)

	got, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	// Выход за пределы суток
	_, err = TimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("08:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("14:30:00")))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
