package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.December, 31)

	assert.Equal(t, NewDate(2025, time.January, 1), d.AddDays(1))
	assert.Equal(t, NewDate(2024, time.December, 25), d.AddDays(-6))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.False(t, d.Before(d))
	assert.Equal(t, time.Tuesday, d.Weekday())
	assert.Equal(t, "2024-12-31", d.String())
}

func TestNewDateNormalizes(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.February, 30))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.February, 29), d)

	_, err = ParseDate("29.02.2024")
	require.Error(t, err)
}

func TestDateOfKeepsLocation(t *testing.T) {
	ts := time.Date(2024, time.May, 14, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2024, time.May, 14), DateOf(ts))
	assert.Equal(t, NewDate(2024, time.May, 15), DateOf(ts.In(jakarta)))
}

func TestDateInLocation(t *testing.T) {
	got := NewDate(2024, time.May, 15).In(jakarta)
	assert.Equal(t, time.Date(2024, time.May, 14, 17, 0, 0, 0, time.UTC), got.UTC())
	assert.True(t, Date{}.IsZero())
}
