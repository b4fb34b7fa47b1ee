package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2022, 10, 10, 12, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(2022, 10, 10, h, m, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestNewRecord_RejectsEndBeforeStart(t *testing.T) {
	_, err := NewRecord(at(11, 0), ptr(at(10, 0)))
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestRecord_Duration(t *testing.T) {
	r, err := NewRecord(at(10, 0), ptr(at(11, 30)))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, r.Duration(testNow))
	assert.False(t, r.Running())
}

func TestRecord_Duration_RunningCountsToNow(t *testing.T) {
	r, err := NewRecord(at(11, 15), nil)
	require.NoError(t, err)
	assert.True(t, r.Running())
	assert.Equal(t, 45*time.Minute, r.Duration(testNow))
}

func TestRecord_Duration_RunningInFutureIsZero(t *testing.T) {
	r := Record{StartTime: at(13, 0)}
	assert.Equal(t, time.Duration(0), r.Duration(testNow))
}

func TestRecord_StartsOn_IgnoresTimeOfDay(t *testing.T) {
	r := Record{StartTime: at(23, 30)}
	assert.True(t, r.StartsOn(time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.StartsOn(time.Date(2022, 10, 10, 18, 45, 0, 0, time.UTC)))
	assert.False(t, r.StartsOn(time.Date(2022, 10, 11, 0, 0, 0, 0, time.UTC)))
}

func TestRecord_StartsOn_UsesQueryLocation(t *testing.T) {
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	r := Record{StartTime: at(23, 30)}
	assert.True(t, r.StartsOn(time.Date(2022, 10, 11, 0, 0, 0, 0, plusTwo)))
}

func TestRecord_Stop(t *testing.T) {
	r := Record{StartTime: at(10, 0)}
	assert.False(t, r.Stop(at(9, 0)), "cannot stop before start")
	assert.True(t, r.Stop(at(11, 0)))
	require.NotNil(t, r.EndTime)
	assert.Equal(t, at(11, 0), *r.EndTime)
	assert.False(t, r.Stop(at(12, 0)), "already stopped")
}
