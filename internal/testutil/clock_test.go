package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogicalClock_StartsAtZero(t *testing.T) {
	clock := NewLogicalClock()
	assert.Equal(t, int64(0), clock.Now())
}

func TestLogicalClock_TickIsMonotonic(t *testing.T) {
	clock := NewLogicalClock()

	assert.Equal(t, int64(1), clock.Tick())
	assert.Equal(t, int64(2), clock.Tick())
	assert.Equal(t, int64(3), clock.Tick())
	assert.Equal(t, int64(3), clock.Now())
}

func TestLogicalClock_Reset(t *testing.T) {
	clock := NewLogicalClock()
	clock.Tick()
	clock.Tick()

	clock.Reset()
	assert.Equal(t, int64(0), clock.Now())
	assert.Equal(t, int64(1), clock.Tick())
}
