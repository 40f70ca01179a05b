package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats(3)
	s.Update(1, 100, 500*time.Millisecond)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.InDelta(t, 2.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 100.0, s.AveragePopulation, 1e-9)

	s.Update(2, 200, 0)
	assert.Equal(t, 2, s.TotalGenerations)
	assert.InDelta(t, 2.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 110.0, s.AveragePopulation, 1e-9)
}

func TestStatsRecord(t *testing.T) {
	s := NewStats(2)
	assert.False(t, s.Record("a"))
	assert.False(t, s.Record("b"))
	assert.True(t, s.Record("a"))

	// history keeps only the last two hashes: b, a
	assert.False(t, s.Record("c"))
	assert.False(t, s.Record("b"))
}

func TestStatsRecordDisabled(t *testing.T) {
	s := NewStats(0)
	assert.False(t, s.Record("a"))
	assert.False(t, s.Record("a"))
}
