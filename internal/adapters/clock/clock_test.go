package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rulecache/internal/adapters/clock"
)

func TestBuildClock_IsFrozen(t *testing.T) {
	t.Parallel()

	before := time.Now()
	c := clock.NewBuildClock()
	first := c.Now()
	time.Sleep(2 * time.Millisecond)

	assert.Equal(t, first, c.Now())
	assert.WithinDuration(t, before, first, time.Second)
}

func TestFixed(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, at, clock.Fixed{At: at}.Now())
}
