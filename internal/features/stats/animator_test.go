package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnimationEndpoints(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a := NewAnimation(0, 100, start, time.Second)

	assert.Equal(t, int64(0), a.ValueAt(start))
	assert.Equal(t, int64(100), a.ValueAt(start.Add(time.Second)))
	// Clamped past the end.
	assert.Equal(t, int64(100), a.ValueAt(start.Add(time.Minute)))
	// Before start.
	assert.Equal(t, int64(0), a.ValueAt(start.Add(-time.Second)))
}

func TestAnimationCubicEaseOut(t *testing.T) {
	start := time.Unix(0, 0)
	a := NewAnimation(0, 1000, start, time.Second)

	// t=0.5: 1 − 0.5³ = 0.875
	assert.Equal(t, int64(875), a.ValueAt(start.Add(500*time.Millisecond)))
	// t=0.9: 1 − 0.1³ = 0.999
	assert.Equal(t, int64(999), a.ValueAt(start.Add(900*time.Millisecond)))
}

func TestAnimationMonotonicUp(t *testing.T) {
	start := time.Unix(0, 0)
	a := NewAnimation(10, 500, start, time.Second)

	prev := a.ValueAt(start)
	for ms := 50; ms <= 1000; ms += 50 {
		v := a.ValueAt(start.Add(time.Duration(ms) * time.Millisecond))
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Equal(t, int64(500), prev)
}

func TestAnimationDecreasing(t *testing.T) {
	start := time.Unix(0, 0)
	a := NewAnimation(100, 0, start, time.Second)

	assert.Equal(t, int64(100), a.ValueAt(start))
	mid := a.ValueAt(start.Add(500 * time.Millisecond))
	assert.Less(t, mid, int64(100))
	assert.Equal(t, int64(0), a.ValueAt(start.Add(time.Second)))
}

func TestAnimationDone(t *testing.T) {
	start := time.Unix(0, 0)
	a := NewAnimation(0, 1, start, time.Second)

	assert.False(t, a.Done(start.Add(999*time.Millisecond)))
	assert.True(t, a.Done(start.Add(time.Second)))
}

func TestAnimationZeroDurationDefaults(t *testing.T) {
	a := NewAnimation(0, 1, time.Unix(0, 0), 0)
	assert.Equal(t, time.Second, a.Duration)
}
