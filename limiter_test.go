package enginepages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	l := NewLoginLimiter(2, time.Minute)
	defer l.Stop()
	ip := "203.0.113.10"

	assert.True(t, l.Check(ip))
	l.Record(ip)
	assert.True(t, l.Check(ip))
	l.Record(ip)
	assert.False(t, l.Check(ip), "third attempt is blocked")
	assert.True(t, l.Check("203.0.113.11"), "other IPs are unaffected")
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	l := NewLoginLimiter(1, 50*time.Millisecond)
	defer l.Stop()
	ip := "203.0.113.20"

	l.Record(ip)
	assert.False(t, l.Check(ip))
	time.Sleep(80 * time.Millisecond)
	assert.True(t, l.Check(ip))
}

func TestLoginLimiterStopIsIdempotent(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	l.Stop()
	l.Stop()
}

func TestSearchLimiterBurst(t *testing.T) {
	l := NewSearchLimiter(0.001, 3)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("198.51.100.1"), "request %d", i)
	}
	assert.False(t, l.Allow("198.51.100.1"))
	assert.True(t, l.Allow("198.51.100.2"))
}
