// file: internals/features/ai/gateway/ratelimit_test.go
package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowLimiter_BlocksOverQuota(t *testing.T) {
	l := newWindowLimiter(3)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(), "permintaan ke-%d harus lolos", i+1)
	}
	assert.False(t, l.Allow())
	assert.Equal(t, 0, l.Remaining())
}

func TestWindowLimiter_ResetsAfterWindow(t *testing.T) {
	l := newWindowLimiter(1)
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	// mundurkan awal jendela melewati 60 detik
	l.mu.Lock()
	l.windowStart = time.Now().Add(-61 * time.Second)
	l.mu.Unlock()

	assert.True(t, l.Allow())
}
