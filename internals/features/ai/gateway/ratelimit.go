// file: internals/features/ai/gateway/ratelimit.go
package gateway

import (
	"errors"
	"sync"
	"time"
)

// ErrRateLimited dikembalikan saat kuota per menit habis (tidak ada antrean).
var ErrRateLimited = errors.New("kuota permintaan AI per menit habis")

// windowLimiter membatasi jumlah permintaan per jendela 60 detik berjalan.
// Counter di-reset saat jarak dari awal jendela sudah >= 60 detik.
type windowLimiter struct {
	mu          sync.Mutex
	count       int
	windowStart time.Time
	limit       int
}

func newWindowLimiter(limit int) *windowLimiter {
	return &windowLimiter{limit: limit, windowStart: time.Now()}
}

// Allow mengembalikan false bila kuota jendela saat ini sudah habis.
func (l *windowLimiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.windowStart) >= time.Minute {
		l.windowStart = now
		l.count = 0
	}
	if l.count >= l.limit {
		return false
	}
	l.count++
	return true
}

// Remaining untuk introspeksi/metrics sederhana.
func (l *windowLimiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if time.Since(l.windowStart) >= time.Minute {
		return l.limit
	}
	if l.count >= l.limit {
		return 0
	}
	return l.limit - l.count
}
