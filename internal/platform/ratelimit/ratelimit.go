// Package ratelimit protects the public intake endpoints from form-spam
// bursts with a per-client sliding window. In-memory only: one instance
// serves both brands, and losing counters on restart is acceptable.
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/platform/httputil"
)

// Limiter tracks request timestamps per key in a sliding window. The window
// slides rather than resetting so bursts cannot straddle a boundary.
type Limiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	limit   int
	window  time.Duration
	now     func() time.Time

	// calls counts Allow invocations so idle keys get swept periodically.
	// Keys are client-controlled (X-Forwarded-For), so entries that are
	// only pruned on their own next hit would accumulate forever.
	calls int
}

// sweepEvery is how many Allow calls pass between idle-key sweeps.
const sweepEvery = 1024

// New returns a limiter allowing limit requests per window per key.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		windows: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow records a request for key and reports whether it fits the window.
// remaining is the allowance left after this request.
func (l *Limiter) Allow(key string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	l.calls++
	if l.calls%sweepEvery == 0 {
		l.sweep(cutoff)
	}

	stamps := l.windows[key]
	i := 0
	for ; i < len(stamps); i++ {
		if stamps[i].After(cutoff) {
			break
		}
	}
	stamps = stamps[i:]

	if len(stamps) >= l.limit {
		l.windows[key] = stamps
		return false, 0
	}

	stamps = append(stamps, now)
	l.windows[key] = stamps
	return true, l.limit - len(stamps)
}

// sweep drops keys whose newest timestamp fell out of the window. Caller
// holds the mutex.
func (l *Limiter) sweep(cutoff time.Time) {
	for key, stamps := range l.windows {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(l.windows, key)
		}
	}
}

// Reset clears the window for a key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// Middleware limits POST traffic by client IP. Reads and operational routes
// stay unthrottled; the forms are what spam targets.
func Middleware(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil || r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			allowed, remaining := l.Allow(clientIP(r))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !allowed {
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many requests, please slow down"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the first forwarded address since the gateway sits behind
// a proxy in production.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
