package restapi

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"eventrec.dev/internal/clock"
	"eventrec.dev/internal/models"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = time.Hour
)

// RateLimitMiddleware applies a token bucket per API key.
type RateLimitMiddleware struct {
	limit    rate.Limit
	burst    int
	clock    clock.Clock
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimitMiddleware allows requestsPerInterval requests per key in each
// interval. A non-positive count disables limiting.
func NewRateLimitMiddleware(requestsPerInterval int, interval time.Duration) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		burst:    requestsPerInterval,
		clock:    clock.RealClock{},
		limiters: make(map[string]*limiterEntry),
		stopCh:   make(chan struct{}),
	}
	if requestsPerInterval > 0 {
		m.limit = rate.Every(interval / time.Duration(requestsPerInterval))
	}

	m.wg.Add(1)
	go m.cleanupLoop()
	return m
}

// Handler returns the middleware function.
func (m *RateLimitMiddleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m.burst <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.allow(r.URL.Query().Get("key")) {
				w.Header().Set("Retry-After", strconv.Itoa(1))
				response := models.NewResponseWithClock(http.StatusTooManyRequests, nil, "rate limit exceeded", m.clock)
				writeJSON(w, r, http.StatusTooManyRequests, response)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *RateLimitMiddleware) allow(key string) bool {
	now := m.clock.Now()

	m.mu.Lock()
	entry, ok := m.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[key] = entry
	}
	entry.lastAccess = now
	m.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

func (m *RateLimitMiddleware) cleanupLoop() {
	defer m.wg.Done()
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle()
		case <-m.stopCh:
			return
		}
	}
}

func (m *RateLimitMiddleware) evictIdle() {
	threshold := m.clock.Now().Add(-limiterIdleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, entry := range m.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(m.limiters, key)
		}
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (m *RateLimitMiddleware) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		m.wg.Wait()
	})
}
