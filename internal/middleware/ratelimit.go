// AngelaMos | 2026
// ratelimit.go

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

const (
	bucketSweepEvery = 5 * time.Minute
	bucketIdleTTL    = 10 * time.Minute
)

type RateLimitConfig struct {
	Limit    redis_rate.Limit
	KeyFunc  func(*http.Request) string
	FailOpen bool
}

// Per builds a limit of n requests per window with the given burst.
func Per(n, burst int, window time.Duration) redis_rate.Limit {
	return redis_rate.Limit{Rate: n, Burst: burst, Period: window}
}

// RateLimiter shares its budget across replicas through Redis (GCRA via
// redis_rate) when a client is given. Without one, or while Redis is
// failing, each process keeps its own token buckets.
type RateLimiter struct {
	shared *redis_rate.Limiter
	local  *memoryBuckets
	cfg    RateLimitConfig
}

func NewRateLimiter(
	ctx context.Context,
	rdb *redis.Client,
	cfg RateLimitConfig,
) *RateLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = KeyByIP
	}

	rl := &RateLimiter{local: newMemoryBuckets(), cfg: cfg}
	if rdb != nil {
		rl.shared = redis_rate.NewLimiter(rdb)
	}
	go rl.local.sweep(ctx)

	return rl
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.cfg.KeyFunc(r)

		res, err := rl.take(r.Context(), key)
		switch {
		case err != nil && rl.cfg.FailOpen:
			slog.WarnContext(r.Context(), "rate limiter unavailable, allowing request",
				"error", err,
				"key", key,
			)
			next.ServeHTTP(w, r)
		case err != nil:
			core.Message(w, http.StatusServiceUnavailable, "Service unavailable")
		case res.Allowed == 0:
			rl.reject(w, res)
		default:
			rl.annotate(w, res)
			next.ServeHTTP(w, r)
		}
	})
}

func (rl *RateLimiter) take(ctx context.Context, key string) (*redis_rate.Result, error) {
	if rl.shared != nil {
		res, err := rl.shared.Allow(ctx, key, rl.cfg.Limit)
		if err == nil {
			return res, nil
		}
		slog.DebugContext(ctx, "redis rate limit failed, using local buckets", "error", err)
	}
	return rl.local.take(key, rl.cfg.Limit)
}

func (rl *RateLimiter) annotate(w http.ResponseWriter, res *redis_rate.Result) {
	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(rl.cfg.Limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	h.Set("X-RateLimit-Reset",
		strconv.FormatInt(time.Now().Add(res.ResetAfter).Unix(), 10))
}

func (rl *RateLimiter) reject(w http.ResponseWriter, res *redis_rate.Result) {
	rl.annotate(w, res)

	wait := max(int(res.RetryAfter.Seconds()), 1)
	w.Header().Set("Retry-After", strconv.Itoa(wait))
	core.Message(w, http.StatusTooManyRequests,
		fmt.Sprintf("Too many requests. Retry after %d seconds.", wait))
}

// KeyByIP keys on the client address. With X-Forwarded-For the last hop
// is used, since that is the one our proxy appended.
func KeyByIP(r *http.Request) string {
	return "ratelimit:ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		return strings.TrimSpace(hops[len(hops)-1])
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type memoryBuckets struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

func newMemoryBuckets() *memoryBuckets {
	return &memoryBuckets{buckets: make(map[string]*bucket)}
}

// take answers in redis_rate's result shape so both paths share headers.
func (m *memoryBuckets) take(key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	if limit.Rate <= 0 || limit.Period <= 0 {
		return nil, fmt.Errorf("invalid rate limit %d/%s", limit.Rate, limit.Period)
	}
	perSecond := float64(limit.Rate) / limit.Period.Seconds()
	refill := time.Duration(float64(time.Second) / perSecond)

	m.mu.Lock()
	b, ok := m.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(perSecond), limit.Burst)}
		m.buckets[key] = b
	}
	b.lastSeen = time.Now()
	m.mu.Unlock()

	res := &redis_rate.Result{
		Limit:      limit,
		RetryAfter: -1,
		ResetAfter: refill,
	}
	if b.limiter.Allow() {
		res.Allowed = 1
	} else {
		res.RetryAfter = refill
	}
	res.Remaining = max(int(b.limiter.Tokens()), 0)

	return res, nil
}

func (m *memoryBuckets) sweep(ctx context.Context) {
	ticker := time.NewTicker(bucketSweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for key, b := range m.buckets {
				if now.Sub(b.lastSeen) > bucketIdleTTL {
					delete(m.buckets, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
