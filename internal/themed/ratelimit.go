package themed

import (
	"context"
	"sort"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RateLimitConfig defines the limit for one method or for all of them.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained refill rate.
	RequestsPerSecond float64

	// BurstSize is the bucket capacity.
	BurstSize int
}

// DefaultRateLimits are the per-method limits. Lookups are cheap table reads,
// so these are generous.
var DefaultRateLimits = map[string]RateLimitConfig{
	MethodGetGlobalStyles:       {RequestsPerSecond: 100, BurstSize: 200},
	MethodGetComponentBaseStyle: {RequestsPerSecond: 100, BurstSize: 200},
	MethodGetComponentVariant:   {RequestsPerSecond: 100, BurstSize: 200},
	MethodGetComponentSize:      {RequestsPerSecond: 100, BurstSize: 200},
	MethodGetDefaultProps:       {RequestsPerSecond: 100, BurstSize: 200},
}

type tokenBucket struct {
	mu           sync.Mutex
	tokens       float64
	lastUpdate   time.Time
	ratePerSec   float64
	maxTokens    float64
	requestCount int64
	deniedCount  int64
	now          func() time.Time
}

func newTokenBucket(cfg RateLimitConfig, now func() time.Time) *tokenBucket {
	return &tokenBucket{
		tokens:     float64(cfg.BurstSize),
		lastUpdate: now(),
		ratePerSec: cfg.RequestsPerSecond,
		maxTokens:  float64(cfg.BurstSize),
		now:        now,
	}
}

// refill must be called with mu held.
func (tb *tokenBucket) refill() {
	now := tb.now()
	tb.tokens += now.Sub(tb.lastUpdate).Seconds() * tb.ratePerSec
	if tb.tokens > tb.maxTokens {
		tb.tokens = tb.maxTokens
	}
	tb.lastUpdate = now
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.requestCount++
	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens--
		return true
	}
	tb.deniedCount++
	return false
}

func (tb *tokenBucket) stats() (available float64, requestCount, deniedCount int64) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	return tb.tokens, tb.requestCount, tb.deniedCount
}

// RateLimiter keeps one token bucket per method plus an optional global one.
type RateLimiter struct {
	mu      sync.RWMutex
	buckets map[string]*tokenBucket
	configs map[string]RateLimitConfig
	now     func() time.Time

	globalBucket *tokenBucket
	globalConfig *RateLimitConfig

	enabled bool
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithMethodLimits overrides limits for specific methods.
func WithMethodLimits(limits map[string]RateLimitConfig) RateLimiterOption {
	return func(rl *RateLimiter) {
		for method, cfg := range limits {
			rl.configs[method] = cfg
		}
	}
}

// WithGlobalLimit adds a limit shared by every method.
func WithGlobalLimit(cfg RateLimitConfig) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.globalConfig = &cfg
	}
}

// WithEnabled turns limiting on or off.
func WithEnabled(enabled bool) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.enabled = enabled
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// NewRateLimiter creates a limiter seeded with DefaultRateLimits.
func NewRateLimiter(opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		configs: make(map[string]RateLimitConfig),
		now:     time.Now,
		enabled: true,
	}
	for method, cfg := range DefaultRateLimits {
		rl.configs[method] = cfg
	}
	for _, opt := range opts {
		opt(rl)
	}
	if rl.globalConfig != nil {
		rl.globalBucket = newTokenBucket(*rl.globalConfig, rl.now)
	}
	return rl
}

// Allow reports whether a call to method may proceed and consumes a token.
func (rl *RateLimiter) Allow(method string) bool {
	if !rl.IsEnabled() {
		return true
	}
	if rl.globalBucket != nil && !rl.globalBucket.allow() {
		return false
	}
	bucket := rl.getBucket(method)
	if bucket == nil {
		return true
	}
	return bucket.allow()
}

func (rl *RateLimiter) getBucket(method string) *tokenBucket {
	rl.mu.RLock()
	bucket, exists := rl.buckets[method]
	rl.mu.RUnlock()
	if exists {
		return bucket
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if bucket, exists = rl.buckets[method]; exists {
		return bucket
	}
	cfg, ok := rl.configs[method]
	if !ok {
		return nil
	}
	bucket = newTokenBucket(cfg, rl.now)
	rl.buckets[method] = bucket
	return bucket
}

// MethodStats reports limiter counters for one method.
type MethodStats struct {
	Method           string
	Available        float64
	RequestsPerSec   float64
	BurstSize        int
	TotalRequests    int64
	DeniedRequests   int64
	DeniedPercentage float64
}

// Stats returns per-method statistics sorted by method name.
func (rl *RateLimiter) Stats() []MethodStats {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	stats := make([]MethodStats, 0, len(rl.configs))
	for method, cfg := range rl.configs {
		ms := MethodStats{
			Method:         method,
			RequestsPerSec: cfg.RequestsPerSecond,
			BurstSize:      cfg.BurstSize,
			Available:      float64(cfg.BurstSize),
		}
		if bucket, ok := rl.buckets[method]; ok {
			ms.Available, ms.TotalRequests, ms.DeniedRequests = bucket.stats()
			ms.DeniedPercentage = deniedPercentage(ms.TotalRequests, ms.DeniedRequests)
		}
		stats = append(stats, ms)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Method < stats[j].Method })
	return stats
}

// GlobalStats returns statistics for the global bucket, or nil without one.
func (rl *RateLimiter) GlobalStats() *MethodStats {
	if rl.globalBucket == nil {
		return nil
	}
	available, total, denied := rl.globalBucket.stats()
	return &MethodStats{
		Method:           "global",
		Available:        available,
		RequestsPerSec:   rl.globalConfig.RequestsPerSecond,
		BurstSize:        rl.globalConfig.BurstSize,
		TotalRequests:    total,
		DeniedRequests:   denied,
		DeniedPercentage: deniedPercentage(total, denied),
	}
}

func deniedPercentage(total, denied int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(denied) / float64(total) * 100
}

// SetEnabled toggles limiting at runtime.
func (rl *RateLimiter) SetEnabled(enabled bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.enabled = enabled
}

// IsEnabled reports whether limiting is on.
func (rl *RateLimiter) IsEnabled() bool {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return rl.enabled
}

// UnaryServerInterceptor rejects calls over the limit with ResourceExhausted.
func (rl *RateLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !rl.Allow(info.FullMethod) {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for method %s", info.FullMethod)
		}
		return handler(ctx, req)
	}
}
