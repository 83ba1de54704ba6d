// Package ratelimit provides per-client token-bucket rate limiting for the API.
package ratelimit

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Rule is a rate limit for one endpoint, matched by method and path prefix
type Rule struct {
	Method string
	Path   string // prefix match; longest prefix wins
	Limit  int    // requests per window
	Window time.Duration
	Burst  int // bucket capacity; defaults to Limit when 0
}

// Config controls the limiter. Loaded from environment variables so
// deployments can tune limits without a rebuild.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Rules           []Rule
}

// LoadConfig loads limiter configuration from environment variables
// (RATE_LIMIT_ENABLED, RATE_LIMIT_DEFAULT_LIMIT, RATE_LIMIT_DEFAULT_WINDOW,
// RATE_LIMIT_WHITELIST).
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the per-endpoint limits. Analysis and training are
// CPU-heavy multi-stage runs and get much tighter budgets than reads.
func DefaultRules() []Rule {
	return []Rule{
		{Method: "POST", Path: "/api/analyze", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: "POST", Path: "/api/train", Limit: 6, Window: time.Minute, Burst: 2},
	}
}

// Info reports the limiter decision for response headers
type Info struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// bucket is a token bucket refilled continuously at rate tokens/second
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	lastUsed   time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	now := time.Now()
	return &bucket{
		tokens:     float64(capacity),
		capacity:   float64(capacity),
		refillRate: refillRate,
		lastRefill: now,
		lastUsed:   now,
	}
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = minFloat(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now
	b.lastUsed = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) status() (remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	remaining = int(b.tokens)
	if b.tokens >= b.capacity {
		return remaining, time.Now()
	}
	secondsToFull := (b.capacity - b.tokens) / b.refillRate
	return remaining, time.Now().Add(time.Duration(secondsToFull * float64(time.Second)))
}

// Limiter tracks one token bucket per (client, matched rule) pair
type Limiter struct {
	config *Config

	mu      sync.Mutex
	buckets map[string]*bucket

	stop chan struct{}
	once sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	l := &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may perform the request.
// Whitelisted clients and disabled limiters always pass.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Limit: -1}
	}

	// Health checks are never limited
	if path == "/health" {
		return true, Info{Limit: -1}
	}

	limit, window, burst := l.config.DefaultLimit, l.config.DefaultWindow, l.config.DefaultLimit
	if rule := matchRule(path, method, l.config.Rules); rule != nil {
		limit, window = rule.Limit, rule.Window
		burst = rule.Burst
		if burst == 0 {
			burst = rule.Limit
		}
	}

	key := fmt.Sprintf("%s|%s|%s", clientID, method, path)
	b := l.getBucket(key, limit, window, burst)

	allowed := b.allow()
	remaining, reset := b.status()
	return allowed, Info{Limit: limit, Remaining: remaining, Reset: reset}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) getBucket(key string, limit int, window time.Duration, burst int) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	b := newBucket(burst, float64(limit)/window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.dropIdleBuckets()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) dropIdleBuckets() {
	cutoff := time.Now().Add(-2 * l.config.CleanupInterval)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		b.mu.Lock()
		idle := b.lastUsed.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}

// matchRule returns the longest-prefix rule matching the request, or nil
func matchRule(path, method string, rules []Rule) *Rule {
	var best *Rule
	for i := range rules {
		rule := &rules[i]
		if rule.Method != method || !strings.HasPrefix(path, rule.Path) {
			continue
		}
		if best == nil || len(rule.Path) > len(best.Path) {
			best = rule
		}
	}
	return best
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
