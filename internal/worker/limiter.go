package worker

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// hostState is the throttle for one host
type hostState struct {
	limiter *rate.Limiter

	mu   sync.Mutex
	last time.Time // start of the most recent permitted fetch
}

// Limiter throttles remote fetches per host and honors robots.txt crawl delays
type Limiter struct {
	mu    sync.Mutex
	hosts map[string]*hostState
	rate  rate.Limit
	burst int
	now   func() time.Time
}

// NewLimiter creates a per-host limiter. A rate of zero or less disables the
// token bucket; crawl delays still apply.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}
	return &Limiter{
		hosts: make(map[string]*hostState),
		rate:  limit,
		burst: burst,
		now:   time.Now,
	}
}

// Wait blocks until the URL's host may be fetched
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	return l.WaitWithDelay(ctx, rawURL, 0)
}

// WaitWithDelay blocks on the host's token bucket and then until crawlDelay
// has passed since the previous fetch of the same host. The first fetch of a
// host never waits for the crawl delay.
func (l *Limiter) WaitWithDelay(ctx context.Context, rawURL string, crawlDelay time.Duration) error {
	host, err := hostOf(rawURL)
	if err != nil {
		return err
	}
	h := l.host(host)

	if err := h.limiter.Wait(ctx); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if crawlDelay > 0 && !h.last.IsZero() {
		if wait := h.last.Add(crawlDelay).Sub(l.now()); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	h.last = l.now()
	return nil
}

// Hosts returns the number of hosts seen so far
func (l *Limiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hosts)
}

func (l *Limiter) host(name string) *hostState {
	l.mu.Lock()
	defer l.mu.Unlock()

	h, ok := l.hosts[name]
	if !ok {
		h = &hostState{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.hosts[name] = h
	}
	return h
}

// hostOf returns the lowercased host of an absolute URL
func hostOf(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("no host in %q", rawURL)
	}
	return strings.ToLower(parsed.Host), nil
}
