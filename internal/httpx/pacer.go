package httpx

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// hostPacer rate-limits per hostname (harvest.greenhouse.io, api.monday.com, …).
type hostPacer struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func newHostPacer(reqPerSec float64, burst int) *hostPacer {
	return &hostPacer{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (p *hostPacer) limiterFor(host string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if lim, ok := p.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(p.r, p.b)
	p.m[host] = lim
	return lim
}

func (p *hostPacer) wait(ctx context.Context, u *url.URL) error {
	if u == nil || u.Host == "" {
		return p.limiterFor("_").Wait(ctx)
	}
	return p.limiterFor(u.Host).Wait(ctx)
}
