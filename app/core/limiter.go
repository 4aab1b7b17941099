package core

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/time/rate"
)

type Limiter interface {
	Allow() bool
}

type LimitConfig struct {
	// Limit is the allowed number of events per minute.
	Limit int
}

type LimitOption func(*LimitConfig)

func WithLimit(limit int) LimitOption {
	return func(cfg *LimitConfig) {
		if limit > 0 {
			cfg.Limit = limit
		}
	}
}

var limiters = cmap.New[*rate.Limiter]()

// UseLimiter returns the shared limiter for key, creating it on first
// use. Keys are usually "<user-id>:<api>".
func (s *Core) UseLimiter(key string, opts ...LimitOption) Limiter {
	cfg := &LimitConfig{
		Limit: 60,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	l, exist := limiters.Get(key)
	if !exist {
		limit := rate.Every(time.Minute / time.Duration(cfg.Limit))
		l = rate.NewLimiter(limit, cfg.Limit*2)
		limiters.Set(key, l)
	}
	return l
}
