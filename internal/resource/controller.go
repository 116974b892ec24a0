package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds search limits.
type Config struct {
	// MaxConcurrentSearches is the number of searches allowed to run at once.
	// If 0, defaults to 1.
	MaxConcurrentSearches int64

	// RequestsPerSecond limits how fast new requests are admitted.
	// If 0, unlimited.
	RequestsPerSecond float64

	// Burst is the admission bucket size. Defaults to MaxConcurrentSearches.
	Burst int
}

// Controller bounds concurrent searches and the admission rate.
type Controller struct {
	cfg Config

	slots    *semaphore.Weighted
	inFlight atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentSearches <= 0 {
		cfg.MaxConcurrentSearches = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(cfg.MaxConcurrentSearches)
	}

	c := &Controller{
		cfg:   cfg,
		slots: semaphore.NewWeighted(cfg.MaxConcurrentSearches),
	}

	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}

	return c
}

// AcquireSearch reserves a search slot.
// Blocks until a slot is free or ctx is done.
func (c *Controller) AcquireSearch(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	c.inFlight.Add(1)
	return nil
}

// ReleaseSearch releases a search slot.
func (c *Controller) ReleaseSearch() {
	if c == nil {
		return
	}
	c.inFlight.Add(-1)
	c.slots.Release(1)
}

// InFlight returns the number of held search slots.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}

// MaxConcurrentSearches returns the configured slot count.
func (c *Controller) MaxConcurrentSearches() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxConcurrentSearches
}

// Admit waits until the admission rate allows one more request.
func (c *Controller) Admit(ctx context.Context) error {
	if c == nil || c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
