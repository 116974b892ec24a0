package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/octonav/internal/resource"
)

// ErrClosed is returned by Submit after Close was called.
var ErrClosed = errors.New("scheduler closed")

// Finder runs one search. It must be safe for concurrent use.
type Finder[Req, Res any] func(ctx context.Context, req Req) (Res, error)

// Options configures a Scheduler.
type Options struct {
	// MaxConcurrent bounds the number of searches running at once.
	MaxConcurrent int
	// RequestsPerSecond limits admission in Submit. Zero means unlimited.
	RequestsPerSecond float64
	// Burst is the admission bucket size.
	Burst int
	// Buffer is the capacity of the results channel.
	Buffer int
}

// Response is the outcome of one request.
type Response[Req, Res any] struct {
	ID       string
	Request  Req
	Result   Res
	Err      error
	Duration time.Duration
}

// Stats is a snapshot of scheduler counters.
type Stats struct {
	Submitted int64
	Pending   int64
	// Running is the number of held search slots.
	Running int64
	// MaxConcurrent is the slot limit.
	MaxConcurrent int64
	Completed     int64
	Failed        int64
}

// Scheduler runs requests through a Finder with bounded concurrency.
type Scheduler[Req, Res any] struct {
	find    Finder[Req, Res]
	rc      *resource.Controller
	results chan Response[Req, Res]

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	once   sync.Once

	submitted atomic.Int64
	pending   atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// New creates a scheduler that runs find for every submitted request.
func New[Req, Res any](find Finder[Req, Res], opts Options) *Scheduler[Req, Res] {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if opts.Buffer < 0 {
		opts.Buffer = 0
	}

	return &Scheduler[Req, Res]{
		find: find,
		rc: resource.NewController(resource.Config{
			MaxConcurrentSearches: int64(opts.MaxConcurrent),
			RequestsPerSecond:     opts.RequestsPerSecond,
			Burst:                 opts.Burst,
		}),
		results: make(chan Response[Req, Res], opts.Buffer),
	}
}

// Submit queues req and returns its request id.
//
// Submit waits only for admission under the configured rate; ctx bounds
// that wait. The search itself runs detached from ctx and always reaches a
// terminal state.
func (s *Scheduler[Req, Res]) Submit(ctx context.Context, req Req) (string, error) {
	if s.isClosed() {
		return "", ErrClosed
	}
	if err := s.rc.Admit(ctx); err != nil {
		return "", fmt.Errorf("admit request: %w", err)
	}

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return "", ErrClosed
	}
	s.wg.Add(1)
	s.mu.RUnlock()

	id := uuid.NewString()
	s.submitted.Add(1)
	s.pending.Add(1)

	go s.run(id, req)

	return id, nil
}

func (s *Scheduler[Req, Res]) run(id string, req Req) {
	defer s.wg.Done()

	// Acquire cannot fail with a context that is never done.
	_ = s.rc.AcquireSearch(context.Background())
	s.pending.Add(-1)

	start := time.Now()
	res, err := s.safeFind(req)
	elapsed := time.Since(start)

	s.rc.ReleaseSearch()
	s.completed.Add(1)
	if err != nil {
		s.failed.Add(1)
	}

	s.results <- Response[Req, Res]{
		ID:       id,
		Request:  req,
		Result:   res,
		Err:      err,
		Duration: elapsed,
	}
}

func (s *Scheduler[Req, Res]) safeFind(req Req) (res Res, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("search panicked: %v", r)
		}
	}()
	return s.find(context.Background(), req)
}

// Results returns the channel on which responses are delivered. It is
// closed by Close once all accepted requests have been answered. Callers
// must keep draining it; a full channel stalls finished searches.
func (s *Scheduler[Req, Res]) Results() <-chan Response[Req, Res] {
	return s.results
}

// Close stops accepting requests, waits for accepted ones to finish and
// closes the results channel. It is safe to call more than once.
func (s *Scheduler[Req, Res]) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.wg.Wait()
		close(s.results)
	})
	return nil
}

func (s *Scheduler[Req, Res]) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Stats returns a snapshot of the scheduler counters.
func (s *Scheduler[Req, Res]) Stats() Stats {
	return Stats{
		Submitted:     s.submitted.Load(),
		Pending:       s.pending.Load(),
		Running:       s.rc.InFlight(),
		MaxConcurrent: s.rc.MaxConcurrentSearches(),
		Completed:     s.completed.Load(),
		Failed:        s.failed.Load(),
	}
}
