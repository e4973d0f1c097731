package loop

import (
	"context"
	"log"
	"sync"
	"time"
)

// Stepper advances by one frame. *field.Field satisfies it.
type Stepper interface {
	Step()
}

type Animator struct {
	target Stepper
	sched  Scheduler

	mu      sync.Mutex
	running bool
	pending FrameID
	frames  uint64
	limit   uint64
	hooks   []func(time.Time)
	done    chan struct{}
}

type Option func(*Animator)

// WithFrameHook runs fn after every step, still under the frame lock.
func WithFrameHook(fn func(time.Time)) Option {
	return func(a *Animator) { a.hooks = append(a.hooks, fn) }
}

// WithFrameLimit stops the animator from inside the frame that completes
// the n-th step, so no further frame is requested. Zero means no limit.
func WithFrameLimit(n uint64) Option {
	return func(a *Animator) { a.limit = n }
}

func New(target Stepper, sched Scheduler, opts ...Option) *Animator {
	a := &Animator{target: target, sched: sched}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Animator) OnFrame(fn func(time.Time)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Start schedules the first frame. Calling Start on a running animator is a
// no-op.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return
	}
	a.running = true
	a.done = make(chan struct{})
	a.request()
	log.Printf("loop: started, first frame %d", a.pending)
}

// request schedules the next frame. Callers hold a.mu, and the callback
// reads its own id only after taking a.mu.
func (a *Animator) request() {
	id := new(FrameID)
	*id = a.sched.RequestFrame(func(now time.Time) { a.tick(id, now) })
	a.pending = *id
}

func (a *Animator) tick(id *FrameID, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// torn down, or superseded by a restart
	if !a.running || *id != a.pending {
		return
	}

	a.target.Step()
	a.frames++
	for _, h := range a.hooks {
		h(now)
	}
	if a.limit > 0 && a.frames >= a.limit {
		a.running = false
		a.pending = 0
		close(a.done)
		log.Printf("loop: frame limit %d reached", a.limit)
		return
	}
	a.request()
}

// Stop cancels the outstanding frame request. After Stop returns the target
// is not stepped again, even by a callback that was already firing.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}
	a.running = false
	close(a.done)
	a.sched.CancelFrame(a.pending)
	log.Printf("loop: stopped after %d frames, cancelled frame %d", a.frames, a.pending)
	a.pending = 0
}

// Run animates until ctx is done or the frame limit is reached; the latter
// returns nil.
func (a *Animator) Run(ctx context.Context) error {
	a.Start()
	select {
	case <-ctx.Done():
		a.Stop()
		return ctx.Err()
	case <-a.Done():
		return nil
	}
}

// Done is closed when the current run ends, by Stop or by the frame limit.
// It is nil before the first Start.
func (a *Animator) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

// Do runs fn between frames, so a host can reset or read the target without
// racing a frame callback.
func (a *Animator) Do(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn()
}

func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

func (a *Animator) Frames() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames
}
