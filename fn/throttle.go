package fn

import (
	"sync"
	"time"

	"github.com/samber/mo"
)

type options struct {
	now func() time.Time
}

// Option configures Throttle.
type Option func(*options)

// WithClock replaces time.Now as the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// throttler admits one call per window. The window opens on every admitted
// call and lasts delay.
type throttler struct {
	mu    sync.Mutex
	delay time.Duration
	now   func() time.Time
	last  time.Time
	fired bool
}

func newThrottler(delay time.Duration, opts []Option) *throttler {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &throttler{delay: delay, now: o.now}
}

func (t *throttler) allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if t.fired && now.Sub(t.last) < t.delay {
		return false
	}
	t.last = now
	t.fired = true
	return true
}

// Throttle wraps fn so that it runs at most once per delay. The first call
// always runs; calls made less than delay after the last run are dropped,
// not queued, and return None.
func Throttle[T, R any](fn func(T) R, delay time.Duration, opts ...Option) func(T) mo.Option[R] {
	t := newThrottler(delay, opts)
	return func(arg T) mo.Option[R] {
		if !t.allow() {
			return mo.None[R]()
		}
		return mo.Some(fn(arg))
	}
}

// ThrottleFunc is Throttle for functions without arguments or results.
// The returned function reports whether fn ran.
func ThrottleFunc(fn func(), delay time.Duration, opts ...Option) func() bool {
	t := newThrottler(delay, opts)
	return func() bool {
		if !t.allow() {
			return false
		}
		fn()
		return true
	}
}
