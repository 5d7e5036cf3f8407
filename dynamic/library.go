package dynamic

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"undergo/objutil"
)

// Func is an operation of the namespace.
type Func func(args ...any) (any, error)

// Library is a namespace of named operations. A Library is safe for
// concurrent calls once all Register calls have returned.
type Library struct {
	funcs  map[string]Func
	logger *zap.Logger
	now    func() time.Time
	rand   *rand.Rand
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger dispatches are reported to at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithClock sets the time source used by throttle.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		if now != nil {
			l.now = now
		}
	}
}

// WithRand sets the random source used by random. The source is not
// safe for concurrent use, so a Library given one must not be shared.
func WithRand(r *rand.Rand) Option {
	return func(l *Library) {
		l.rand = r
	}
}

// New returns a Library holding every built-in operation.
func New(opts ...Option) *Library {
	l := &Library{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.funcs = l.builtins()
	return l
}

// Register adds an operation under name.
func (l *Library) Register(name string, f Func) error {
	if name == "" || f == nil {
		return fmt.Errorf("dynamic: register %q: %w", name, ErrInvalidArgument)
	}
	if _, ok := l.funcs[name]; ok {
		return fmt.Errorf("dynamic: register %q: %w", name, ErrDuplicateFunction)
	}
	l.funcs[name] = f
	return nil
}

// Lookup returns the operation registered under name.
func (l *Library) Lookup(name string) (Func, bool) {
	f, ok := l.funcs[name]
	return f, ok
}

// Names lists the registered operations in ascending order.
func (l *Library) Names() []string {
	return objutil.SortedKeys(l.funcs)
}

// Call runs the operation registered under name.
func (l *Library) Call(name string, args ...any) (any, error) {
	f, ok := l.funcs[name]
	if !ok {
		return nil, fmt.Errorf("dynamic: %q: %w", name, ErrUnknownFunction)
	}
	l.logger.Debug("dynamic.call", zap.String("func", name), zap.Int("args", len(args)))

	out, err := f(args...)
	if err != nil {
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			l.logger.Debug("dynamic.invalid_argument",
				zap.String("func", argErr.Func),
				zap.Int("position", argErr.Position),
				zap.String("reason", argErr.Reason),
			)
		}
		return nil, err
	}
	return out, nil
}
