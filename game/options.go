package game

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lightwire/prim_kruskal"
)

// Options configures a Game.
type Options struct {
	// Method selects the spanning-tree algorithm: prim_kruskal.MethodKruskal
	// (default) or prim_kruskal.MethodPrim.
	Method string

	// Logger receives generation, reset and solve events as Info entries
	// with fields. Never nil after DefaultOptions; the default discards.
	Logger *logrus.Logger

	// LockOnSolve rejects rotations and source moves once the board is solved,
	// until the next Reset or Generate.
	LockOnSolve bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Kruskal generation, a discarding logger and no lock.
func DefaultOptions() Options {
	return Options{
		Method:      prim_kruskal.MethodKruskal,
		Logger:      discardLogger(),
		LockOnSolve: false,
	}
}

// WithMethod sets the spanning-tree algorithm. Unknown names surface as an
// error from Generate.
func WithMethod(method string) Option {
	return func(o *Options) {
		o.Method = method
	}
}

// WithLogger sets the event logger. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLockOnSolve freezes a solved board until it is regenerated.
func WithLockOnSolve(lock bool) Option {
	return func(o *Options) {
		o.LockOnSolve = lock
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
