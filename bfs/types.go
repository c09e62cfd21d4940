// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Grid.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfRange is returned when the start index is not a tile of the grid.
	ErrStartOutOfRange = errors.New("bfs: start tile out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnEnqueue is called when a tile is discovered, right after its
	// Distance is assigned. Receives the tile index and its depth.
	OnEnqueue func(idx, depth int)

	// OnVisit is called when a tile is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(idx, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(idx, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(idx, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: tiles deeper than d are never discovered
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal.
//   - Order: tiles visited, in visit sequence (Order[0] is the start).
//   - Farthest: first-discovered tile at MaxDistance.
//   - MaxDistance: largest distance assigned.
//
// Per-tile distances live in the grid's Tile.Distance fields.
type Result struct {
	Order       []int
	Farthest    int
	MaxDistance int
}

// Reached reports how many tiles the traversal discovered.
func (r *Result) Reached() int {
	return len(r.Order)
}
