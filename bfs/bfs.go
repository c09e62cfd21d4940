package bfs

import (
	"fmt"

	"github.com/katalvlaran/lightwire/core"
)

// queueItem pairs a tile index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *core.Grid
	opts  BFSOptions
	queue []queueItem
	head  int
	res   *Result
}

// BFS runs breadth-first search on g starting from tile index start,
// applying any number of functional Options.
// Every tile's Distance is reset to core.Unreached before the sweep, so no
// value from an earlier pass survives.
// Returns ErrGridNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Grid, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.Len() {
		return nil, fmt.Errorf("%w: %d on %d tiles", ErrStartOutOfRange, start, g.Len())
	}

	g.ResetDistances()
	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:    make([]int, 0, n),
			Farthest: start,
		},
	}

	// Seed queue with start tile
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue assigns the tile's distance, tracks the farthest tile,
// calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(idx, depth int) {
	w.grid.Tile(idx).Distance = depth
	if depth > w.res.MaxDistance {
		// strict >: the first tile found at a new maximum keeps it
		w.res.MaxDistance = depth
		w.res.Farthest = idx
	}
	w.opts.OnEnqueue(idx, depth)
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.idx)
		if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at tile %d: %w", item.idx, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors discovers every unseen tile reachable from item through a
// reciprocal connector pair, honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, d := range core.Directions {
		nbr, ok := w.grid.Conducts(item.idx, d)
		if !ok {
			continue
		}
		// first time seen?
		if w.grid.Tile(nbr).Distance == core.Unreached {
			w.enqueue(nbr, nextDepth)
		}
	}
}
