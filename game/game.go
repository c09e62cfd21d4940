package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lightwire/core"
	"github.com/katalvlaran/lightwire/dfs"
	"github.com/katalvlaran/lightwire/diameter"
	"github.com/katalvlaran/lightwire/maze"
	"github.com/katalvlaran/lightwire/power"
	"github.com/katalvlaran/lightwire/prim_kruskal"
)

// origin is the tile the diameter is measured from and the source starts on.
const origin = 0

// Game is one puzzle session. The zero value is not usable; call New.
type Game struct {
	opts Options

	grid   *core.Grid
	source int
	radius int

	baseSeed   int64  // seed passed to Generate
	seed       int64  // seed of the current board
	generation uint64 // number of Resets since Generate

	moves     int
	rotations int
	ticks     int
	phase     Phase
}

// New returns an Uninitialized game. Call Generate before anything else.
func New(opts ...Option) *Game {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Game{opts: o, source: -1}
}

// Generate builds a fresh width×height board from seed. On error the game
// keeps its previous board, if any.
func (g *Game) Generate(width, height int, seed int64) (Snapshot, error) {
	if err := g.build(height, width, seed); err != nil {
		return Snapshot{}, err
	}
	g.baseSeed = seed
	g.generation = 0
	g.opts.Logger.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"seed":   seed,
		"method": g.opts.Method,
		"radius": g.radius,
	}).Info("board generated")

	return g.snapshot(), nil
}

// Reset regenerates a board of the same size from the next derived seed.
func (g *Game) Reset() (Snapshot, error) {
	if g.grid == nil {
		return Snapshot{}, ErrNotGenerated
	}
	next := g.generation + 1
	seed := maze.DeriveSeed(g.baseSeed, next)
	if err := g.build(g.grid.Rows(), g.grid.Cols(), seed); err != nil {
		return Snapshot{}, err
	}
	g.generation = next
	g.opts.Logger.WithFields(logrus.Fields{
		"generation": next,
		"seed":       seed,
		"radius":     g.radius,
	}).Info("board reset")

	return g.snapshot(), nil
}

// build runs the generation pipeline on a scratch grid and commits it only
// when every step succeeded.
func (g *Game) build(rows, cols int, seed int64) error {
	grid, err := core.NewGrid(rows, cols)
	if err != nil {
		return fmt.Errorf("game: generate: %w", err)
	}
	rng := maze.NewRand(seed)

	if _, err = maze.Generate(grid, rng, prim_kruskal.WithMethod(g.opts.Method)); err != nil {
		return fmt.Errorf("game: generate: %w", err)
	}
	if err = dfs.ValidateTree(grid); err != nil {
		return fmt.Errorf("game: generate: %w", err)
	}
	d, err := diameter.Diameter(grid, origin)
	if err != nil {
		return fmt.Errorf("game: generate: %w", err)
	}
	radius := diameter.Radius(d)

	maze.RandomizeRotations(grid, rng)
	grid.Tile(origin).Source = true
	if err = power.Propagate(grid, origin, radius); err != nil {
		return fmt.Errorf("game: generate: %w", err)
	}

	g.grid = grid
	g.source = origin
	g.radius = radius
	g.seed = seed
	g.moves, g.rotations, g.ticks = 0, 0, 0
	g.phase = Generated

	return nil
}

// RotateTile turns the tile at (row, col) one step clockwise and
// re-propagates power.
func (g *Game) RotateTile(row, col int) (Snapshot, error) {
	if g.grid == nil {
		return Snapshot{}, ErrNotGenerated
	}
	if g.locked() {
		return g.snapshot(), ErrLocked
	}
	t, err := g.grid.At(row, col)
	if err != nil {
		return g.snapshot(), fmt.Errorf("%w: rotate (%d,%d)", ErrOutOfRange, row, col)
	}

	err = g.transact(Rotated, func() {
		t.Rotate()
		g.rotations++
	})
	if err != nil {
		return g.snapshot(), err
	}

	return g.snapshot(), nil
}

// MoveSource moves the power station one tile in d when both tiles carry the
// facing connectors. Anything else, including a locked board, is a no-op
// with Success == false.
func (g *Game) MoveSource(d core.Direction) MoveResult {
	if g.grid == nil || g.locked() {
		return MoveResult{Snapshot: g.snapshot()}
	}
	nbr, ok := g.grid.Conducts(g.source, d)
	if !ok {
		return MoveResult{Snapshot: g.snapshot()}
	}

	err := g.transact(Moved, func() {
		g.grid.Tile(g.source).Source = false
		g.grid.Tile(nbr).Source = true
		g.source = nbr
		g.moves++
	})
	if err != nil {
		g.opts.Logger.WithError(err).WithField("direction", d.String()).Warn("source move rolled back")
		return MoveResult{Snapshot: g.snapshot()}
	}

	return MoveResult{Success: true, Snapshot: g.snapshot()}
}

// MoveSourceToken is MoveSource for a textual direction ("left", "up", ...).
// Unknown tokens are a no-op.
func (g *Game) MoveSourceToken(token string) MoveResult {
	d, err := core.ParseDirection(token)
	if err != nil {
		return MoveResult{Snapshot: g.snapshot()}
	}
	return g.MoveSource(d)
}

// transact applies mutate and re-propagates power. If propagation fails the
// board, source and counters are restored to their state before mutate.
func (g *Game) transact(next Phase, mutate func()) error {
	grid, source, moves, rotations := g.grid.Clone(), g.source, g.moves, g.rotations
	mutate()
	if err := g.refresh(next); err != nil {
		g.grid, g.source, g.moves, g.rotations = grid, source, moves, rotations
		return err
	}
	return nil
}

// refresh propagates power from the current source and moves to next, or
// to Solved when the board is fully powered.
func (g *Game) refresh(next Phase) error {
	if err := power.Propagate(g.grid, g.source, g.radius); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if !power.IsFullyPowered(g.grid) {
		g.phase = next
		return nil
	}
	if g.phase != Solved {
		g.opts.Logger.WithFields(logrus.Fields{
			"seed":      g.seed,
			"moves":     g.moves,
			"rotations": g.rotations,
			"ticks":     g.ticks,
		}).Info("board solved")
	}
	g.phase = Solved

	return nil
}

func (g *Game) locked() bool {
	return g.opts.LockOnSolve && g.IsSolved()
}

// IsSolved reports whether every tile is powered. False before Generate.
func (g *Game) IsSolved() bool {
	return g.grid != nil && power.IsFullyPowered(g.grid)
}

// Tick advances the elapsed-time counter unless the board is solved or not
// generated.
func (g *Game) Tick() {
	if g.grid != nil && !g.IsSolved() {
		g.ticks++
	}
}

// QueryState returns a copy of the board plus counters and phase.
func (g *Game) QueryState() State {
	return State{
		Snapshot:      g.snapshot(),
		MoveCount:     g.moves,
		RotationCount: g.rotations,
		Score:         g.moves + g.rotations,
		Ticks:         g.ticks,
		Phase:         g.phase,
		Solved:        g.IsSolved(),
		Seed:          g.seed,
	}
}

// Seed returns the seed the current board was generated from.
func (g *Game) Seed() int64 { return g.seed }

// Radius returns the power radius frozen at generation time.
func (g *Game) Radius() int { return g.radius }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

func (g *Game) snapshot() Snapshot {
	if g.grid == nil {
		return Snapshot{}
	}
	row, col := g.grid.Coordinate(g.source)
	return Snapshot{
		Rows:   g.grid.Rows(),
		Cols:   g.grid.Cols(),
		Tiles:  g.grid.Tiles(),
		Radius: g.radius,
		Source: core.Position{Row: row, Col: col},
	}
}
