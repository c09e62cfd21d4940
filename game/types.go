package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lightwire/core"
)

// Sentinel errors for game operations.
var (
	// ErrNotGenerated is returned by operations that need a board before the
	// first Generate.
	ErrNotGenerated = errors.New("game: board not generated")

	// ErrLocked is returned by RotateTile on a solved board when the game was
	// built WithLockOnSolve(true).
	ErrLocked = errors.New("game: board is solved and locked")

	// ErrOutOfRange is returned by RotateTile for coordinates outside the
	// board. errors.Is also matches core.ErrOutOfRange.
	ErrOutOfRange = fmt.Errorf("game: %w", core.ErrOutOfRange)
)

// Phase is the position of a Game in its per-generation state machine.
type Phase int

const (
	// Uninitialized: no board yet.
	Uninitialized Phase = iota
	// Generated: fresh board, no player action yet.
	Generated
	// Rotated: last action was a tile rotation.
	Rotated
	// Moved: last action was a successful source move.
	Moved
	// Solved: every tile is powered.
	Solved
)

var phaseNames = [...]string{"uninitialized", "generated", "rotated", "moved", "solved"}

// String returns the lower-case phase name.
func (p Phase) String() string {
	if p < Uninitialized || p > Solved {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Snapshot is a deep copy of the board as a renderer needs it: per-tile
// connectors, powered flag, source flag and distance (for falloff colouring).
type Snapshot struct {
	Rows, Cols int
	Tiles      []core.Tile // row-major, len == Rows*Cols
	Radius     int
	Source     core.Position
}

// At returns the tile at (row, col) and false when the coordinates are
// outside the snapshot.
func (s Snapshot) At(row, col int) (core.Tile, bool) {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return core.Tile{}, false
	}
	return s.Tiles[row*s.Cols+col], true
}

// MoveResult reports whether a source move happened, with the board after it.
type MoveResult struct {
	Success  bool
	Snapshot Snapshot
}

// State is the full externally visible game state.
type State struct {
	Snapshot

	// MoveCount counts successful source moves this generation.
	MoveCount int
	// RotationCount counts tile rotations this generation.
	RotationCount int
	// Score is MoveCount + RotationCount, the number of player actions.
	Score int
	// Ticks counts Tick calls made while the board was unsolved.
	Ticks int

	Phase  Phase
	Solved bool
	Seed   int64
}
