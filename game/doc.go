// Package game orchestrates a lightwire puzzle: generation, tile rotation,
// power-station movement and solved detection.
//
// A Game exclusively owns its core.Grid. Callers only ever receive deep
// copies (Snapshot), so a renderer can hold on to a frame while the board
// keeps changing.
//
// Generation (Generate, Reset):
//
//  1. Build a fresh rows×cols grid and a random spanning tree (maze.Generate).
//  2. Validate the tree (dfs.ValidateTree).
//  3. Measure its diameter from the origin and freeze Radius = diameter/2 + 1.
//  4. Scramble with maze.RandomizeRotations.
//  5. Place the source at the top-left tile and propagate power.
//
// The radius stays fixed until the next generation. Rotations change which
// tiles are reachable, never the radius.
//
// Phases:
//
//	Uninitialized ─Generate→ Generated ─RotateTile/MoveSource→ Rotated | Moved
//	                              ▲                                   │
//	                              └──────────── Reset ◄── Solved ◄────┘
//
// Solved is entered as soon as a rotation or move leaves every tile powered.
// Reset is accepted from any generated phase.
//
// Concurrency: a Game is not goroutine-safe. Drive it from one goroutine,
// typically the front end's event loop.
package game
