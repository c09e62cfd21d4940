// Package lightwire is a tile-rotation wiring puzzle engine.
//
// A board is a rows×cols grid of tiles, each carrying up to four wire
// connectors. Generation lays a random spanning tree over the grid, so every
// tile is connected and there are no loops. The tiles are then scrambled by
// random rotations. The player rotates tiles and drags a power station along
// lit wires until every tile is powered within the station's radius.
//
// What lives where:
//
//	core/          Tile, Grid arena and Direction enum; connector reciprocity
//	prim_kruskal/  Kruskal and Prim minimum spanning trees over int vertices
//	maze/          candidate edges, random weights, tree carving, rotation noise
//	bfs/           reciprocity-aware breadth-first search with hooks
//	dfs/           cycle detection, component count, tree validation
//	power/         radius-limited power propagation and solved checks
//	diameter/      double-BFS diameter and the power radius rule
//	game/          session orchestration: generate, rotate, move, reset
//	config/        YAML settings for the front end
//	cmd/lightemall tcell terminal front end with a beep solve chime
//
// Every algorithm package is deterministic for a given seed and free of
// logging; only game accepts an injected *logrus.Logger.
//
// Quick start:
//
//	g := game.New(game.WithMethod(prim_kruskal.MethodPrim))
//	snap, err := g.Generate(10, 10, 42)
//	if err != nil {
//		return err
//	}
//	_, _ = g.RotateTile(3, 4)
//	res := g.MoveSource(core.Right)
//	fmt.Println(res.Success, g.IsSolved(), snap.Radius)
//
// Requires Go 1.24+.
package lightwire
