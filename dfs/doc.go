// Package dfs implements depth-first structure checks over a core.Grid's
// connector graph: cycle detection, component counting and spanning-tree
// validation.
//
// What:
//
//   - DetectCycle: finds one cycle among reciprocal connector pairs using
//     vertex colouring (White, Gray, Black) and back-edge detection, and
//     returns it as a closed list of tile indices.
//   - Components: counts connected components of the connector graph.
//   - ValidateTree: reports whether the connector graph is a spanning tree
//     (connected, acyclic, exactly rows·cols−1 edges).
//
// Only edges that conduct (connector on both sides, see core.Grid.Conducts)
// count. One-sided flags are invisible here, as they are to power flow.
//
// The traversal is iterative with an explicit stack, so stack depth does not
// grow with grid size.
//
// Complexity:
//
//   - All functions: Time O(V+E), Memory O(V) with E ≤ 2V on a grid.
//
// Errors:
//
//   - ErrGridNil        grid pointer is nil
//   - ErrCycleDetected  connector graph contains a cycle
//   - ErrDisconnected   connector graph has more than one component
package dfs
