package dfs

import "github.com/katalvlaran/lightwire/core"

// DetectCycle inspects g's connector graph for a cycle.
// Returns (true, cycle, nil) with cycle = [v0 v1 ... vk v0] for the first
// back-edge found (roots tried in index order, neighbours in core.Directions
// order), or (false, nil, nil) when the graph is a forest.
func DetectCycle(g *core.Grid) (bool, []int, error) {
	if g == nil {
		return false, nil, ErrGridNil
	}

	n := g.Len()
	state := make([]int, n)  // White/Gray/Black per tile
	parent := make([]int, n) // DFS tree parent, for cycle reconstruction
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		parent[root] = -1
		stack = append(stack[:0], frame{idx: root, parent: -1})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(core.Directions) {
				// all sides probed: finish this tile
				state[top.idx] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			d := core.Directions[top.next]
			top.next++

			nbr, ok := g.Conducts(top.idx, d)
			if !ok || nbr == top.parent {
				// no edge, or the tree edge we arrived through
				continue
			}
			switch state[nbr] {
			case White:
				state[nbr] = Gray
				parent[nbr] = top.idx
				stack = append(stack, frame{idx: nbr, parent: top.idx})
			case Gray:
				// back-edge top.idx → nbr closes a cycle through the stack
				return true, unwind(parent, top.idx, nbr), nil
			}
		}
	}

	return false, nil, nil
}

// unwind rebuilds the cycle nbr → ... → from → nbr by following parent links
// from the back-edge's source up to its target.
func unwind(parent []int, from, to int) []int {
	var rev []int
	for v := from; v != to; v = parent[v] {
		rev = append(rev, v)
	}
	cycle := make([]int, 0, len(rev)+2)
	cycle = append(cycle, to)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}

	return append(cycle, to)
}
