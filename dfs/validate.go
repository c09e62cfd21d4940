package dfs

import (
	"fmt"

	"github.com/katalvlaran/lightwire/core"
)

// Components returns the number of connected components of g's connector
// graph. An isolated tile is its own component.
func Components(g *core.Grid) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	n := g.Len()
	seen := make([]bool, n)
	stack := make([]int, 0, n)
	count := 0

	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		count++
		seen[root] = true
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, d := range core.Directions {
				if v, ok := g.Conducts(u, d); ok && !seen[v] {
					seen[v] = true
					stack = append(stack, v)
				}
			}
		}
	}

	return count, nil
}

// ValidateTree reports whether g's connector graph is a spanning tree of the
// grid: a single component with no cycle (and hence rows·cols−1 edges).
// Returns ErrCycleDetected or ErrDisconnected wrapped with detail otherwise.
func ValidateTree(g *core.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	found, cycle, err := DetectCycle(g)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("%w: %v", ErrCycleDetected, cycle)
	}
	comps, err := Components(g)
	if err != nil {
		return err
	}
	if comps != 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, comps)
	}

	return nil
}
