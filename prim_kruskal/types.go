// Package prim_kruskal defines the Edge type, configuration options and sentinel
// errors for MST computation. It supports selecting between Kruskal and Prim via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
)

// ErrDisconnected indicates that no spanning tree covering all n vertices exists:
// n == 0, or fewer than n−1 edges could be accepted.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrEdgeEndpoint indicates an edge endpoint outside 0..n-1.
var ErrEdgeEndpoint = errors.New("prim_kruskal: edge endpoint out of range")

// ErrRootOutOfRange indicates a Prim root outside 0..n-1.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected weighted candidate connection between vertices From and To.
type Edge struct {
	From, To int
	Weight   int
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root int: start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(n, edges).
//	– If opts.Method == MethodPrim:    calls Prim(n, edges, opts.Root).
//	– Otherwise:                        returns ErrUnknownMethod.
func Compute(n int, edges []Edge, opts MSTOptions) ([]Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validateEdges checks that every endpoint lies in 0..n-1.
func validateEdges(n int, edges []Edge) error {
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d→%d) with n=%d", ErrEdgeEndpoint, i, e.From, e.To, n)
		}
	}
	return nil
}
