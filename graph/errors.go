// Package graph models an undirected multigraph and derives the
// frontier-ordered item sequence the constraint specs in the constraints
// package build their per-level state machines against.
package graph

import "errors"

var (
	// ErrSelfLoop is returned by AddEdge for an edge with equal endpoints.
	ErrSelfLoop = errors.New("graph: self-loop edges are not supported")

	// ErrUnknownVertex is returned when a vertex id was never added via
	// AddEdge or AddVertex.
	ErrUnknownVertex = errors.New("graph: unknown vertex")

	// ErrUnknownEdge is returned for an out-of-range edge index.
	ErrUnknownEdge = errors.New("graph: unknown edge")
)
