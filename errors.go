// Package zdd implements a top-down, frontier-based zero-suppressed decision
// diagram (ZDD) construction engine.
//
// A ZDD compactly represents a family of subsets of a finite ground set of
// binary variables. This package owns its own node table (no dependency on
// an external BDD/ZDD library); construction is driven by a small Spec
// contract that tracks only the per-level "frontier state" a constraint
// needs, rather than materialising every partial assignment.
//
// # Basic usage
//
//	d, err := constraints.LinearInequalities(context.Background(), a, sense, b)
//	n, err := d.Cardinality(context.Background())
//
// See the constraints package for the concrete graph and linear-inequality
// specs, and the graph package for the frontier-ordered graph model they
// operate on.
package zdd

import "errors"

// Sentinel errors returned by the engine. Wrap with fmt.Errorf("...: %w", err)
// for additional context; compare with errors.Is.
var (
	// ErrInvalidNode indicates a NodeID does not exist in the node table.
	ErrInvalidNode = errors.New("zdd: invalid node")

	// ErrNodeLimit indicates the configured node-table cap was exceeded
	// during construction. Construction is aborted; no partial ZDD is
	// returned.
	ErrNodeLimit = errors.New("zdd: node table limit exceeded")

	// ErrContractViolation indicates a Spec returned a next-level value
	// outside [1, level) from Step, which means a misimplemented Spec, not
	// an infeasible problem. Change also returns it for a level below 1.
	ErrContractViolation = errors.New("zdd: spec contract violation")

	// ErrVariableMismatch indicates two diagrams passed to Union or
	// Intersect were not built over the same number of variables.
	ErrVariableMismatch = errors.New("zdd: variable count mismatch")

	// ErrInsufficientCosts indicates a cost vector passed to
	// LinearOptimization is shorter than the diagram's variable count.
	ErrInsufficientCosts = errors.New("zdd: insufficient cost data")
)
