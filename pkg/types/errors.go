package types

import "errors"

// Sentinel errors surfaced by pkg/registry and pkg/builder during
// construction. Step-time has no error regime by design — see pkg/evaluator.
var (
	// ErrUnknownKind: a spec references a kind outside the registry.
	ErrUnknownKind = errors.New("unknown node kind")

	// ErrUnknownReference: a spec references an identity that was never declared.
	ErrUnknownReference = errors.New("unknown node reference")

	// ErrCycle: traversal re-entered a spec currently on the DFS stack.
	ErrCycle = errors.New("cycle detected among node specs")

	// ErrArityMismatch: a kind's declared arity and supplied inputs disagree.
	ErrArityMismatch = errors.New("arity mismatch for node kind")

	// ErrMissingParameter: a required scalar parameter is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrCycleOrForwardReference: an ArenaGraph was constructed with a node
	// whose input index is not strictly smaller than the node's own index.
	ErrCycleOrForwardReference = errors.New("cycle or forward reference in arena")

	// ErrNodeNotFound: a NodeID lookup fell outside the arena's bounds.
	ErrNodeNotFound = errors.New("node not found in arena")
)
