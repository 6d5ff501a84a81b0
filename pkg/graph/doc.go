// Package graph implements the Arena Graph described in the data model:
// a single owning, topologically ordered container of nodes indexed by
// integer identity.
//
// # Invariants
//
//   - For every node i, every input index j it declares satisfies j < i.
//   - The arena is immutable after Construct returns.
//   - Lookup and Len are O(1).
//   - Input-channel resolution (InputBindings) happens once, here, not
//     per evaluator step.
//
// # Relationship to pkg/builder
//
// Construct is a low-level, already-trusted-input constructor: it checks
// the topology invariant and index bounds but does not know about
// external stable identities, spec validation, or structural dedup. That
// higher-level assembly is pkg/builder's job; pkg/builder calls Construct
// once it has resolved a valid topological order and rewritten references
// to NodeIDs.
package graph
