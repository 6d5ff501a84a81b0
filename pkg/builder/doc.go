// Package builder implements the Builder / Linker: given externally
// identified node specifications, it produces a graph.ArenaGraph with a
// verified topological order, deduplicated shared subexpressions, and
// validated indices.
//
// # Algorithm
//
//  1. Start a DFS from the union of {trigger} ∪ outputs.
//  2. For each spec visited, recurse into its declared inputs (in
//     declaration order, which gives deterministic tie-breaking) before
//     assigning the spec itself a NodeID. Appending on DFS completion —
//     rather than on first visit — is what makes the resulting order
//     topological: a node is only appended once everything it depends on
//     already has been.
//  3. Before appending, compute a structural signature (kind + resolved
//     parameters). If an earlier spec produced the same signature, alias
//     this spec's external ID to that NodeID instead of appending a new
//     node — this is the dedup step.
//  4. Specs never reached from a root are silently dropped: they cannot
//     affect any output or the trigger, so they have no arena slot.
//
// # Errors
//
// UnknownKind, UnknownReference, Cycle, ArityMismatch, and
// MissingParameter (see pkg/types/errors.go) are all detected during the
// single DFS pass. Build is transactional: any error returns a nil graph,
// never a partially constructed one.
package builder
