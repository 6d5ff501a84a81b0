// Package types is the shared foundation of the streaming dataflow core.
//
// # Overview
//
// This package contains the data structures every other package depends
// on: NodeID (arena-relative identity), NodeKind (the closed operator
// set), Node (one arena slot), and Row (one step's named scalar inputs).
// It exists to avoid import cycles between pkg/graph, pkg/builder, and
// pkg/evaluator.
//
// # Node Kinds
//
// Input, Constant, Add, Multiply, Divide, Compare, Power, and ScaleByK —
// see pkg/registry for arity and required-parameter metadata per kind.
//
// # Tolerances
//
// Change propagation uses strict bitwise inequality (Changed). The
// Compare node's equality predicate uses an epsilon tolerance
// (CompareEqual). The two are never interchangeable: conflating them
// would make Compare's "eq" output itself fail to register as changed
// when it should.
package types
