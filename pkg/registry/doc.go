// Package registry is the Node Kind Registry: a closed, compile-time-known
// table describing the arity shape and required parameters of every
// NodeKind.
//
// # Why closed, not dynamic
//
// A workflow engine with dozens of node types (HTTP, loops, switches,
// schema validation) typically dispatches execution through a runtime
// Registry of NodeExecutor implementations, registered via
// Register/MustRegister at init time. That shape buys extensibility for an
// open-ended node catalog.
//
// This core's catalog is finite and fixed (Input, Constant, Add,
// Multiply, Divide, Compare, Power, ScaleByK) and the evaluator's hot
// path dispatches on it directly with a switch statement, not a map
// lookup — a predictable jump table instead of an interface call per
// node per step. Extension, if ever wanted, belongs above this core, not
// inside it.
//
// # Usage
//
//	info, err := registry.Lookup(types.KindDivide)
//	if err := registry.CheckArity(types.KindAdd, len(inputs)); err != nil { ... }
package registry
