// Package types provides the shared data model for the streaming dataflow
// core: node identities, node kinds, nodes, and rows. All other
// packages depend on types to avoid import cycles.
package types

import "math"

// NodeID is a dense, zero-based index identifying a node's slot within an
// ArenaGraph. Stable for the arena's lifetime, never reused.
type NodeID int

// NoTrigger is the sentinel NodeID meaning "no trigger designated".
const NoTrigger NodeID = -1

// NodeKind is the closed, compile-time-known set of operator kinds. Adding a
// kind means extending this set and every switch in pkg/evaluator and
// pkg/registry that dispatches on it — there is no runtime registration.
type NodeKind string

const (
	KindInput    NodeKind = "input"
	KindConstant NodeKind = "constant"
	KindAdd      NodeKind = "add"
	KindMultiply NodeKind = "multiply"
	KindDivide   NodeKind = "divide"
	KindCompare  NodeKind = "compare"
	KindPower    NodeKind = "power"
	KindScaleByK NodeKind = "scale_by_k"
)

// CompareOp is the predicate flavor carried by a Compare node.
type CompareOp string

const (
	OpGreaterThan CompareOp = "gt"
	OpLessThan    CompareOp = "lt"
	OpEqual       CompareOp = "eq"
)

// Epsilon is the f64 machine epsilon used for Compare's equality predicate.
// Change detection elsewhere uses strict bitwise inequality, never this
// value — the two tolerances are never interchangeable.
const Epsilon = 2.220446049250313e-16

// Node is one arena slot. Kind selects which fields are meaningful:
//
//	Input:     Name
//	Constant:  Value
//	Add:       Inputs (n-ary, order not semantically significant)
//	Multiply:  Inputs (n-ary, order not semantically significant)
//	Divide:    Inputs[0]=left, Inputs[1]=right
//	Compare:   Inputs[0]=l, Inputs[1]=r, Op
//	Power:     Inputs[0]=base, Inputs[1]=exp
//	ScaleByK:  Inputs[0]=in, K
//
// Every entry in Inputs must be strictly smaller than the Node's own ID;
// ArenaGraph construction rejects anything else.
type Node struct {
	ID     NodeID
	Kind   NodeKind
	Inputs []NodeID
	Name   string
	Value  float64
	K      float64
	Op     CompareOp
}

// Row is one step's worth of named scalar inputs. A channel name absent
// from the row reads as 0.0.
type Row map[string]float64

// Get returns the row's value for name, defaulting to 0.0 when unbound.
func (r Row) Get(name string) float64 {
	if v, ok := r[name]; ok {
		return v
	}
	return 0.0
}

// Changed reports whether a and b differ under the strict bitwise
// inequality used for change propagation and trigger gating. NaN counts as
// changed relative to any non-NaN predecessor, since NaN != NaN is true.
func Changed(a, b float64) bool {
	return a != b
}

// CompareEqual reports whether a and b are within Epsilon of each other,
// the tolerance the Compare node's "eq" predicate uses. Never use this for
// change detection.
func CompareEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
