// Package registry enumerates the closed set of node kinds this core
// understands: their arity shape and the scalar parameters each carries.
//
// Unlike a system that dispatches node execution through a
// runtime-registered map[NodeType]NodeExecutor built by Register/MustRegister
// calls, this registry is intentionally static. The NodeKind set is closed
// and compile-time-known: extending it means changing the NodeKind enum in
// pkg/types and the switch in pkg/evaluator, not registering a new executor
// at init time. What remains of the registered-table pattern is the
// lookup-table shape and the Must-prefixed panic convention for programmer
// errors.
package registry

import (
	"fmt"

	"github.com/dagflow/streamdag/pkg/types"
)

// Arity describes how many input references a node kind accepts.
type Arity int

const (
	// Nullary nodes (Input, Constant) take no node inputs.
	Nullary Arity = iota
	// Unary nodes (ScaleByK) take exactly one input.
	Unary
	// Binary nodes (Divide, Compare, Power) take exactly two inputs.
	Binary
	// NAry nodes (Add, Multiply) take zero or more inputs.
	NAry
)

func (a Arity) String() string {
	switch a {
	case Nullary:
		return "nullary"
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	case NAry:
		return "n-ary"
	default:
		return "unknown"
	}
}

// KindInfo is the static shape of one NodeKind: its arity and which
// per-kind scalar parameters are required.
type KindInfo struct {
	Kind         types.NodeKind
	Arity        Arity
	RequiresName bool // Input
	RequiresVal  bool // Constant
	RequiresOp   bool // Compare
	RequiresK    bool // ScaleByK
}

// table is the closed registry. It is a package-level literal, not a
// runtime-mutable map — there is no Register function, on purpose.
var table = map[types.NodeKind]KindInfo{
	types.KindInput:    {Kind: types.KindInput, Arity: Nullary, RequiresName: true},
	types.KindConstant: {Kind: types.KindConstant, Arity: Nullary, RequiresVal: true},
	types.KindAdd:      {Kind: types.KindAdd, Arity: NAry},
	types.KindMultiply: {Kind: types.KindMultiply, Arity: NAry},
	types.KindDivide:   {Kind: types.KindDivide, Arity: Binary},
	types.KindCompare:  {Kind: types.KindCompare, Arity: Binary, RequiresOp: true},
	types.KindPower:    {Kind: types.KindPower, Arity: Binary},
	types.KindScaleByK: {Kind: types.KindScaleByK, Arity: Unary, RequiresK: true},
}

// Lookup returns the static shape for kind, or ErrUnknownKind if kind is
// outside the closed set.
func Lookup(kind types.NodeKind) (KindInfo, error) {
	info, ok := table[kind]
	if !ok {
		return KindInfo{}, fmt.Errorf("%w: %q", types.ErrUnknownKind, kind)
	}
	return info, nil
}

// MustLookup is Lookup but panics on an unknown kind. Reserved for call
// sites that have already validated the kind (e.g. the evaluator's inner
// switch, which can only ever see kinds a successful Build produced).
func MustLookup(kind types.NodeKind) KindInfo {
	info, err := Lookup(kind)
	if err != nil {
		panic(err)
	}
	return info
}

// CheckArity validates that numInputs is legal for kind's arity shape.
// Returns ErrArityMismatch (wrapped with the observed count) otherwise.
func CheckArity(kind types.NodeKind, numInputs int) error {
	info, err := Lookup(kind)
	if err != nil {
		return err
	}
	switch info.Arity {
	case Nullary:
		if numInputs != 0 {
			return fmt.Errorf("%w: %s %s takes no inputs, got %d", types.ErrArityMismatch, kind, info.Arity, numInputs)
		}
	case Unary:
		if numInputs != 1 {
			return fmt.Errorf("%w: %s %s takes exactly 1 input, got %d", types.ErrArityMismatch, kind, info.Arity, numInputs)
		}
	case Binary:
		if numInputs != 2 {
			return fmt.Errorf("%w: %s %s takes exactly 2 inputs, got %d", types.ErrArityMismatch, kind, info.Arity, numInputs)
		}
	case NAry:
		if numInputs < 0 {
			return fmt.Errorf("%w: %s %s takes 0 or more inputs, got %d", types.ErrArityMismatch, kind, info.Arity, numInputs)
		}
	}
	return nil
}

// All returns every registered kind, for diagnostics and tests. The order
// is not significant.
func All() []types.NodeKind {
	kinds := make([]types.NodeKind, 0, len(table))
	for k := range table {
		kinds = append(kinds, k)
	}
	return kinds
}
