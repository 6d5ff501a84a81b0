package evaluator

import (
	"math"

	"github.com/dagflow/streamdag/pkg/registry"
	"github.com/dagflow/streamdag/pkg/types"
)

// recompute implements the per-kind recomputation rule, dispatched through
// a dense switch rather than a map[NodeType]NodeExecutor indirection — the
// design note in pkg/registry explains why this kind set is closed rather
// than runtime-registered. Input and Constant never reach this switch:
// Input is handled by refreshInputs, and Constant is skipped by the caller
// before recompute is ever called.
func recompute(n types.Node, value []float64) float64 {
	switch n.Kind {
	case types.KindAdd:
		sum := 0.0
		for _, in := range n.Inputs {
			sum += value[in]
		}
		return sum
	case types.KindMultiply:
		product := 1.0
		for _, in := range n.Inputs {
			product *= value[in]
		}
		return product
	case types.KindDivide:
		left, right := value[n.Inputs[0]], value[n.Inputs[1]]
		if right == 0.0 {
			return math.NaN()
		}
		return left / right
	case types.KindCompare:
		l, r := value[n.Inputs[0]], value[n.Inputs[1]]
		if comparePredicate(n.Op, l, r) {
			return 1.0
		}
		return 0.0
	case types.KindPower:
		return math.Pow(value[n.Inputs[0]], value[n.Inputs[1]])
	case types.KindScaleByK:
		return value[n.Inputs[0]] * n.K
	default:
		// Unreachable for any node a successful pkg/builder.Build produced:
		// the registry's closed kind set and CheckArity already rejected
		// anything else at construction time. MustLookup panics with the
		// registry's own ErrUnknownKind rather than a hand-rolled message.
		registry.MustLookup(n.Kind)
		panic("unreachable")
	}
}

// comparePredicate evaluates a Compare node's op. Equal uses epsilon
// tolerance (types.CompareEqual); greater-than and less-than are exact —
// only the equality predicate carries tolerance.
func comparePredicate(op types.CompareOp, l, r float64) bool {
	switch op {
	case types.OpGreaterThan:
		return l > r
	case types.OpLessThan:
		return l < r
	case types.OpEqual:
		return types.CompareEqual(l, r)
	default:
		panic("evaluator: unrecognized compare op " + string(op))
	}
}
