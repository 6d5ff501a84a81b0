package evaluator

// State holds the Evaluator's dense parallel arrays, keyed by NodeID. It is
// created once at Evaluator construction and reset only by an explicit
// rebuild (constructing a new Evaluator) — never resized or reordered while
// evaluation is in progress.
//
// This is a "vectorized per-node state" shape reduced to its smallest
// possible form: three float/bool slices instead of a
// map[string]interface{} result cache, because every node here is a
// scalar and every index is already known at construction time.
type State struct {
	value     []float64
	prev      []float64
	changed   []bool
	firstStep bool
}

// newState allocates a State sized for size nodes, with firstStep set —
// the Evaluator's very first Step performs full evaluation.
func newState(size int) *State {
	return &State{
		value:     make([]float64, size),
		prev:      make([]float64, size),
		changed:   make([]bool, size),
		firstStep: true,
	}
}

// clearChanged resets every node's changed flag to false, the first action
// of every Step.
func (s *State) clearChanged() {
	for i := range s.changed {
		s.changed[i] = false
	}
}

// commit copies value[] into prev[], the last action of every Step. After
// this call prev[i] == value[i] for every i, per the Evaluator's length and
// snapshot invariants.
func (s *State) commit() {
	copy(s.prev, s.value)
}
