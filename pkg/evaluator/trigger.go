package evaluator

import "github.com/dagflow/streamdag/pkg/types"

// triggerState tracks the last emitted trigger value across Steps, per
// §4.4. Absence (hasLast == false) is distinct from a last value of 0.0 —
// it is what makes the very first Step always emit when a trigger is
// designated.
type triggerState struct {
	last    float64
	hasLast bool
}

// shouldEmit implements §4.4's emission gate: emit iff no prior trigger
// value is recorded, or the new value differs from it under the same
// strict inequality used for change propagation. On emission, last is
// updated to t — a value that fails to emit never overwrites last.
func (t *triggerState) shouldEmit(value float64) bool {
	if !t.hasLast {
		return true
	}
	return types.Changed(value, t.last)
}

func (t *triggerState) record(value float64) {
	t.last = value
	t.hasLast = true
}
