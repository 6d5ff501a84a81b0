// Package evaluator implements §4.3 (Evaluator), §4.4 (Trigger & Emission
// Protocol), and §4.5 (External Input Binding) of the streaming dataflow
// core: Step takes one Row and returns an EmissionDecision, synchronously,
// without allocating beyond what building that decision's Outputs slice
// requires.
//
// # Files
//
//   - evaluator.go — Evaluator, its constructor cascade, and Step.
//   - state.go     — State: the three dense parallel arrays (value, prev,
//     changed) plus the first_step flag.
//   - binding.go   — resolving channel name -> Input NodeID bindings once,
//     at construction, and refreshing them each Step.
//   - recompute.go — the per-kind recomputation switch.
//   - trigger.go   — the last-trigger-value state the emission gate reads.
package evaluator
