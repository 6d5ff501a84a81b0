package evaluator

import (
	"sort"

	"github.com/dagflow/streamdag/pkg/graph"
	"github.com/dagflow/streamdag/pkg/types"
)

// inputBinding pairs an Input node's NodeID with the row channel it reads
// from. Resolved once, at construction, by scanning the arena — never
// recomputed per Step.
type inputBinding struct {
	node    types.NodeID
	channel string
}

// resolveInputBindings flattens g's channel->NodeIDs map into an ordered
// slice of (NodeID, channel) pairs, sorted by NodeID. Evaluating this
// upfront is what keeps Step's input refresh O(|Input nodes|) rather than
// O(|row|) or O(|arena|): the Evaluator never scans for KindInput nodes
// at Step time.
func resolveInputBindings(g *graph.ArenaGraph) []inputBinding {
	bindings := make([]inputBinding, 0, g.Len())
	for _, channel := range g.InputChannels() {
		for _, id := range g.InputBindings(channel) {
			bindings = append(bindings, inputBinding{node: id, channel: channel})
		}
	}
	// InputChannels iterates a map, so its order is not stable across
	// runs; sort by NodeID so the refresh loop always visits nodes in
	// arena order, matching the rest of Step.
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].node < bindings[j].node })
	return bindings
}

// refreshInputs implements step 2 of the Evaluator's per-row algorithm: for
// every Input node, read its bound channel from row (0.0 if absent) and, on
// first step or on a genuine change, update value[] and set changed[].
func refreshInputs(s *State, bindings []inputBinding, row types.Row) {
	for _, b := range bindings {
		next := row.Get(b.channel)
		if s.firstStep || types.Changed(next, s.value[b.node]) {
			s.value[b.node] = next
			s.changed[b.node] = true
		}
	}
}
