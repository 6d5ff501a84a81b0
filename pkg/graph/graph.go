// Package graph provides the Arena Graph: an immutable, topologically
// ordered vector of nodes with stable integer identities, ready for
// dense-array evaluation by pkg/evaluator.
//
// A natural alternative computes topological order over a sparse
// id-keyed node/edge list via Kahn's algorithm at query time. Here
// topological order is a construction invariant enforced once, at
// Construct, rather than a derived property recomputed on demand — the
// arena's defining contract is that every node's inputs already sit at
// strictly lower indices, so no sort ever runs again.
package graph

import (
	"fmt"

	"github.com/dagflow/streamdag/pkg/types"
)

// ArenaGraph is an immutable, topologically ordered graph of nodes. Once
// constructed it never changes: no node is added, removed, or reordered.
type ArenaGraph struct {
	nodes         []types.Node
	trigger       types.NodeID
	outputs       []types.NodeID
	inputBindings map[string][]types.NodeID
	buildID       string
}

// Construct builds an ArenaGraph from nodes already in arena order. It
// succeeds only if every node's declared inputs refer to strictly
// lower-indexed nodes; otherwise it fails with ErrCycleOrForwardReference.
//
// trigger may be types.NoTrigger to mean "no trigger designated, never
// emit". Every ID in outputs and the trigger (if any) must be a valid
// index into nodes.
//
// Construct builds the channel -> Input NodeIDs bindings but does not
// validate kind-specific shape — that is pkg/builder's job, since Construct is also usable
// directly by callers that already trust their own node slice (e.g. tests
// constructing small graphs by hand).
func Construct(nodes []types.Node, trigger types.NodeID, outputs []types.NodeID) (*ArenaGraph, error) {
	for i, n := range nodes {
		if n.ID != types.NodeID(i) {
			return nil, fmt.Errorf("%w: node at slot %d carries ID %d", types.ErrCycleOrForwardReference, i, n.ID)
		}
		for _, in := range n.Inputs {
			if int(in) >= i {
				return nil, fmt.Errorf("%w: node %d input %d is not strictly lower-indexed", types.ErrCycleOrForwardReference, i, in)
			}
		}
	}

	if trigger != types.NoTrigger {
		if trigger < 0 || int(trigger) >= len(nodes) {
			return nil, fmt.Errorf("%w: trigger %d out of bounds", types.ErrNodeNotFound, trigger)
		}
	}
	for _, o := range outputs {
		if o < 0 || int(o) >= len(nodes) {
			return nil, fmt.Errorf("%w: output %d out of bounds", types.ErrNodeNotFound, o)
		}
	}

	bindings := make(map[string][]types.NodeID)
	for _, n := range nodes {
		if n.Kind == types.KindInput {
			bindings[n.Name] = append(bindings[n.Name], n.ID)
		}
	}

	return &ArenaGraph{
		nodes:         nodes,
		trigger:       trigger,
		outputs:       append([]types.NodeID(nil), outputs...),
		inputBindings: bindings,
	}, nil
}

// WithBuildID returns a shallow copy of g stamped with buildID, used by
// pkg/builder to attach a correlation identifier for logs. The arena
// contents are shared, not copied — ArenaGraph is immutable.
func (g *ArenaGraph) WithBuildID(buildID string) *ArenaGraph {
	clone := *g
	clone.buildID = buildID
	return &clone
}

// BuildID returns the correlation identifier pkg/builder stamped onto this
// graph, or "" if the graph was constructed directly via Construct.
func (g *ArenaGraph) BuildID() string {
	return g.buildID
}

// Lookup returns the node at i in constant time.
func (g *ArenaGraph) Lookup(i types.NodeID) (types.Node, error) {
	if i < 0 || int(i) >= len(g.nodes) {
		return types.Node{}, fmt.Errorf("%w: %d", types.ErrNodeNotFound, i)
	}
	return g.nodes[i], nil
}

// Len returns the number of nodes in the arena.
func (g *ArenaGraph) Len() int {
	return len(g.nodes)
}

// Trigger returns the designated trigger node, or (types.NoTrigger, false)
// if none was designated.
func (g *ArenaGraph) Trigger() (types.NodeID, bool) {
	if g.trigger == types.NoTrigger {
		return types.NoTrigger, false
	}
	return g.trigger, true
}

// Outputs returns the ordered list of output node IDs.
func (g *ArenaGraph) Outputs() []types.NodeID {
	return g.outputs
}

// InputBindings returns the NodeIDs of every Input node bound to name, in
// ascending NodeID order. Resolution happens once here, at construction
// time; the Evaluator never scans the arena for Input nodes per step.
func (g *ArenaGraph) InputBindings(name string) []types.NodeID {
	return g.inputBindings[name]
}

// InputChannels returns every distinct channel name with at least one
// bound Input node.
func (g *ArenaGraph) InputChannels() []string {
	names := make([]string, 0, len(g.inputBindings))
	for name := range g.inputBindings {
		names = append(names, name)
	}
	return names
}
