// Package builder is the Builder / Linker: it turns a set of externally
// identified node specifications into a validated, deduplicated
// graph.ArenaGraph with a verified topological order.
//
// A queue-driven, breadth-first Kahn's algorithm over a sparse id-keyed
// node/edge list computes a valid topological order but does not naturally
// express "only the nodes reachable from the trigger and outputs matter" or
// "two structurally identical specs collapse to one node" — both required
// here — so the traversal below is instead a depth-first search from the
// roots (trigger ∪ outputs) that discovers reachability, order, and dedup
// opportunities in a single pass, the same way a cycle-detection DFS walks
// a subgraph from a start node.
package builder

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dagflow/streamdag/pkg/config"
	"github.com/dagflow/streamdag/pkg/graph"
	"github.com/dagflow/streamdag/pkg/logging"
	"github.com/dagflow/streamdag/pkg/registry"
	"github.com/dagflow/streamdag/pkg/types"
)

// NodeSpec is one externally supplied node description. ID is the
// caller's stable identity (a string, since the surface builder/loader
// that produces specs is outside this core's scope); Inputs references
// other specs by that same ID scheme. Which fields are meaningful depends
// on Kind — see pkg/types.Node for the per-kind mapping, which NodeSpec
// mirrors field-for-field before indices are resolved.
type NodeSpec struct {
	ID     string
	Kind   types.NodeKind
	Inputs []string
	Name   string
	Value  float64
	K      float64
	Op     types.CompareOp
}

// BuildSpec is the complete graph input: every spec plus which ones (by
// ID) are the trigger and the ordered outputs.
type BuildSpec struct {
	Specs   []NodeSpec
	Trigger string // "" means no trigger designated
	Outputs []string
}

// Build resolves specs into an ArenaGraph using config.Default() limits
// and no construction-time logging.
func Build(spec BuildSpec) (*graph.ArenaGraph, error) {
	return BuildWithConfig(spec, config.Default())
}

// BuildWithConfig is Build with caller-supplied limits.
func BuildWithConfig(spec BuildSpec, cfg *config.Config) (*graph.ArenaGraph, error) {
	return BuildWithLogger(spec, cfg, nil)
}

// BuildWithLogger resolves specs into an ArenaGraph: reachable specs
// only, a valid topological order, shared subexpressions collapsed to one
// NodeID, and every reference rewritten from external ID to NodeID.
// Construction is transactional — on any error, no partial ArenaGraph
// escapes. A nil logger disables construction-time diagnostics entirely
// rather than falling back to a default one; logging here is opt-in.
func BuildWithLogger(spec BuildSpec, cfg *config.Config, logger *logging.Logger) (*graph.ArenaGraph, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if len(spec.Specs) > cfg.MaxSpecs {
		return nil, fmt.Errorf("%w: %d specs exceeds MaxSpecs %d", config.ErrLimitExceeded, len(spec.Specs), cfg.MaxSpecs)
	}

	b := &linker{
		specsByID: make(map[string]NodeSpec, len(spec.Specs)),
		state:     make(map[string]visitState, len(spec.Specs)),
		resolved:  make(map[string]types.NodeID, len(spec.Specs)),
		canonical: make(map[string]types.NodeID, len(spec.Specs)),
		cfg:       cfg,
		logger:    logger,
	}
	for _, s := range spec.Specs {
		if _, dup := b.specsByID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate spec id %q", types.ErrUnknownReference, s.ID)
		}
		b.specsByID[s.ID] = s
	}

	roots := make([]string, 0, len(spec.Outputs)+1)
	if spec.Trigger != "" {
		roots = append(roots, spec.Trigger)
	}
	roots = append(roots, spec.Outputs...)

	for _, root := range roots {
		if _, ok := b.specsByID[root]; !ok {
			return nil, fmt.Errorf("%w: root %q", types.ErrUnknownReference, root)
		}
		if err := b.visit(root); err != nil {
			return nil, err
		}
	}

	trigger := types.NoTrigger
	if spec.Trigger != "" {
		trigger = b.resolved[spec.Trigger]
	}
	outputs := make([]types.NodeID, len(spec.Outputs))
	for i, o := range spec.Outputs {
		outputs[i] = b.resolved[o]
	}

	if len(b.nodes) > cfg.MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes exceeds MaxNodes %d", config.ErrLimitExceeded, len(b.nodes), cfg.MaxNodes)
	}

	g, err := graph.Construct(b.nodes, trigger, outputs)
	if err != nil {
		return nil, err
	}

	if channels := g.InputChannels(); len(channels) > cfg.MaxInputChannels {
		return nil, fmt.Errorf("%w: %d input channels exceeds MaxInputChannels %d", config.ErrLimitExceeded, len(channels), cfg.MaxInputChannels)
	}

	buildID := uuid.New().String()
	if logger != nil {
		logger.WithField("build_id", buildID).
			WithField("spec_count", len(spec.Specs)).
			WithField("arena_size", len(b.nodes)).
			WithField("deduped", len(b.resolved)-len(b.nodes)).
			Debug("arena graph constructed")
	}
	return g.WithBuildID(buildID), nil
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	done
)

// linker carries traversal state across the single DFS pass Build performs.
type linker struct {
	specsByID map[string]NodeSpec
	state     map[string]visitState
	resolved  map[string]types.NodeID // external ID -> assigned (possibly aliased) NodeID
	canonical map[string]types.NodeID // structural signature -> NodeID
	nodes     []types.Node
	cfg       *config.Config
	logger    *logging.Logger
}

// visit performs a DFS rooted at id, discovering reachable specs and
// appending each one to b.nodes on completion — i.e. only after every
// spec it depends on has already been appended. That completion order is
// exactly the topological order the arena requires: an input's slot is
// always assigned before its consumer's.
func (b *linker) visit(id string) error {
	switch b.state[id] {
	case done:
		return nil
	case visiting:
		return fmt.Errorf("%w: %q", types.ErrCycle, id)
	}

	spec, ok := b.specsByID[id]
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownReference, id)
	}

	info, err := registry.Lookup(spec.Kind)
	if err != nil {
		return fmt.Errorf("%w (spec %q)", err, id)
	}
	if err := registry.CheckArity(spec.Kind, len(spec.Inputs)); err != nil {
		return fmt.Errorf("%w (spec %q)", err, id)
	}
	if info.Arity == registry.NAry && len(spec.Inputs) > b.cfg.MaxNodeInputs {
		return fmt.Errorf("%w: spec %q has %d inputs exceeds MaxNodeInputs %d", config.ErrLimitExceeded, id, len(spec.Inputs), b.cfg.MaxNodeInputs)
	}
	if err := checkRequiredParams(spec, info); err != nil {
		return err
	}

	b.state[id] = visiting
	childIDs := make([]types.NodeID, len(spec.Inputs))
	for i, childExternalID := range spec.Inputs {
		if err := b.visit(childExternalID); err != nil {
			return err
		}
		childIDs[i] = b.resolved[childExternalID]
	}
	b.state[id] = done

	node := types.Node{
		Kind:   spec.Kind,
		Inputs: childIDs,
		Name:   spec.Name,
		Value:  spec.Value,
		K:      spec.K,
		Op:     spec.Op,
	}

	key := canonicalKey(node)
	if existing, found := b.canonical[key]; found {
		b.resolved[id] = existing
		if b.logger != nil {
			b.logger.WithField("spec_id", id).WithField("aliased_to", int(existing)).Debug("structural dedup")
		}
		return nil
	}

	newID := types.NodeID(len(b.nodes))
	node.ID = newID
	b.nodes = append(b.nodes, node)
	b.canonical[key] = newID
	b.resolved[id] = newID
	return nil
}

func checkRequiredParams(spec NodeSpec, info registry.KindInfo) error {
	if info.RequiresName && spec.Name == "" {
		return fmt.Errorf("%w: %q field %q", types.ErrMissingParameter, spec.ID, "name")
	}
	if info.RequiresOp {
		switch spec.Op {
		case types.OpGreaterThan, types.OpLessThan, types.OpEqual:
		default:
			return fmt.Errorf("%w: %q field %q", types.ErrMissingParameter, spec.ID, "op")
		}
	}
	// Value and K have no "unset" sentinel distinguishable from 0.0 — the
	// registry requires them syntactically (the NodeSpec field must be
	// supplied by the caller assembling it), so there is nothing further to
	// check here beyond arity and name/op, which do have meaningful zero
	// values ("" and unset CompareOp).
	return nil
}

// canonicalKey builds a structural-equality signature for a node whose
// Inputs have already been rewritten to NodeIDs. Two specs with the same
// kind and the same resolved parameters produce the same key and
// therefore collapse to a single arena node.
func canonicalKey(n types.Node) string {
	var sb strings.Builder
	sb.WriteString(string(n.Kind))
	sb.WriteByte('|')
	for i, in := range n.Inputs {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", in)
	}
	sb.WriteByte('|')
	sb.WriteString(n.Name)
	sb.WriteByte('|')
	fmt.Fprintf(&sb, "%g", n.Value)
	sb.WriteByte('|')
	fmt.Fprintf(&sb, "%g", n.K)
	sb.WriteByte('|')
	sb.WriteString(string(n.Op))
	return sb.String()
}
