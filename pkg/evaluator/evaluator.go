// Package evaluator implements the streaming core: the Evaluator (dense
// parallel arrays, incremental Step), the Trigger & Emission Protocol, and
// External Input Binding.
//
// Evaluator is constructed once from a parsed graph, exposes a single
// execution entry point, and is built through a New / NewWithConfig /
// NewWithObservability cascade — a map[string]interface{} results cache and
// mutex-guarded counters would work but are overkill here: the dense
// value/prev/changed arrays already give every node a known index, and the
// graph's topological order is a construction invariant, so Step never
// re-sorts anything — it makes a single pass over an already-ordered arena.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dagflow/streamdag/pkg/config"
	"github.com/dagflow/streamdag/pkg/graph"
	"github.com/dagflow/streamdag/pkg/logging"
	"github.com/dagflow/streamdag/pkg/telemetry"
	"github.com/dagflow/streamdag/pkg/types"
)

// EmissionDecision is Step's return value: whether this row caused an
// emission and, if so, the trigger and output values to report.
type EmissionDecision struct {
	Emitted bool
	Trigger float64
	Outputs []float64
}

// Record builds the emission interface's record shape (§6): the literal
// key "trigger" plus "output0".."outputN-1" in declared output order.
// Calling Record on a decision with Emitted == false still builds the map
// — callers that only want the map when something actually fired should
// check Emitted first.
func (d EmissionDecision) Record() map[string]float64 {
	rec := make(map[string]float64, len(d.Outputs)+1)
	rec["trigger"] = d.Trigger
	for i, v := range d.Outputs {
		rec[fmt.Sprintf("output%d", i)] = v
	}
	return rec
}

// Evaluator is the streaming core. One Evaluator exclusively owns its
// State; concurrent Step calls on the same instance are undefined (§5).
// Distinct Evaluators may share the same *graph.ArenaGraph safely, since
// it is immutable.
type Evaluator struct {
	graph    *graph.ArenaGraph
	state    *State
	bindings []inputBinding
	trigger  triggerState

	hasTrigger bool
	triggerID  types.NodeID
	outputIDs  []types.NodeID

	cfg       *config.Config
	logger    *logging.Logger
	recorder  *telemetry.Recorder
	stepIndex int
}

// New constructs an Evaluator over g using config.Default() and no
// observability dependencies.
func New(g *graph.ArenaGraph) *Evaluator {
	return NewWithConfig(g, config.Default())
}

// NewWithConfig is New with caller-supplied limits and ambient-stack
// toggles. cfg's EnableMetrics/EnableStepLogging fields have no effect
// here — they gate whether a driver bothers constructing a logger or
// recorder at all; the Evaluator itself just respects whichever
// dependencies NewWithObservability was given.
func NewWithConfig(g *graph.ArenaGraph, cfg *config.Config) *Evaluator {
	return NewWithObservability(g, cfg, nil, nil)
}

// NewWithObservability is the full constructor: a nil logger or recorder
// disables that dependency entirely rather than substituting a default
// one, keeping Step allocation-free when neither is supplied.
func NewWithObservability(g *graph.ArenaGraph, cfg *config.Config, logger *logging.Logger, recorder *telemetry.Recorder) *Evaluator {
	if cfg == nil {
		cfg = config.Default()
	}

	triggerID, hasTrigger := g.Trigger()

	e := &Evaluator{
		graph:      g,
		state:      newState(g.Len()),
		bindings:   resolveInputBindings(g),
		hasTrigger: hasTrigger,
		triggerID:  triggerID,
		outputIDs:  g.Outputs(),
		cfg:        cfg,
		logger:     logger,
		recorder:   recorder,
	}

	if logger != nil {
		logger.WithGraphID(g.BuildID()).
			WithField("arena_size", g.Len()).
			WithField("has_trigger", hasTrigger).
			WithField("outputs", len(e.outputIDs)).
			Debug("evaluator constructed")
	}

	return e
}

// Step implements §4.3–§4.4: refresh Input nodes from row, propagate
// change through the arena in NodeID order, then consult the Trigger &
// Emission Protocol. Step never returns an error (§7) — every numeric
// edge case maps to a defined float64 value, and the arena's invariants
// (enforced at construction) make every index dereference safe.
func (e *Evaluator) Step(row types.Row) EmissionDecision {
	var start time.Time
	if e.recorder != nil {
		start = time.Now()
	}

	s := e.state
	s.clearChanged()
	refreshInputs(s, e.bindings, row)

	recomputed := e.propagate()

	decision := e.decide()

	s.commit()
	firstStep := s.firstStep
	s.firstStep = false

	if e.logger != nil && e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.WithStepIndex(e.stepIndex).
			WithField("first_step", firstStep).
			WithField("recomputed", recomputed).
			WithField("emitted", decision.Emitted).
			Debug("step complete")
	}
	if e.recorder != nil {
		e.recorder.RecordStep(context.Background(), time.Since(start), recomputed, decision.Emitted)
	}
	e.stepIndex++

	return decision
}

// propagate implements §4.3 step 3: on the first step, every non-Input
// node is evaluated in topological order and marked changed; afterward,
// only nodes whose declared inputs changed are recomputed, and only a
// genuine value change (strict inequality) marks the node changed and
// advances its stored value. It returns how many nodes were actually
// recomputed, for telemetry.
func (e *Evaluator) propagate() int {
	s := e.state
	recomputed := 0

	for i := 0; i < e.graph.Len(); i++ {
		id := types.NodeID(i)
		node, err := e.graph.Lookup(id)
		if err != nil {
			// Unreachable: id ranges exactly over [0, graph.Len()), every
			// one of which graph.Lookup resolves successfully.
			panic(err)
		}

		switch node.Kind {
		case types.KindInput:
			continue // handled by refreshInputs before propagate runs
		case types.KindConstant:
			// A Constant takes its fixed value on the first step and never
			// changes (or is marked changed) afterward.
			if s.firstStep {
				s.value[id] = node.Value
				s.changed[id] = true
			}
			continue
		}

		if s.firstStep {
			s.value[id] = recompute(node, s.value)
			s.changed[id] = true
			recomputed++
			continue
		}

		if !anyInputChanged(node, s.changed) {
			continue
		}

		newValue := recompute(node, s.value)
		recomputed++
		if types.Changed(newValue, s.value[id]) {
			s.value[id] = newValue
			s.changed[id] = true
		}
		// Else: recomputed to the same value — leave value[id] and
		// changed[id] untouched, matching §4.3's "restore the old value".
	}

	return recomputed
}

func anyInputChanged(n types.Node, changed []bool) bool {
	for _, in := range n.Inputs {
		if changed[in] {
			return true
		}
	}
	return false
}

// decide implements §4.4: read the trigger's current value (or never
// emit, if none is designated) and consult triggerState.
func (e *Evaluator) decide() EmissionDecision {
	if !e.hasTrigger {
		return EmissionDecision{}
	}

	t := e.state.value[e.triggerID]
	if !e.trigger.shouldEmit(t) {
		return EmissionDecision{}
	}
	e.trigger.record(t)

	outputs := make([]float64, len(e.outputIDs))
	for i, id := range e.outputIDs {
		outputs[i] = e.state.value[id]
	}
	return EmissionDecision{Emitted: true, Trigger: t, Outputs: outputs}
}
