package builder

import (
	"errors"
	"testing"

	"github.com/dagflow/streamdag/pkg/config"
	"github.com/dagflow/streamdag/pkg/types"
)

func TestBuild_LinearChain(t *testing.T) {
	spec := BuildSpec{
		Specs: []NodeSpec{
			{ID: "a", Kind: types.KindInput, Name: "a"},
			{ID: "two", Kind: types.KindConstant, Value: 2},
			{ID: "scaled", Kind: types.KindScaleByK, Inputs: []string{"a"}, K: 3},
			{ID: "sum", Kind: types.KindAdd, Inputs: []string{"scaled", "two"}},
		},
		Trigger: "a",
		Outputs: []string{"sum"},
	}

	g, err := Build(spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", g.Len())
	}
	trigger, ok := g.Trigger()
	if !ok {
		t.Fatal("Trigger() ok = false, want true")
	}
	sumNode, err := g.Lookup(g.Outputs()[0])
	if err != nil {
		t.Fatalf("Lookup(output): %v", err)
	}
	if sumNode.Kind != types.KindAdd {
		t.Errorf("output kind = %v, want KindAdd", sumNode.Kind)
	}
	aNode, err := g.Lookup(trigger)
	if err != nil {
		t.Fatalf("Lookup(trigger): %v", err)
	}
	if aNode.Kind != types.KindInput {
		t.Errorf("trigger kind = %v, want KindInput", aNode.Kind)
	}
	for _, in := range sumNode.Inputs {
		if in >= sumNode.ID {
			t.Errorf("input %d not strictly before consumer %d", in, sumNode.ID)
		}
	}
}

func TestBuild_StructuralDedup(t *testing.T) {
	spec := BuildSpec{
		Specs: []NodeSpec{
			{ID: "a", Kind: types.KindInput, Name: "a"},
			{ID: "two_a", Kind: types.KindConstant, Value: 2},
			{ID: "two_b", Kind: types.KindConstant, Value: 2},
			{ID: "left", Kind: types.KindAdd, Inputs: []string{"a", "two_a"}},
			{ID: "right", Kind: types.KindAdd, Inputs: []string{"a", "two_b"}},
		},
		Outputs: []string{"left", "right"},
	}

	g, err := Build(spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// two_a and two_b are structurally identical Constants and collapse to
	// one NodeID; left and right are then structurally identical Adds over
	// the same [a, collapsed-constant] inputs and collapse too. Surviving
	// nodes: Input(a), Constant(2), Add — three, not five.
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (dedup should collapse equivalent specs)", g.Len())
	}
	if g.Outputs()[0] != g.Outputs()[1] {
		t.Errorf("left and right outputs did not alias to the same NodeID")
	}
}

func TestBuild_UnreachableSpecsDropped(t *testing.T) {
	spec := BuildSpec{
		Specs: []NodeSpec{
			{ID: "kept", Kind: types.KindConstant, Value: 1},
			{ID: "orphan", Kind: types.KindConstant, Value: 99},
		},
		Outputs: []string{"kept"},
	}

	g, err := Build(spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (orphan spec should be pruned)", g.Len())
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		spec    BuildSpec
		wantErr error
	}{
		{
			name: "unknown kind",
			spec: BuildSpec{
				Specs:   []NodeSpec{{ID: "x", Kind: "frobnicate"}},
				Outputs: []string{"x"},
			},
			wantErr: types.ErrUnknownKind,
		},
		{
			name: "unknown reference in inputs",
			spec: BuildSpec{
				Specs:   []NodeSpec{{ID: "x", Kind: types.KindScaleByK, Inputs: []string{"missing"}, K: 1}},
				Outputs: []string{"x"},
			},
			wantErr: types.ErrUnknownReference,
		},
		{
			name: "unknown root",
			spec: BuildSpec{
				Specs:   []NodeSpec{{ID: "x", Kind: types.KindConstant, Value: 1}},
				Outputs: []string{"nope"},
			},
			wantErr: types.ErrUnknownReference,
		},
		{
			name: "cycle",
			spec: BuildSpec{
				Specs: []NodeSpec{
					{ID: "a", Kind: types.KindScaleByK, Inputs: []string{"b"}, K: 1},
					{ID: "b", Kind: types.KindScaleByK, Inputs: []string{"a"}, K: 1},
				},
				Outputs: []string{"a"},
			},
			wantErr: types.ErrCycle,
		},
		{
			name: "arity mismatch",
			spec: BuildSpec{
				Specs: []NodeSpec{
					{ID: "a", Kind: types.KindConstant, Value: 1},
					{ID: "x", Kind: types.KindDivide, Inputs: []string{"a"}},
				},
				Outputs: []string{"x"},
			},
			wantErr: types.ErrArityMismatch,
		},
		{
			name: "missing parameter",
			spec: BuildSpec{
				Specs:   []NodeSpec{{ID: "x", Kind: types.KindInput}},
				Outputs: []string{"x"},
			},
			wantErr: types.ErrMissingParameter,
		},
		{
			name: "duplicate spec id",
			spec: BuildSpec{
				Specs: []NodeSpec{
					{ID: "x", Kind: types.KindConstant, Value: 1},
					{ID: "x", Kind: types.KindConstant, Value: 2},
				},
				Outputs: []string{"x"},
			},
			wantErr: types.ErrUnknownReference,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.spec)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got err %v, want wrapping %v", err, tc.wantErr)
			}
		})
	}
}

func TestBuildWithConfig_MaxSpecsExceeded(t *testing.T) {
	cfg := config.Testing()
	cfg.MaxSpecs = 1
	spec := BuildSpec{
		Specs: []NodeSpec{
			{ID: "a", Kind: types.KindConstant, Value: 1},
			{ID: "b", Kind: types.KindConstant, Value: 2},
		},
		Outputs: []string{"a"},
	}

	_, err := BuildWithConfig(spec, cfg)
	if !errors.Is(err, config.ErrLimitExceeded) {
		t.Fatalf("got err %v, want wrapping ErrLimitExceeded", err)
	}
}

func TestBuildWithConfig_MaxNodeInputsExceeded(t *testing.T) {
	cfg := config.Testing()
	cfg.MaxNodeInputs = 2

	specs := []NodeSpec{
		{ID: "a", Kind: types.KindConstant, Value: 1},
		{ID: "b", Kind: types.KindConstant, Value: 2},
		{ID: "c", Kind: types.KindConstant, Value: 3},
	}
	specs = append(specs, NodeSpec{ID: "sum", Kind: types.KindAdd, Inputs: []string{"a", "b", "c"}})

	_, err := BuildWithConfig(BuildSpec{Specs: specs, Outputs: []string{"sum"}}, cfg)
	if !errors.Is(err, config.ErrLimitExceeded) {
		t.Fatalf("got err %v, want wrapping ErrLimitExceeded", err)
	}
}

func TestBuild_NilConfigFallsBackToDefault(t *testing.T) {
	_, err := BuildWithConfig(BuildSpec{
		Specs:   []NodeSpec{{ID: "a", Kind: types.KindConstant, Value: 1}},
		Outputs: []string{"a"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildWithConfig(nil cfg): %v", err)
	}
}

func TestBuild_NoTriggerDesignated(t *testing.T) {
	g, err := Build(BuildSpec{
		Specs:   []NodeSpec{{ID: "a", Kind: types.KindConstant, Value: 1}},
		Outputs: []string{"a"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := g.Trigger(); ok {
		t.Error("Trigger() ok = true, want false when spec.Trigger is empty")
	}
}
