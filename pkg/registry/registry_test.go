package registry

import (
	"errors"
	"testing"

	"github.com/dagflow/streamdag/pkg/types"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		kind     types.NodeKind
		wantErr  error
		wantInfo KindInfo
	}{
		{name: "input", kind: types.KindInput, wantInfo: KindInfo{Kind: types.KindInput, Arity: Nullary, RequiresName: true}},
		{name: "constant", kind: types.KindConstant, wantInfo: KindInfo{Kind: types.KindConstant, Arity: Nullary, RequiresVal: true}},
		{name: "add", kind: types.KindAdd, wantInfo: KindInfo{Kind: types.KindAdd, Arity: NAry}},
		{name: "divide", kind: types.KindDivide, wantInfo: KindInfo{Kind: types.KindDivide, Arity: Binary}},
		{name: "compare", kind: types.KindCompare, wantInfo: KindInfo{Kind: types.KindCompare, Arity: Binary, RequiresOp: true}},
		{name: "scale_by_k", kind: types.KindScaleByK, wantInfo: KindInfo{Kind: types.KindScaleByK, Arity: Unary, RequiresK: true}},
		{name: "unknown", kind: "frobnicate", wantErr: types.ErrUnknownKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := Lookup(tc.kind)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Lookup(%q) err = %v, want wrapping %v", tc.kind, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tc.kind, err)
			}
			if info != tc.wantInfo {
				t.Errorf("Lookup(%q) = %+v, want %+v", tc.kind, info, tc.wantInfo)
			}
		})
	}
}

func TestMustLookup_PanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup did not panic on unknown kind")
		}
	}()
	MustLookup("frobnicate")
}

func TestCheckArity(t *testing.T) {
	tests := []struct {
		name      string
		kind      types.NodeKind
		numInputs int
		wantErr   error
	}{
		{name: "input nullary ok", kind: types.KindInput, numInputs: 0},
		{name: "input nullary violated", kind: types.KindInput, numInputs: 1, wantErr: types.ErrArityMismatch},
		{name: "scale_by_k unary ok", kind: types.KindScaleByK, numInputs: 1},
		{name: "scale_by_k unary violated", kind: types.KindScaleByK, numInputs: 2, wantErr: types.ErrArityMismatch},
		{name: "divide binary ok", kind: types.KindDivide, numInputs: 2},
		{name: "divide binary violated", kind: types.KindDivide, numInputs: 1, wantErr: types.ErrArityMismatch},
		{name: "add n-ary zero ok", kind: types.KindAdd, numInputs: 0},
		{name: "add n-ary many ok", kind: types.KindAdd, numInputs: 50},
		{name: "unknown kind", kind: "frobnicate", numInputs: 0, wantErr: types.ErrUnknownKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckArity(tc.kind, tc.numInputs)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("CheckArity(%q, %d) err = %v, want wrapping %v", tc.kind, tc.numInputs, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckArity(%q, %d): %v", tc.kind, tc.numInputs, err)
			}
		})
	}
}

func TestAll_ContainsEveryKind(t *testing.T) {
	want := []types.NodeKind{
		types.KindInput, types.KindConstant, types.KindAdd, types.KindMultiply,
		types.KindDivide, types.KindCompare, types.KindPower, types.KindScaleByK,
	}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("All() returned %d kinds, want %d", len(got), len(want))
	}
	seen := make(map[types.NodeKind]bool, len(got))
	for _, k := range got {
		seen[k] = true
	}
	for _, k := range want {
		if !seen[k] {
			t.Errorf("All() missing kind %q", k)
		}
	}
}

func TestArity_String(t *testing.T) {
	tests := []struct {
		a    Arity
		want string
	}{
		{Nullary, "nullary"},
		{Unary, "unary"},
		{Binary, "binary"},
		{NAry, "n-ary"},
		{Arity(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Arity(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}
