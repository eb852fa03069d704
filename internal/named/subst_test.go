package named

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/sukikrishna/dependent-type/internal/term"
)

func TestFreeVars(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want []term.Name
	}{
		{
			name: "variable is free",
			term: Var{Ref: "x"},
			want: []term.Name{"x"},
		},
		{
			name: "binder removes its name",
			term: Lam{Bind: "x", Domain: Nat{}, Body: App{Fn: Var{Ref: "x"}, Arg: Var{Ref: "y"}}},
			want: []term.Name{"y"},
		},
		{
			name: "shadowed name stays bound",
			term: Lam{Bind: "x", Domain: Nat{}, Body: Lam{Bind: "x", Domain: Nat{}, Body: Var{Ref: "x"}}},
			want: nil,
		},
		{
			name: "pi binds its codomain only",
			term: Pi{Bind: "n", Domain: Nat{}, Codomain: Var{Ref: "n"}},
			want: nil,
		},
		{
			name: "eliminator children all contribute",
			term: ElimNat{Motive: Var{Ref: "m"}, Base: Var{Ref: "b"}, Inductive: Var{Ref: "i"}, Target: Var{Ref: "t"}},
			want: []term.Name{"m", "b", "i", "t"},
		},
		{
			name: "closed term",
			term: Lit{Value: 4},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FreeVars(tt.term); !slices.Equal(got, tt.want) {
				t.Errorf("FreeVars(%s) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name        string
		target      Term
		varName     term.Name
		replacement Term
		want        Term
	}{
		{
			name:        "matching variable",
			target:      Var{Ref: "x"},
			varName:     "x",
			replacement: Lit{Value: 5},
			want:        Lit{Value: 5},
		},
		{
			name:        "other variable untouched",
			target:      Var{Ref: "y"},
			varName:     "x",
			replacement: Lit{Value: 5},
			want:        Var{Ref: "y"},
		},
		{
			name:        "binder shadows the substituted name",
			target:      Lam{Bind: "x", Domain: Nat{}, Body: Var{Ref: "x"}},
			varName:     "x",
			replacement: Lit{Value: 5},
			want:        Lam{Bind: "x", Domain: Nat{}, Body: Var{Ref: "x"}},
		},
		{
			name:        "descends under a non-clashing binder",
			target:      Lam{Bind: "y", Domain: Nat{}, Body: Add{Left: Var{Ref: "x"}, Right: Var{Ref: "y"}}},
			varName:     "x",
			replacement: Lit{Value: 5},
			want:        Lam{Bind: "y", Domain: Nat{}, Body: Add{Left: Lit{Value: 5}, Right: Var{Ref: "y"}}},
		},
		{
			// The classic capture case: pushing y under λy would bind it, so
			// the binder is renamed first.
			name:        "renames to avoid capture",
			target:      Lam{Bind: "y", Domain: Nat{}, Body: Var{Ref: "x"}},
			varName:     "x",
			replacement: Var{Ref: "y"},
			want:        Lam{Bind: "y2", Domain: Nat{}, Body: Var{Ref: "y"}},
		},
		{
			name:        "fresh name skips occupied suffixes",
			target:      Lam{Bind: "y", Domain: Nat{}, Body: App{Fn: Var{Ref: "x"}, Arg: Var{Ref: "y2"}}},
			varName:     "x",
			replacement: Var{Ref: "y"},
			want:        Lam{Bind: "y3", Domain: Nat{}, Body: App{Fn: Var{Ref: "y"}, Arg: Var{Ref: "y2"}}},
		},
		{
			name:    "substitutes inside a pi domain",
			target:  Lam{Bind: "f", Domain: Pi{Bind: "n", Domain: Nat{}, Codomain: Var{Ref: "x"}}, Body: Var{Ref: "f"}},
			varName: "x",
			replacement: Lit{Value: 1},
			want:    Lam{Bind: "f", Domain: Pi{Bind: "n", Domain: Nat{}, Codomain: Lit{Value: 1}}, Body: Var{Ref: "f"}},
		},
		{
			name:        "rebuilds eliminator children",
			target:      ElimNat{Motive: Var{Ref: "x"}, Base: Var{Ref: "x"}, Inductive: Zero{}, Target: Var{Ref: "x"}},
			varName:     "x",
			replacement: Zero{},
			want:        ElimNat{Motive: Zero{}, Base: Zero{}, Inductive: Zero{}, Target: Zero{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(tt.target, tt.varName, tt.replacement)
			if !term.Equal(got, tt.want) {
				t.Errorf("Substitute(%s, %s, %s) = %s, want %s",
					tt.target, tt.varName, tt.replacement, got, tt.want)
			}
		})
	}
}

func TestSubstituteNoCapture(t *testing.T) {
	// After a capture-avoiding substitution, no free variable of the
	// replacement may have become bound.
	target := Lam{Bind: "y", Domain: Nat{}, Body: Var{Ref: "x"}}
	got := Substitute(target, "x", Var{Ref: "y"})
	if !slices.Contains(FreeVars(got), "y") {
		t.Errorf("y was captured: FreeVars(%s) = %v", got, FreeVars(got))
	}
}
