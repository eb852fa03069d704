package term

import (
	"errors"
	"testing"
)

type (
	namedTerm   = Term[Name, Name]
	indexedTerm = Term[Index, Anon]
)

func TestEqualNamed(t *testing.T) {
	identity := func(bind Name) namedTerm {
		return Lam[Name, Name]{Bind: bind, Domain: Nat[Name, Name]{}, Body: Var[Name, Name]{Ref: bind}}
	}

	tests := []struct {
		name string
		a, b namedTerm
		want bool
	}{
		{
			name: "identical literals",
			a:    Lit[Name, Name]{Value: 5},
			b:    Lit[Name, Name]{Value: 5},
			want: true,
		},
		{
			name: "different literals",
			a:    Lit[Name, Name]{Value: 5},
			b:    Lit[Name, Name]{Value: 6},
			want: false,
		},
		{
			name: "identical abstractions",
			a:    identity("x"),
			b:    identity("x"),
			want: true,
		},
		{
			// Alpha-variants compare unequal: names are literal here.
			name: "alpha-variant abstractions",
			a:    identity("x"),
			b:    identity("y"),
			want: false,
		},
		{
			name: "different node kinds",
			a:    Zero[Name, Name]{},
			b:    Lit[Name, Name]{Value: 0},
			want: false,
		},
		{
			name: "applications",
			a:    App[Name, Name]{Fn: identity("x"), Arg: Lit[Name, Name]{Value: 1}},
			b:    App[Name, Name]{Fn: identity("x"), Arg: Lit[Name, Name]{Value: 1}},
			want: true,
		},
		{
			name: "arithmetic nodes",
			a:    Add[Name, Name]{Left: Lit[Name, Name]{Value: 1}, Right: Lit[Name, Name]{Value: 2}},
			b:    Mul[Name, Name]{Left: Lit[Name, Name]{Value: 1}, Right: Lit[Name, Name]{Value: 2}},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualIndexedIgnoresBinderSpelling(t *testing.T) {
	// With anonymous binders there is nothing left to misspell: two
	// identity abstractions are structurally identical.
	a := Lam[Index, Anon]{Domain: Nat[Index, Anon]{}, Body: Var[Index, Anon]{Ref: 0}}
	b := Lam[Index, Anon]{Domain: Nat[Index, Anon]{}, Body: Var[Index, Anon]{Ref: 0}}
	if !Equal[Index, Anon](a, b) {
		t.Errorf("identical indexed abstractions must compare equal")
	}
}

func TestTypeEqual(t *testing.T) {
	nat := Nat[Name, Name]{}
	pi := Pi[Name, Name]{Bind: "x", Domain: nat, Codomain: Nat[Name, Name]{}}
	if !TypeEqual[Name, Name](nat, Nat[Name, Name]{}) {
		t.Errorf("Nat must equal Nat")
	}
	if TypeEqual[Name, Name](nat, pi) {
		t.Errorf("Nat must not equal a Pi type")
	}
	if !TypeEqual[Name, Name](pi, pi) {
		t.Errorf("a Pi type must equal itself")
	}
}

func TestNumerals(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		got, err := ToInt(FromInt[Name, Name](n))
		if err != nil {
			t.Fatalf("ToInt(FromInt(%d)): %v", n, err)
		}
		if got != n {
			t.Errorf("ToInt(FromInt(%d)) = %d", n, got)
		}
	}

	if _, err := ToInt[Name, Name](Lit[Name, Name]{Value: 3}); err == nil {
		t.Errorf("ToInt on a literal must fail: literals are not numerals")
	}
	var numErr *NotANumeralError
	_, err := ToInt[Name, Name](Succ[Name, Name]{Pred: Lit[Name, Name]{Value: 1}})
	if !errors.As(err, &numErr) {
		t.Errorf("ToInt on succ of a literal: got %v, want NotANumeralError", err)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		term interface{ String() string }
		want string
	}{
		{
			name: "named abstraction",
			term: Lam[Name, Name]{Bind: "x", Domain: Nat[Name, Name]{}, Body: Var[Name, Name]{Ref: "x"}},
			want: "(λx:Nat. x)",
		},
		{
			name: "indexed abstraction",
			term: Lam[Index, Anon]{Domain: Nat[Index, Anon]{}, Body: Var[Index, Anon]{Ref: 0}},
			want: "(λ:Nat. 0)",
		},
		{
			name: "arithmetic",
			term: Add[Name, Name]{Left: Lit[Name, Name]{Value: 2}, Right: Lit[Name, Name]{Value: 3}},
			want: "(2 + 3)",
		},
		{
			name: "numeral",
			term: Succ[Name, Name]{Pred: Zero[Name, Name]{}},
			want: "succ(zero)",
		},
		{
			name: "dependent type",
			term: Pi[Name, Name]{Bind: "n", Domain: Nat[Name, Name]{}, Codomain: Nat[Name, Name]{}},
			want: "(Πn:Nat. Nat)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
