package debruijn

import (
	"testing"

	"github.com/sukikrishna/dependent-type/internal/term"
)

func v(i int) Term { return Var{Ref: term.Index(i)} }

func TestShift(t *testing.T) {
	tests := []struct {
		name   string
		term   Term
		amount int
		cutoff int
		want   Term
	}{
		{
			name:   "free index moves",
			term:   v(0),
			amount: 1,
			cutoff: 0,
			want:   v(1),
		},
		{
			name:   "index below cutoff stays",
			term:   v(0),
			amount: 1,
			cutoff: 1,
			want:   v(0),
		},
		{
			name:   "bound index survives its own binder",
			term:   Lam{Domain: Nat{}, Body: v(0)},
			amount: 1,
			cutoff: 0,
			want:   Lam{Domain: Nat{}, Body: v(0)},
		},
		{
			name:   "free index under a binder moves",
			term:   Lam{Domain: Nat{}, Body: v(1)},
			amount: 2,
			cutoff: 0,
			want:   Lam{Domain: Nat{}, Body: v(3)},
		},
		{
			name:   "pi raises the cutoff for its codomain",
			term:   Pi{Domain: Nat{}, Codomain: v(0)},
			amount: 1,
			cutoff: 0,
			want:   Pi{Domain: Nat{}, Codomain: v(0)},
		},
		{
			name:   "negative amount shifts down",
			term:   v(3),
			amount: -1,
			cutoff: 0,
			want:   v(2),
		},
		{
			// The eliminator binds nothing itself: all four children shift
			// at the same cutoff.
			name: "eliminator children share the cutoff",
			term: ElimNat{Motive: v(0), Base: v(0), Inductive: v(0), Target: v(0)},
			amount: 1,
			cutoff: 0,
			want: ElimNat{Motive: v(1), Base: v(1), Inductive: v(1), Target: v(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shift(tt.term, tt.amount, tt.cutoff); !term.Equal(got, tt.want) {
				t.Errorf("Shift(%s, %d, %d) = %s, want %s", tt.term, tt.amount, tt.cutoff, got, tt.want)
			}
		})
	}
}

func TestSubst(t *testing.T) {
	tests := []struct {
		name        string
		term        Term
		index       int
		replacement Term
		want        Term
	}{
		{
			name:        "matching index",
			term:        v(0),
			index:       0,
			replacement: Lit{Value: 5},
			want:        Lit{Value: 5},
		},
		{
			name:        "other index untouched",
			term:        v(1),
			index:       0,
			replacement: Lit{Value: 5},
			want:        v(1),
		},
		{
			name:        "sought index grows under a binder",
			term:        Lam{Domain: Nat{}, Body: v(1)},
			index:       0,
			replacement: Lit{Value: 5},
			want:        Lam{Domain: Nat{}, Body: Lit{Value: 5}},
		},
		{
			name:        "replacement is shifted across the binder",
			term:        Lam{Domain: Nat{}, Body: v(1)},
			index:       0,
			replacement: v(4),
			want:        Lam{Domain: Nat{}, Body: v(5)},
		},
		{
			name:        "bound occurrence is not the sought index",
			term:        Lam{Domain: Nat{}, Body: v(0)},
			index:       0,
			replacement: Lit{Value: 5},
			want:        Lam{Domain: Nat{}, Body: v(0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subst(tt.term, tt.index, tt.replacement)
			if !term.Equal(got, tt.want) {
				t.Errorf("Subst(%s, %d, %s) = %s, want %s",
					tt.term, tt.index, tt.replacement, got, tt.want)
			}
		})
	}
}
