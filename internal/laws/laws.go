// Package laws builds the hand-written example terms that exercise the
// evaluator and the equivalence checker, and turns them into printable
// pass/fail results. There is no parser in this system: every term below is
// constructed directly from the grammar.
package laws

import (
	"github.com/sukikrishna/dependent-type/internal/debruijn"
	"github.com/sukikrishna/dependent-type/internal/named"
	"github.com/sukikrishna/dependent-type/internal/term"
)

// Commutativity returns the two sides of a+b = b+a over literals.
func Commutativity(a, b int) (named.Term, named.Term) {
	return named.Add{Left: named.Lit{Value: a}, Right: named.Lit{Value: b}},
		named.Add{Left: named.Lit{Value: b}, Right: named.Lit{Value: a}}
}

// Associativity returns the two sides of (a*b)*c = a*(b*c) over literals.
func Associativity(a, b, c int) (named.Term, named.Term) {
	lit := func(n int) named.Term { return named.Lit{Value: n} }
	return named.Mul{Left: named.Mul{Left: lit(a), Right: lit(b)}, Right: lit(c)},
		named.Mul{Left: lit(a), Right: named.Mul{Left: lit(b), Right: lit(c)}}
}

// natMotive is the constant motive (λ_:Nat. Nat) used by the arithmetic
// combinators below.
func natMotive() named.Term {
	return named.Lam{Bind: "_", Domain: named.Nat{}, Body: named.Nat{}}
}

// AddCombinator encodes addition on numerals by elimination of the first
// argument: a+b folds a, starting from b and taking one successor per step.
func AddCombinator() named.Term {
	return named.Lam{Bind: "a", Domain: named.Nat{}, Body: named.Lam{
		Bind: "b", Domain: named.Nat{}, Body: named.ElimNat{
			Motive: natMotive(),
			Base:   named.Var{Ref: "b"},
			Inductive: named.Lam{Bind: "_", Domain: named.Nat{}, Body: named.Lam{
				Bind: "rec", Domain: named.Nat{},
				Body: named.Succ{Pred: named.Var{Ref: "rec"}},
			}},
			Target: named.Var{Ref: "a"},
		},
	}}
}

// MulCombinator encodes multiplication as iterated addition: a*b folds a,
// starting from zero and adding b per step.
func MulCombinator() named.Term {
	return named.Lam{Bind: "a", Domain: named.Nat{}, Body: named.Lam{
		Bind: "b", Domain: named.Nat{}, Body: named.ElimNat{
			Motive: natMotive(),
			Base:   named.Zero{},
			Inductive: named.Lam{Bind: "_", Domain: named.Nat{}, Body: named.Lam{
				Bind: "rec", Domain: named.Nat{},
				Body: apply2(AddCombinator(), named.Var{Ref: "b"}, named.Var{Ref: "rec"}),
			}},
			Target: named.Var{Ref: "a"},
		},
	}}
}

// FactorialCombinator folds n from one, multiplying by each successor.
func FactorialCombinator() named.Term {
	return named.Lam{Bind: "n", Domain: named.Nat{}, Body: named.ElimNat{
		Motive: natMotive(),
		Base:   named.Succ{Pred: named.Zero{}},
		Inductive: named.Lam{Bind: "k", Domain: named.Nat{}, Body: named.Lam{
			Bind: "rec", Domain: named.Nat{},
			Body: apply2(MulCombinator(),
				named.Succ{Pred: named.Var{Ref: "k"}},
				named.Var{Ref: "rec"}),
		}},
		Target: named.Var{Ref: "n"},
	}}
}

func apply2(fn, a, b named.Term) named.Term {
	return named.App{Fn: named.App{Fn: fn, Arg: a}, Arg: b}
}

// ApplyNat applies a two-argument combinator to the numerals for a and b.
func ApplyNat(fn named.Term, a, b int) named.Term {
	return apply2(fn, named.FromInt(a), named.FromInt(b))
}

// WorkedIndexedAdd is the indexed addition combinator exactly as it was
// hand-transcribed for the worked example, base and target both written as
// index 1. Under binders a then b the base should be index 0 (b); combined
// with the missing down-shift in Subst this is what drives the pinned
// 2+3 = 4, 3+2 = 6 mis-computation. FromNamed(AddCombinator()) produces
// the correctly indexed form; this one is kept verbatim because the worked
// example and its failure are part of the model's documented behavior.
func WorkedIndexedAdd() debruijn.Term {
	return debruijn.Lam{Domain: debruijn.Nat{}, Body: debruijn.Lam{
		Domain: debruijn.Nat{}, Body: debruijn.ElimNat{
			Motive: debruijn.Lam{Domain: debruijn.Nat{}, Body: debruijn.Nat{}},
			Base:   debruijn.Var{Ref: term.Index(1)},
			Inductive: debruijn.Lam{Domain: debruijn.Nat{}, Body: debruijn.Lam{
				Domain: debruijn.Nat{},
				Body:   debruijn.Succ{Pred: debruijn.Var{Ref: term.Index(0)}},
			}},
			Target: debruijn.Var{Ref: term.Index(1)},
		},
	}}
}

// ApplyIndexedNat applies a two-argument indexed combinator to numerals.
func ApplyIndexedNat(fn debruijn.Term, a, b int) debruijn.Term {
	return debruijn.App{
		Fn:  debruijn.App{Fn: fn, Arg: debruijn.FromInt(a)},
		Arg: debruijn.FromInt(b),
	}
}
