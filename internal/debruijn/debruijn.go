// Package debruijn implements the Indexed-Term Model: the shared grammar
// instantiated with De Bruijn indices, index shifting, indexed substitution
// and the conversions to and from the named representation. Because indices
// encode binder distance instead of names, structural equality of indexed
// normal forms is alpha-equivalence, which is what the named model's
// comparison gets wrong.
//
// Known limitation: the shift/substitution interaction is incomplete, the
// down-shift that should follow beta-reduction is missing (see Subst). The
// worked addition example therefore mis-computes, and the package's tests
// pin that behavior so any change to it is a conscious one.
package debruijn

import "github.com/sukikrishna/dependent-type/internal/term"

// Instantiations of the shared grammar with indexed occurrences and
// anonymous binders.
type (
	Term = term.Term[term.Index, term.Anon]
	Type = term.Type[term.Index, term.Anon]

	Var     = term.Var[term.Index, term.Anon]
	Lit     = term.Lit[term.Index, term.Anon]
	Lam     = term.Lam[term.Index, term.Anon]
	App     = term.App[term.Index, term.Anon]
	Add     = term.Add[term.Index, term.Anon]
	Mul     = term.Mul[term.Index, term.Anon]
	Pi      = term.Pi[term.Index, term.Anon]
	Nat     = term.Nat[term.Index, term.Anon]
	Zero    = term.Zero[term.Index, term.Anon]
	Succ    = term.Succ[term.Index, term.Anon]
	ElimNat = term.ElimNat[term.Index, term.Anon]
)

// FromInt encodes n as a Zero/Succ numeral.
func FromInt(n int) Term { return term.FromInt[term.Index, term.Anon](n) }

// ToInt decodes a Zero/Succ numeral.
func ToInt(t Term) (int, error) { return term.ToInt(t) }

// Equivalent evaluates both terms under the default evaluator and compares
// the normal forms structurally. With anonymous binders this comparison is
// insensitive to the original choice of names.
func Equivalent(t1, t2 Term) (bool, error) {
	return New().Equivalent(t1, t2)
}
