// Package named implements the Named-Term Model: the shared grammar
// instantiated with string variable names, capture-avoiding substitution,
// the reduction-to-normal-form evaluator and the equivalence check over
// normal forms. The equivalence check compares binder names literally and
// is therefore unsound across alpha-variants; that weakness is deliberate
// and documented, and package debruijn is the repair attempt.
package named

import "github.com/sukikrishna/dependent-type/internal/term"

// Instantiations of the shared grammar with named occurrences and binders.
type (
	Term = term.Term[term.Name, term.Name]
	Type = term.Type[term.Name, term.Name]

	Var     = term.Var[term.Name, term.Name]
	Lit     = term.Lit[term.Name, term.Name]
	Lam     = term.Lam[term.Name, term.Name]
	App     = term.App[term.Name, term.Name]
	Add     = term.Add[term.Name, term.Name]
	Mul     = term.Mul[term.Name, term.Name]
	Pi      = term.Pi[term.Name, term.Name]
	Nat     = term.Nat[term.Name, term.Name]
	Zero    = term.Zero[term.Name, term.Name]
	Succ    = term.Succ[term.Name, term.Name]
	ElimNat = term.ElimNat[term.Name, term.Name]
)

// FromInt encodes n as a Zero/Succ numeral.
func FromInt(n int) Term { return term.FromInt[term.Name, term.Name](n) }

// ToInt decodes a Zero/Succ numeral.
func ToInt(t Term) (int, error) { return term.ToInt(t) }
