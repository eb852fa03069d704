package debruijn

import "github.com/sukikrishna/dependent-type/internal/term"

// Shift adds amount to every index at or above cutoff, raising the cutoff
// by one under each binder. It is required whenever a term crosses a binder
// boundary, so that its free indices keep counting the right number of
// enclosing binders. Note that ElimNat's children are shifted at the same
// cutoff: the eliminator itself binds nothing, its motive and inductive
// step are ordinary lambda terms.
func Shift(t Term, amount, cutoff int) Term {
	switch t := t.(type) {
	case Var:
		if int(t.Ref) >= cutoff {
			return Var{Ref: t.Ref + term.Index(amount)}
		}
		return t
	case Lam:
		return Lam{Domain: shiftType(t.Domain, amount, cutoff), Body: Shift(t.Body, amount, cutoff+1)}
	case Pi:
		return Pi{Domain: shiftType(t.Domain, amount, cutoff), Codomain: Shift(t.Codomain, amount, cutoff+1)}
	case App:
		return App{Fn: Shift(t.Fn, amount, cutoff), Arg: Shift(t.Arg, amount, cutoff)}
	case Add:
		return Add{Left: Shift(t.Left, amount, cutoff), Right: Shift(t.Right, amount, cutoff)}
	case Mul:
		return Mul{Left: Shift(t.Left, amount, cutoff), Right: Shift(t.Right, amount, cutoff)}
	case Succ:
		return Succ{Pred: Shift(t.Pred, amount, cutoff)}
	case ElimNat:
		return ElimNat{
			Motive:    Shift(t.Motive, amount, cutoff),
			Base:      Shift(t.Base, amount, cutoff),
			Inductive: Shift(t.Inductive, amount, cutoff),
			Target:    Shift(t.Target, amount, cutoff),
		}
	}
	// Lit, Nat, Zero
	return t
}

func shiftType(ty Type, amount, cutoff int) Type {
	if pi, ok := ty.(Pi); ok {
		return Shift(pi, amount, cutoff).(Pi)
	}
	return ty
}

// Subst replaces every occurrence of index in t with replacement. Under a
// binder the sought index grows by one and the replacement's free indices
// are shifted up by one to survive the crossing.
//
// Beta-reduction calls Subst(body, 0, Shift(arg, 1, 0)) and stops there;
// the textbook down-shift that accounts for the consumed binder is absent.
// Indices above the substituted one therefore come out off by one once the
// binder disappears, which is the root of the worked-example failure the
// eval tests pin. TODO: apply the down-shift after beta and re-baseline
// the pinned results.
func Subst(t Term, index int, replacement Term) Term {
	switch t := t.(type) {
	case Var:
		if int(t.Ref) == index {
			return replacement
		}
		return t
	case Lam:
		return Lam{
			Domain: substType(t.Domain, index, replacement),
			Body:   Subst(t.Body, index+1, Shift(replacement, 1, 0)),
		}
	case Pi:
		return Pi{
			Domain:   substType(t.Domain, index, replacement),
			Codomain: Subst(t.Codomain, index+1, Shift(replacement, 1, 0)),
		}
	case App:
		return App{Fn: Subst(t.Fn, index, replacement), Arg: Subst(t.Arg, index, replacement)}
	case Add:
		return Add{Left: Subst(t.Left, index, replacement), Right: Subst(t.Right, index, replacement)}
	case Mul:
		return Mul{Left: Subst(t.Left, index, replacement), Right: Subst(t.Right, index, replacement)}
	case Succ:
		return Succ{Pred: Subst(t.Pred, index, replacement)}
	case ElimNat:
		return ElimNat{
			Motive:    Subst(t.Motive, index, replacement),
			Base:      Subst(t.Base, index, replacement),
			Inductive: Subst(t.Inductive, index, replacement),
			Target:    Subst(t.Target, index, replacement),
		}
	}
	// Lit, Nat, Zero
	return t
}

func substType(ty Type, index int, replacement Term) Type {
	if pi, ok := ty.(Pi); ok {
		return Subst(pi, index, replacement).(Pi)
	}
	return ty
}
