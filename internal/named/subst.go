package named

import (
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/sukikrishna/dependent-type/internal/term"
)

// FreeVars collects the free variable names of t, outermost first, without
// duplicates. A binder removes its own name from the free variables of its
// body but not from those of its domain.
func FreeVars(t Term) []term.Name {
	switch t := t.(type) {
	case Var:
		return []term.Name{t.Ref}
	case Lam:
		return lo.Union(freeVarsType(t.Domain), lo.Without(FreeVars(t.Body), t.Bind))
	case Pi:
		return lo.Union(freeVarsType(t.Domain), lo.Without(FreeVars(t.Codomain), t.Bind))
	case App:
		return lo.Union(FreeVars(t.Fn), FreeVars(t.Arg))
	case Add:
		return lo.Union(FreeVars(t.Left), FreeVars(t.Right))
	case Mul:
		return lo.Union(FreeVars(t.Left), FreeVars(t.Right))
	case Succ:
		return FreeVars(t.Pred)
	case ElimNat:
		return lo.Union(FreeVars(t.Motive), FreeVars(t.Base), FreeVars(t.Inductive), FreeVars(t.Target))
	}
	// Lit, Nat, Zero
	return nil
}

func freeVarsType(ty Type) []term.Name {
	if pi, ok := ty.(Pi); ok {
		return FreeVars(pi)
	}
	return nil
}

// Substitute replaces every free occurrence of name in target with
// replacement, producing a new tree. Substitution is capture-avoiding: when
// descending under a binder whose name occurs free in the replacement, the
// binder is renamed to a fresh name first so that no free variable of the
// replacement becomes bound. It is total over well-formed trees.
func Substitute(target Term, name term.Name, replacement Term) Term {
	switch t := target.(type) {
	case Var:
		if t.Ref == name {
			return replacement
		}
		return t
	case Lam:
		dom := substituteType(t.Domain, name, replacement)
		if t.Bind == name {
			// The binder shadows the substituted name; the body is out of reach.
			return Lam{Bind: t.Bind, Domain: dom, Body: t.Body}
		}
		bind, body := avoidCapture(t.Bind, t.Body, replacement)
		return Lam{Bind: bind, Domain: dom, Body: Substitute(body, name, replacement)}
	case Pi:
		dom := substituteType(t.Domain, name, replacement)
		if t.Bind == name {
			return Pi{Bind: t.Bind, Domain: dom, Codomain: t.Codomain}
		}
		bind, cod := avoidCapture(t.Bind, t.Codomain, replacement)
		return Pi{Bind: bind, Domain: dom, Codomain: Substitute(cod, name, replacement)}
	case App:
		return App{Fn: Substitute(t.Fn, name, replacement), Arg: Substitute(t.Arg, name, replacement)}
	case Add:
		return Add{Left: Substitute(t.Left, name, replacement), Right: Substitute(t.Right, name, replacement)}
	case Mul:
		return Mul{Left: Substitute(t.Left, name, replacement), Right: Substitute(t.Right, name, replacement)}
	case Succ:
		return Succ{Pred: Substitute(t.Pred, name, replacement)}
	case ElimNat:
		return ElimNat{
			Motive:    Substitute(t.Motive, name, replacement),
			Base:      Substitute(t.Base, name, replacement),
			Inductive: Substitute(t.Inductive, name, replacement),
			Target:    Substitute(t.Target, name, replacement),
		}
	}
	// Lit, Nat, Zero
	return target
}

func substituteType(ty Type, name term.Name, replacement Term) Type {
	if pi, ok := ty.(Pi); ok {
		return Substitute(pi, name, replacement).(Pi)
	}
	return ty
}

// avoidCapture renames bind throughout body when it occurs free in the
// replacement about to be pushed under the binder.
func avoidCapture(bind term.Name, body Term, replacement Term) (term.Name, Term) {
	if !slices.Contains(FreeVars(replacement), bind) {
		return bind, body
	}
	fresh := freshName(bind, lo.Union(FreeVars(body), FreeVars(replacement)))
	return fresh, Substitute(body, bind, Var{Ref: fresh})
}

// freshName returns the first numeric-suffix variant of base that is not in
// avoid, starting at 2 so that a clashing "y" becomes "y2".
func freshName(base term.Name, avoid []term.Name) term.Name {
	for n := 2; ; n++ {
		candidate := base + term.Name(strconv.Itoa(n))
		if !slices.Contains(avoid, candidate) {
			return candidate
		}
	}
}
