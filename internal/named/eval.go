package named

import (
	"github.com/sukikrishna/dependent-type/internal/term"
)

// step performs one reduction: beta as soon as an application's head is an
// abstraction (the argument is substituted unreduced), delta on literal
// arithmetic, and the eliminator rules on numerals; otherwise the leftmost
// reducible child takes the step. Reduction proceeds under binders.
func step(t Term) (Term, bool) {
	switch t := t.(type) {
	case App:
		if lam, ok := t.Fn.(Lam); ok {
			return Substitute(lam.Body, lam.Bind, t.Arg), true
		}
		if fn, ok := step(t.Fn); ok {
			return App{Fn: fn, Arg: t.Arg}, true
		}
		if arg, ok := step(t.Arg); ok {
			return App{Fn: t.Fn, Arg: arg}, true
		}
	case Lam:
		if body, ok := step(t.Body); ok {
			return Lam{Bind: t.Bind, Domain: t.Domain, Body: body}, true
		}
	case Pi:
		if dom, ok := stepType(t.Domain); ok {
			return Pi{Bind: t.Bind, Domain: dom, Codomain: t.Codomain}, true
		}
		if cod, ok := step(t.Codomain); ok {
			return Pi{Bind: t.Bind, Domain: t.Domain, Codomain: cod}, true
		}
	case Add:
		if l, ok := t.Left.(Lit); ok {
			if r, ok := t.Right.(Lit); ok {
				return Lit{Value: l.Value + r.Value}, true
			}
		}
		if left, ok := step(t.Left); ok {
			return Add{Left: left, Right: t.Right}, true
		}
		if right, ok := step(t.Right); ok {
			return Add{Left: t.Left, Right: right}, true
		}
	case Mul:
		if l, ok := t.Left.(Lit); ok {
			if r, ok := t.Right.(Lit); ok {
				return Lit{Value: l.Value * r.Value}, true
			}
		}
		if left, ok := step(t.Left); ok {
			return Mul{Left: left, Right: t.Right}, true
		}
		if right, ok := step(t.Right); ok {
			return Mul{Left: t.Left, Right: right}, true
		}
	case Succ:
		if pred, ok := step(t.Pred); ok {
			return Succ{Pred: pred}, true
		}
	case ElimNat:
		switch target := t.Target.(type) {
		case Zero:
			return t.Base, true
		case Succ:
			rec := ElimNat{Motive: t.Motive, Base: t.Base, Inductive: t.Inductive, Target: target.Pred}
			return App{Fn: App{Fn: t.Inductive, Arg: target.Pred}, Arg: rec}, true
		}
		if target, ok := step(t.Target); ok {
			return ElimNat{Motive: t.Motive, Base: t.Base, Inductive: t.Inductive, Target: target}, true
		}
	}
	return nil, false
}

func stepType(ty Type) (Type, bool) {
	if pi, ok := ty.(Pi); ok {
		if next, stepped := step(pi); stepped {
			return next.(Pi), true
		}
	}
	return nil, false
}

// Normalize reduces t until no rule applies. The model's terms are finite
// first-order arithmetic combinations, so the loop terminates.
func Normalize(t Term) Term {
	for {
		next, ok := step(t)
		if !ok {
			return t
		}
		t = next
	}
}

// Evaluate reduces t to normal form. A closed term whose normal form is not
// a value (a literal, numeral, abstraction or type) has hit a state with no
// applicable rule, which is reported rather than returned silently; open
// terms normalize without error since free variables legitimately block
// reduction.
func Evaluate(t Term) (Term, error) {
	nf := Normalize(t)
	if len(FreeVars(nf)) == 0 && !isValue(nf) {
		return nf, &term.StuckTermError{Term: nf.String()}
	}
	return nf, nil
}

func isValue(t Term) bool {
	switch t := t.(type) {
	case Lit, Lam, Pi, Nat, Zero:
		return true
	case Succ:
		return isValue(t.Pred)
	}
	return false
}

// Equivalent evaluates both terms and compares the normal forms
// structurally. Binder names are compared literally, so alpha-variant
// normal forms are judged unequal; see the package comment.
func Equivalent(t1, t2 Term) (bool, error) {
	n1, err := Evaluate(t1)
	if err != nil {
		return false, err
	}
	n2, err := Evaluate(t2)
	if err != nil {
		return false, err
	}
	return term.Equal(n1, n2), nil
}
