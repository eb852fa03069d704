package debruijn

import (
	"fmt"
	"io"

	"github.com/sukikrishna/dependent-type/internal/config"
	"github.com/sukikrishna/dependent-type/internal/term"
)

// Evaluator reduces indexed terms to normal form. Unlike the named model
// the loop is budgeted: the incomplete substitution can cycle, so every run
// carries a step limit. Out, when set, receives one line per reduction
// step.
type Evaluator struct {
	Out      io.Writer
	MaxSteps int
}

// New returns an evaluator with the default step budget and no trace.
func New() *Evaluator {
	return &Evaluator{MaxSteps: config.MaxReductionSteps}
}

// step performs one reduction; beta substitutes the up-shifted argument for
// index 0 in the body (with no down-shift afterwards, see Subst).
func step(t Term) (Term, bool) {
	switch t := t.(type) {
	case App:
		if lam, ok := t.Fn.(Lam); ok {
			return Subst(lam.Body, 0, Shift(t.Arg, 1, 0)), true
		}
		if fn, ok := step(t.Fn); ok {
			return App{Fn: fn, Arg: t.Arg}, true
		}
		if arg, ok := step(t.Arg); ok {
			return App{Fn: t.Fn, Arg: arg}, true
		}
	case Lam:
		if body, ok := step(t.Body); ok {
			return Lam{Domain: t.Domain, Body: body}, true
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

// Evaluate reduces t until no rule applies or the budget runs out. On
// exhaustion the partially reduced term is returned alongside a
// StepLimitError. A closed term that normalized to a non-value is reported
// as stuck.
func (e *Evaluator) Evaluate(t Term) (Term, error) {
	for steps := 0; ; steps++ {
		if e.Out != nil {
			fmt.Fprintf(e.Out, "Step %d: %s\n", steps, t)
		}
		if steps >= e.MaxSteps {
			return t, &term.StepLimitError{Limit: e.MaxSteps, Term: t.String()}
		}
		next, ok := step(t)
		if !ok {
			break
		}
		t = next
	}
	if closed(t, 0) && !isValue(t) {
		return t, &term.StuckTermError{Term: t.String()}
	}
	return t, nil
}

// closed reports whether every index in t points at a binder within t
// itself, given depth already-entered binders.
func closed(t Term, depth int) bool {
	switch t := t.(type) {
	case Var:
		return int(t.Ref) < depth
	case Lam:
		return closedType(t.Domain, depth) && closed(t.Body, depth+1)
	case Pi:
		return closedType(t.Domain, depth) && closed(t.Codomain, depth+1)
	case App:
		return closed(t.Fn, depth) && closed(t.Arg, depth)
	case Add:
		return closed(t.Left, depth) && closed(t.Right, depth)
	case Mul:
		return closed(t.Left, depth) && closed(t.Right, depth)
	case Succ:
		return closed(t.Pred, depth)
	case ElimNat:
		return closed(t.Motive, depth) && closed(t.Base, depth) &&
			closed(t.Inductive, depth) && closed(t.Target, depth)
	}
	// Lit, Nat, Zero
	return true
}

func closedType(ty Type, depth int) bool {
	if pi, ok := ty.(Pi); ok {
		return closed(pi, depth)
	}
	return true
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
// structurally.
func (e *Evaluator) Equivalent(t1, t2 Term) (bool, error) {
	n1, err := e.Evaluate(t1)
	if err != nil {
		return false, err
	}
	n2, err := e.Evaluate(t2)
	if err != nil {
		return false, err
	}
	return term.Equal(n1, n2), nil
}
