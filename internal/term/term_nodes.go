package term

import "fmt"

// Var is a variable occurrence.
type Var[R Occ, B Binder] struct {
	Ref R
}

func (Var[R, B]) isTerm(R, B)       {}
func (v Var[R, B]) String() string  { return v.Ref.String() }

// Lit is a numeric literal, the operand form of the delta rules.
type Lit[R Occ, B Binder] struct {
	Value int
}

func (Lit[R, B]) isTerm(R, B)      {}
func (l Lit[R, B]) String() string { return fmt.Sprintf("%d", l.Value) }

// Lam is a lambda abstraction binding Bind with type Domain in Body.
type Lam[R Occ, B Binder] struct {
	Bind   B
	Domain Type[R, B]
	Body   Term[R, B]
}

func (Lam[R, B]) isTerm(R, B) {}
func (l Lam[R, B]) String() string {
	return fmt.Sprintf("(λ%s:%s. %s)", l.Bind, l.Domain, l.Body)
}

// App is function application.
type App[R Occ, B Binder] struct {
	Fn  Term[R, B]
	Arg Term[R, B]
}

func (App[R, B]) isTerm(R, B)      {}
func (a App[R, B]) String() string { return fmt.Sprintf("(%s %s)", a.Fn, a.Arg) }

// Add is the primitive addition node, a delta redex over two literals.
type Add[R Occ, B Binder] struct {
	Left  Term[R, B]
	Right Term[R, B]
}

func (Add[R, B]) isTerm(R, B)      {}
func (a Add[R, B]) String() string { return fmt.Sprintf("(%s + %s)", a.Left, a.Right) }

// Mul is the primitive multiplication node.
type Mul[R Occ, B Binder] struct {
	Left  Term[R, B]
	Right Term[R, B]
}

func (Mul[R, B]) isTerm(R, B)      {}
func (m Mul[R, B]) String() string { return fmt.Sprintf("(%s * %s)", m.Left, m.Right) }

// Zero is the zero numeral.
type Zero[R Occ, B Binder] struct{}

func (Zero[R, B]) isTerm(R, B)    {}
func (Zero[R, B]) String() string { return "zero" }

// Succ is the successor of a numeral.
type Succ[R Occ, B Binder] struct {
	Pred Term[R, B]
}

func (Succ[R, B]) isTerm(R, B)      {}
func (s Succ[R, B]) String() string { return fmt.Sprintf("succ(%s)", s.Pred) }

// ElimNat is the eliminator for naturals: given a motive, a base case, an
// inductive step and a target numeral, it folds the target. Its children
// are plain subterms; any binding happens inside Motive and Inductive,
// which are ordinary lambda terms.
type ElimNat[R Occ, B Binder] struct {
	Motive    Term[R, B]
	Base      Term[R, B]
	Inductive Term[R, B]
	Target    Term[R, B]
}

func (ElimNat[R, B]) isTerm(R, B) {}
func (e ElimNat[R, B]) String() string {
	return fmt.Sprintf("elimNat(%s; %s; %s; %s)", e.Motive, e.Base, e.Inductive, e.Target)
}
