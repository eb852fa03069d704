package term

import "fmt"

// Nat is the base type of naturals. It is also a term: the grammar treats
// types as first-class expressions, so Nat can stand as a lambda body (the
// usual shape of an eliminator motive).
type Nat[R Occ, B Binder] struct{}

func (Nat[R, B]) isTerm(R, B)    {}
func (Nat[R, B]) isType(R, B)    {}
func (Nat[R, B]) String() string { return "Nat" }

// Pi is the dependent function type, binding Bind with type Domain in
// Codomain. Like Nat it lives on both sides of the grammar: it is a type
// for binder domains and a term-level value in its own right.
type Pi[R Occ, B Binder] struct {
	Bind     B
	Domain   Type[R, B]
	Codomain Term[R, B]
}

func (Pi[R, B]) isTerm(R, B) {}
func (Pi[R, B]) isType(R, B) {}
func (p Pi[R, B]) String() string {
	return fmt.Sprintf("(Π%s:%s. %s)", p.Bind, p.Domain, p.Codomain)
}
