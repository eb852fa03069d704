// Package term defines the expression grammar shared by the two semantic
// models. The grammar is written once, parameterized over the
// variable-occurrence representation: the named model instantiates it with
// string names, the indexed model with De Bruijn indices. Keeping a single
// set of node types prevents the beta/delta rule implementations of the two
// models from drifting apart.
package term

import "fmt"

// Occ constrains the variable-occurrence representation. A named occurrence
// is a Name; an indexed occurrence is an Index counting enclosing binders.
type Occ interface {
	comparable
	fmt.Stringer
}

// Binder constrains what a Lam or Pi carries at its binding site. The named
// model binds a Name; the indexed model binds Anon, since De Bruijn binders
// are positional and carry nothing.
type Binder interface {
	comparable
	fmt.Stringer
}

// Term is the interface for all expression nodes. Terms are immutable
// values; every transformation builds a new tree.
type Term[R Occ, B Binder] interface {
	fmt.Stringer
	isTerm(R, B)
}

// Type is the interface for nodes usable in a binder's domain. Types are
// terms in this model: Nat and Pi satisfy both interfaces.
type Type[R Occ, B Binder] interface {
	fmt.Stringer
	isType(R, B)
}

// Name is the named-model occurrence and binder representation.
type Name string

func (n Name) String() string { return string(n) }

// Index is a zero-based De Bruijn index: the number of binders between an
// occurrence and its binding site, 0 being the nearest enclosing binder.
type Index int

func (i Index) String() string { return fmt.Sprintf("%d", int(i)) }

// Anon is the indexed-model binder. Binding sites carry no name.
type Anon struct{}

func (Anon) String() string { return "" }
