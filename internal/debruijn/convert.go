package debruijn

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/sukikrishna/dependent-type/internal/named"
	"github.com/sukikrishna/dependent-type/internal/term"
)

// FromNamed converts a named term to indexed form. ctx lists the enclosing
// binder names, innermost last; a variable becomes its distance to the
// nearest binder of that name. A name with no enclosing binder is an
// UnboundVariableError: defaulting it to some index would silently rebind
// it, so the caller gets the error instead.
func FromNamed(t named.Term, ctx []term.Name) (Term, error) {
	switch t := t.(type) {
	case named.Var:
		at := lo.LastIndexOf(ctx, t.Ref)
		if at < 0 {
			return nil, &term.UnboundVariableError{Name: t.Ref}
		}
		return Var{Ref: term.Index(len(ctx) - 1 - at)}, nil
	case named.Lit:
		return Lit{Value: t.Value}, nil
	case named.Lam:
		dom, err := fromNamedType(t.Domain, ctx)
		if err != nil {
			return nil, err
		}
		body, err := FromNamed(t.Body, append(slices.Clone(ctx), t.Bind))
		if err != nil {
			return nil, err
		}
		return Lam{Domain: dom, Body: body}, nil
	case named.Pi:
		dom, err := fromNamedType(t.Domain, ctx)
		if err != nil {
			return nil, err
		}
		cod, err := FromNamed(t.Codomain, append(slices.Clone(ctx), t.Bind))
		if err != nil {
			return nil, err
		}
		return Pi{Domain: dom, Codomain: cod}, nil
	case named.App:
		fn, arg, err := fromNamedPair(t.Fn, t.Arg, ctx)
		if err != nil {
			return nil, err
		}
		return App{Fn: fn, Arg: arg}, nil
	case named.Add:
		left, right, err := fromNamedPair(t.Left, t.Right, ctx)
		if err != nil {
			return nil, err
		}
		return Add{Left: left, Right: right}, nil
	case named.Mul:
		left, right, err := fromNamedPair(t.Left, t.Right, ctx)
		if err != nil {
			return nil, err
		}
		return Mul{Left: left, Right: right}, nil
	case named.Nat:
		return Nat{}, nil
	case named.Zero:
		return Zero{}, nil
	case named.Succ:
		pred, err := FromNamed(t.Pred, ctx)
		if err != nil {
			return nil, err
		}
		return Succ{Pred: pred}, nil
	case named.ElimNat:
		parts := make([]Term, 0, 4)
		for _, child := range []named.Term{t.Motive, t.Base, t.Inductive, t.Target} {
			converted, err := FromNamed(child, ctx)
			if err != nil {
				return nil, err
			}
			parts = append(parts, converted)
		}
		return ElimNat{Motive: parts[0], Base: parts[1], Inductive: parts[2], Target: parts[3]}, nil
	}
	panic(fmt.Sprintf("unknown term node %T", t))
}

func fromNamedType(ty named.Type, ctx []term.Name) (Type, error) {
	if pi, ok := ty.(named.Pi); ok {
		converted, err := FromNamed(pi, ctx)
		if err != nil {
			return nil, err
		}
		return converted.(Pi), nil
	}
	return Nat{}, nil
}

func fromNamedPair(a, b named.Term, ctx []term.Name) (Term, Term, error) {
	ca, err := FromNamed(a, ctx)
	if err != nil {
		return nil, nil, err
	}
	cb, err := FromNamed(b, ctx)
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

// ToNamed converts an indexed term back to named form, inventing one binder
// name per depth. ctx lists the names for any free indices, innermost last.
// The result of a round trip through FromNamed is alpha-equivalent to the
// input, not identical to it: the invented names are positional.
func ToNamed(t Term, ctx []term.Name) (named.Term, error) {
	switch t := t.(type) {
	case Var:
		k := int(t.Ref)
		if k >= len(ctx) {
			return nil, &term.UnboundIndexError{Index: t.Ref, Depth: len(ctx)}
		}
		return named.Var{Ref: ctx[len(ctx)-1-k]}, nil
	case Lit:
		return named.Lit{Value: t.Value}, nil
	case Lam:
		dom, err := toNamedType(t.Domain, ctx)
		if err != nil {
			return nil, err
		}
		bind := depthName(len(ctx))
		body, err := ToNamed(t.Body, append(slices.Clone(ctx), bind))
		if err != nil {
			return nil, err
		}
		return named.Lam{Bind: bind, Domain: dom, Body: body}, nil
	case Pi:
		dom, err := toNamedType(t.Domain, ctx)
		if err != nil {
			return nil, err
		}
		bind := depthName(len(ctx))
		cod, err := ToNamed(t.Codomain, append(slices.Clone(ctx), bind))
		if err != nil {
			return nil, err
		}
		return named.Pi{Bind: bind, Domain: dom, Codomain: cod}, nil
	case App:
		fn, err := ToNamed(t.Fn, ctx)
		if err != nil {
			return nil, err
		}
		arg, err := ToNamed(t.Arg, ctx)
		if err != nil {
			return nil, err
		}
		return named.App{Fn: fn, Arg: arg}, nil
	case Add:
		left, right, err := toNamedPair(t.Left, t.Right, ctx)
		if err != nil {
			return nil, err
		}
		return named.Add{Left: left, Right: right}, nil
	case Mul:
		left, right, err := toNamedPair(t.Left, t.Right, ctx)
		if err != nil {
			return nil, err
		}
		return named.Mul{Left: left, Right: right}, nil
	case Nat:
		return named.Nat{}, nil
	case Zero:
		return named.Zero{}, nil
	case Succ:
		pred, err := ToNamed(t.Pred, ctx)
		if err != nil {
			return nil, err
		}
		return named.Succ{Pred: pred}, nil
	case ElimNat:
		parts := make([]named.Term, 0, 4)
		for _, child := range []Term{t.Motive, t.Base, t.Inductive, t.Target} {
			converted, err := ToNamed(child, ctx)
			if err != nil {
				return nil, err
			}
			parts = append(parts, converted)
		}
		return named.ElimNat{Motive: parts[0], Base: parts[1], Inductive: parts[2], Target: parts[3]}, nil
	}
	panic(fmt.Sprintf("unknown term node %T", t))
}

func toNamedType(ty Type, ctx []term.Name) (named.Type, error) {
	if pi, ok := ty.(Pi); ok {
		converted, err := ToNamed(pi, ctx)
		if err != nil {
			return nil, err
		}
		return converted.(named.Pi), nil
	}
	return named.Nat{}, nil
}

func toNamedPair(a, b Term, ctx []term.Name) (named.Term, named.Term, error) {
	ca, err := ToNamed(a, ctx)
	if err != nil {
		return nil, nil, err
	}
	cb, err := ToNamed(b, ctx)
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

func depthName(depth int) term.Name {
	return term.Name("x" + strconv.Itoa(depth))
}
