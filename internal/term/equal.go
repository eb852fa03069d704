package term

// Equal reports structural equality of two terms. Occurrences and binders
// are compared literally: in the named model two normal forms that differ
// only in the spelling of a renamed bound variable compare unequal, which
// is exactly the documented weakness the indexed model exists to repair.
// In the indexed model binders are anonymous, so structural equality
// coincides with alpha-equivalence.
func Equal[R Occ, B Binder](a, b Term[R, B]) bool {
	switch a := a.(type) {
	case Var[R, B]:
		bv, ok := b.(Var[R, B])
		return ok && a.Ref == bv.Ref
	case Lit[R, B]:
		bl, ok := b.(Lit[R, B])
		return ok && a.Value == bl.Value
	case Lam[R, B]:
		bl, ok := b.(Lam[R, B])
		return ok && a.Bind == bl.Bind && TypeEqual(a.Domain, bl.Domain) && Equal(a.Body, bl.Body)
	case App[R, B]:
		ba, ok := b.(App[R, B])
		return ok && Equal(a.Fn, ba.Fn) && Equal(a.Arg, ba.Arg)
	case Add[R, B]:
		ba, ok := b.(Add[R, B])
		return ok && Equal(a.Left, ba.Left) && Equal(a.Right, ba.Right)
	case Mul[R, B]:
		bm, ok := b.(Mul[R, B])
		return ok && Equal(a.Left, bm.Left) && Equal(a.Right, bm.Right)
	case Pi[R, B]:
		bp, ok := b.(Pi[R, B])
		return ok && a.Bind == bp.Bind && TypeEqual(a.Domain, bp.Domain) && Equal(a.Codomain, bp.Codomain)
	case Nat[R, B]:
		_, ok := b.(Nat[R, B])
		return ok
	case Zero[R, B]:
		_, ok := b.(Zero[R, B])
		return ok
	case Succ[R, B]:
		bs, ok := b.(Succ[R, B])
		return ok && Equal(a.Pred, bs.Pred)
	case ElimNat[R, B]:
		be, ok := b.(ElimNat[R, B])
		return ok && Equal(a.Motive, be.Motive) && Equal(a.Base, be.Base) &&
			Equal(a.Inductive, be.Inductive) && Equal(a.Target, be.Target)
	}
	return false
}

// TypeEqual reports structural equality of two types.
func TypeEqual[R Occ, B Binder](a, b Type[R, B]) bool {
	switch a := a.(type) {
	case Nat[R, B]:
		_, ok := b.(Nat[R, B])
		return ok
	case Pi[R, B]:
		bp, ok := b.(Pi[R, B])
		return ok && Equal[R, B](a, bp)
	}
	return false
}
