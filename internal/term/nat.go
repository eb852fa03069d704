package term

// FromInt encodes a non-negative integer as a Zero/Succ numeral.
func FromInt[R Occ, B Binder](n int) Term[R, B] {
	var t Term[R, B] = Zero[R, B]{}
	for i := 0; i < n; i++ {
		t = Succ[R, B]{Pred: t}
	}
	return t
}

// ToInt decodes a Zero/Succ numeral. It fails on anything else, including
// a partially reduced term with a non-numeral buried under the successors.
func ToInt[R Occ, B Binder](t Term[R, B]) (int, error) {
	n := 0
	for {
		switch v := t.(type) {
		case Zero[R, B]:
			return n, nil
		case Succ[R, B]:
			n++
			t = v.Pred
		default:
			return 0, &NotANumeralError{Term: t.String()}
		}
	}
}
