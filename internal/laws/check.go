package laws

import (
	"fmt"

	"github.com/sukikrishna/dependent-type/internal/config"
	"github.com/sukikrishna/dependent-type/internal/named"
)

// Result is the outcome of checking one law: the two sides were evaluated
// and their normal forms compared. A non-nil Err means the law could not be
// verified at all (stuck term, unbound variable, exhausted budget), which
// the report distinguishes from a clean "does not hold".
type Result struct {
	Name   string
	Detail string
	Holds  bool
	Err    error
}

func check(name, detail string, lhs, rhs named.Term) Result {
	holds, err := named.Equivalent(lhs, rhs)
	return Result{Name: name, Detail: detail, Holds: holds, Err: err}
}

// CheckAll runs every named-model law for the configured operands: the two
// literal-arithmetic laws, then the same laws restated through the
// numeral-encoded combinators.
func CheckAll(cfg config.Config) []Result {
	results := make([]Result, 0, 4)

	lhs, rhs := Commutativity(cfg.Commutativity.A, cfg.Commutativity.B)
	results = append(results, check(
		"commutativity of addition",
		fmt.Sprintf("%d + %d = %d + %d", cfg.Commutativity.A, cfg.Commutativity.B, cfg.Commutativity.B, cfg.Commutativity.A),
		lhs, rhs))

	lhs, rhs = Associativity(cfg.Associativity.A, cfg.Associativity.B, cfg.Associativity.C)
	results = append(results, check(
		"associativity of multiplication",
		fmt.Sprintf("(%d * %d) * %d = %d * (%d * %d)",
			cfg.Associativity.A, cfg.Associativity.B, cfg.Associativity.C,
			cfg.Associativity.A, cfg.Associativity.B, cfg.Associativity.C),
		lhs, rhs))

	a, b := cfg.Naturals.A, cfg.Naturals.B
	add := AddCombinator()
	results = append(results, check(
		"commutativity of numeral addition",
		fmt.Sprintf("%d + %d = %d + %d", a, b, b, a),
		ApplyNat(add, a, b), ApplyNat(add, b, a)))

	mul := MulCombinator()
	c := cfg.Naturals.C
	assocL := named.App{Fn: named.App{Fn: mul, Arg: ApplyNat(mul, a, b)}, Arg: named.FromInt(c)}
	assocR := named.App{Fn: named.App{Fn: mul, Arg: named.FromInt(a)}, Arg: ApplyNat(mul, b, c)}
	results = append(results, check(
		"associativity of numeral multiplication",
		fmt.Sprintf("(%d * %d) * %d = %d * (%d * %d)", a, b, c, a, b, c),
		assocL, assocR))

	return results
}

// Arithmetic evaluates the numeral-encoded demos (addition, multiplication,
// factorial) and returns printable "a op b = r" lines. An evaluation error
// surfaces in place of the value.
func Arithmetic(cfg config.Config) []string {
	a, b := cfg.Naturals.A, cfg.Naturals.B
	lines := make([]string, 0, 3)
	lines = append(lines, demoLine(fmt.Sprintf("%d + %d", a, b), ApplyNat(AddCombinator(), a, b)))
	lines = append(lines, demoLine(fmt.Sprintf("%d * %d", a, b), ApplyNat(MulCombinator(), a, b)))
	lines = append(lines, demoLine(fmt.Sprintf("%d!", a),
		named.App{Fn: FactorialCombinator(), Arg: named.FromInt(a)}))
	return lines
}

func demoLine(expr string, t named.Term) string {
	nf, err := named.Evaluate(t)
	if err != nil {
		return fmt.Sprintf("%s = error: %v", expr, err)
	}
	n, err := named.ToInt(nf)
	if err != nil {
		return fmt.Sprintf("%s = %s", expr, nf)
	}
	return fmt.Sprintf("%s = %d", expr, n)
}
