// Command depindex runs the worked De Bruijn example: the hand-transcribed
// indexed addition combinator applied both ways around, with the reduction
// steps traced to stdout. Because of the incomplete shift/substitution
// interaction this example is expected to report that commutativity does
// NOT hold; see the debruijn package comment.
package main

import (
	"fmt"
	"os"

	"github.com/sukikrishna/dependent-type/internal/config"
	"github.com/sukikrishna/dependent-type/internal/debruijn"
	"github.com/sukikrishna/dependent-type/internal/laws"
	"github.com/sukikrishna/dependent-type/internal/term"
)

func main() {
	cfg, err := config.Load(config.ConfigFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	a, b := cfg.Commutativity.A, cfg.Commutativity.B

	eval := debruijn.New()
	eval.Out = os.Stdout
	eval.MaxSteps = cfg.StepLimit

	fmt.Printf("Proving %d + %d = %d + %d:\n", a, b, b, a)

	add := laws.WorkedIndexedAdd()
	lhs, lhsErr := eval.Evaluate(laws.ApplyIndexedNat(add, a, b))
	rhs, rhsErr := eval.Evaluate(laws.ApplyIndexedNat(add, b, a))

	printResult(fmt.Sprintf("Result 1 (%d + %d)", a, b), lhs, lhsErr)
	printResult(fmt.Sprintf("Result 2 (%d + %d)", b, a), rhs, rhsErr)

	if lhsErr != nil || rhsErr != nil {
		fmt.Println("Commutativity not verified")
		return
	}
	fmt.Printf("Commutativity holds: %v\n", term.Equal(lhs, rhs))
}

func printResult(label string, t debruijn.Term, err error) {
	if err != nil {
		fmt.Printf("%s: not verified (%v)\n", label, err)
		return
	}
	if n, convErr := debruijn.ToInt(t); convErr == nil {
		fmt.Printf("%s: %d\n", label, n)
		return
	}
	fmt.Printf("%s: %s\n", label, t)
}
