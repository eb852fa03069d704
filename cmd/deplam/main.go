// Command deplam runs the named-model law examples: the literal-arithmetic
// laws, the numeral-encoded arithmetic demos and the numeral-encoded laws,
// reporting pass/fail per law on stdout.
package main

import (
	"fmt"
	"os"

	"github.com/sukikrishna/dependent-type/internal/config"
	"github.com/sukikrishna/dependent-type/internal/laws"
)

func main() {
	cfg, err := config.Load(config.ConfigFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Numeral arithmetic:")
	for _, line := range laws.Arithmetic(cfg) {
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Laws:")
	laws.Print(os.Stdout, laws.CheckAll(cfg), laws.StdoutIsTerminal())
}
