package term

import "fmt"

// UnboundVariableError indicates a named variable with no enclosing binder
// in the conversion context.
type UnboundVariableError struct {
	Name Name
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

// UnboundIndexError indicates a De Bruijn index pointing past the available
// binder depth during conversion back to names.
type UnboundIndexError struct {
	Index Index
	Depth int
}

func (e *UnboundIndexError) Error() string {
	return fmt.Sprintf("unbound index %s at binder depth %d", e.Index, e.Depth)
}

// StuckTermError indicates a closed term that normalized to a non-value:
// no reduction rule applies and the result is not a literal, numeral,
// abstraction or type.
type StuckTermError struct {
	Term string
}

func (e *StuckTermError) Error() string {
	return fmt.Sprintf("stuck term: %s", e.Term)
}

// StepLimitError indicates the reduction loop gave up after the configured
// number of steps.
type StepLimitError struct {
	Limit int
	Term  string
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("evaluation exceeded %d steps on %s", e.Limit, e.Term)
}

// NotANumeralError indicates an attempt to decode a term that is not a
// Zero/Succ numeral.
type NotANumeralError struct {
	Term string
}

func (e *NotANumeralError) Error() string {
	return fmt.Sprintf("expression is not a natural number: %s", e.Term)
}
