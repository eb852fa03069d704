package config

// ConfigFileName is the optional per-run configuration file the drivers
// look for in the working directory.
const ConfigFileName = "laws.yaml"

// MaxReductionSteps caps the indexed-model reduction loop. The incomplete
// shifting logic can send a term into a cycle, so the loop is budgeted
// instead of trusted to terminate.
const MaxReductionSteps = 100

// Default operands for the literal-arithmetic laws.
const (
	DefaultCommA = 2
	DefaultCommB = 3

	DefaultAssocA = 2
	DefaultAssocB = 3
	DefaultAssocC = 4
)

// Default operands for the numeral-encoded arithmetic demos.
const (
	DefaultNatA = 3
	DefaultNatB = 4
	DefaultNatC = 2
)
