// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to execute
}

// Flags contains behavior options.
type Flags struct {
	Cycles   int // number of cycles to execute, 0 runs until interrupted
	TickRate int // timer decrements per second

	Debug bool // enable debug logging and the per-cycle trace
	Quiet bool // only log errors
}

// Program options of the virtual machine.
type Program struct {
	Parameters
	Flags
}

// DefaultTickRate is the number of timer decrements per second used
// when no tick rate is configured.
const DefaultTickRate = 60

// Runtime defines options to control the virtual machine core.
type Runtime struct {
	TickRate int // timer decrements per second
}

// NewRuntime returns a new runtime options instance with default options.
func NewRuntime() Runtime {
	return Runtime{
		TickRate: DefaultTickRate,
	}
}
