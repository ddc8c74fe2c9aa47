package vm

import (
	"errors"
	"fmt"
)

type State int

const (
	StateReady State = iota
	StateRunning
	StateHalted
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateFaulted:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further execution is possible.
func (s State) Terminal() bool {
	return s == StateHalted || s == StateFaulted
}

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackEmpty     = errors.New("stack empty")
	ErrNotReady       = errors.New("vm already ran")
)

// ExecError is returned when an instruction faults. It unwraps to
// ErrStackUnderflow or ErrDivisionByZero.
type ExecError struct {
	IP          int
	Instruction Instruction
	Err         error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("ip %d (%s): %s", e.IP, e.Instruction, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
