package vm

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

type VM struct {
	// fixed at construction, never mutated
	program Program
	// instruction pointer
	ip    int
	state State

	Stack  *Stack
	out    io.Writer
	logger *zap.Logger
}

type VMOpt func(*VM) *VM

func LoggerOpt(l *zap.Logger) VMOpt {
	return func(vm *VM) *VM {
		vm.logger = l
		return vm
	}
}

// OutputOpt sets where Print and StackDump write. Defaults to stdout.
func OutputOpt(w io.Writer) VMOpt {
	return func(vm *VM) *VM {
		vm.out = w
		return vm
	}
}

func NewVM(program Program, opts ...VMOpt) *VM {
	prog := make(Program, len(program))
	copy(prog, program)

	vm := &VM{
		program: prog,
		ip:      0,
		state:   StateReady,
		Stack:   NewStack(),
		out:     os.Stdout,
		logger:  zap.L(),
	}

	for _, opt := range opts {
		vm = opt(vm)
	}

	vm.logger = vm.logger.Named("vm")

	return vm
}

func (vm *VM) IP() int {
	return vm.ip
}

func (vm *VM) State() State {
	return vm.state
}

// Run executes the program until Halt, the end of the program, or the
// first faulting instruction. A VM runs at most once.
func (vm *VM) Run() error {
	if vm.state != StateReady {
		return fmt.Errorf("vm run: %w (state %s)", ErrNotReady, vm.state)
	}
	vm.state = StateRunning

	for vm.ip < len(vm.program) {
		inst := vm.program[vm.ip]

		vm.logger.Debug("instruction pointer",
			zap.Int("ip", vm.ip),
			zap.Stringer("instruction", inst))

		if _, ok := inst.(Halt); ok {
			vm.logger.Debug("halt", zap.Int("ip", vm.ip))
			break
		}

		err := vm.Exec(inst)
		if err != nil {
			vm.state = StateFaulted
			execErr := &ExecError{
				IP:          vm.ip,
				Instruction: inst,
				Err:         err,
			}
			vm.logger.Error("vm faulted",
				zap.Error(execErr),
				zap.Stringer("stack", vm.Stack))
			return fmt.Errorf("vm run: %w", execErr)
		}
		vm.ip++
	}

	vm.state = StateHalted
	vm.logger.Info("vm halted",
		zap.Int("ip", vm.ip),
		zap.Int("depth", vm.Stack.Len()))
	return nil
}

// Exec applies a single instruction to the stack. Halt is a no-op here;
// stopping the loop is Run's job.
func (vm *VM) Exec(inst Instruction) error {
	switch in := inst.(type) {
	case Push:
		vm.logger.Debug("pushing to stack",
			zap.Int32("v", in.Value))
		vm.Stack.Push(in.Value)
		return nil
	case Add:
		return vm.binary(in, func(a, b int32) (int32, error) {
			return a + b, nil
		})
	case Sub:
		return vm.binary(in, func(a, b int32) (int32, error) {
			return a - b, nil
		})
	case Mul:
		return vm.binary(in, func(a, b int32) (int32, error) {
			return a * b, nil
		})
	case Div:
		return vm.binary(in, func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a / b, nil
		})
	case Print:
		vm.print()
		return nil
	case Pop:
		// popping an empty stack is allowed
		_, _ = vm.Stack.Pop()
		return nil
	case Halt:
		return nil
	}
	return fmt.Errorf("unknown instruction %v", inst)
}

// binary pops b then a and pushes fn(a, b). Operands are consumed even
// when fn fails.
func (vm *VM) binary(inst Instruction, fn func(a, b int32) (int32, error)) error {
	if vm.Stack.Len() < 2 {
		return ErrStackUnderflow
	}
	b, err := vm.Stack.Pop()
	if err != nil {
		return err
	}
	a, err := vm.Stack.Pop()
	if err != nil {
		return err
	}

	val, err := fn(a, b)
	if err != nil {
		return err
	}
	vm.logger.Debug(inst.String(),
		zap.Int32("a", a),
		zap.Int32("b", b),
		zap.Int32("result", val),
	)
	vm.Stack.Push(val)
	return nil
}

func (vm *VM) print() {
	var err error
	if top, perr := vm.Stack.Peek(); perr == nil {
		_, err = fmt.Fprintf(vm.out, "Output: %d\n", top)
	} else {
		_, err = fmt.Fprintln(vm.out, "Stack is empty")
	}
	if err != nil {
		vm.logger.Warn("print failed", zap.Error(err))
	}
}

// StackDump writes the whole stack, bottom to top, on one line.
func (vm *VM) StackDump() {
	_, err := fmt.Fprintf(vm.out, "Stack: %s\n", vm.Stack)
	if err != nil {
		vm.logger.Warn("stack dump failed", zap.Error(err))
	}
}
