package vm

import "fmt"

type OpCode byte

const (
	OpPush OpCode = iota + 1
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPrint
	OpPop
	OpHalt
)

var opNames = map[OpCode]string{
	OpPush:  "PUSH",
	OpAdd:   "ADD",
	OpSub:   "SUB",
	OpMul:   "MUL",
	OpDiv:   "DIV",
	OpPrint: "PRINT",
	OpPop:   "POP",
	OpHalt:  "HALT",
}

func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OpCode(%d)", byte(op))
}

// Instruction is one step of a Program. The set of variants is closed;
// only types in this package implement it.
type Instruction interface {
	OpCode() OpCode
	String() string
	instruction()
}

// Program is the ordered instruction sequence a VM executes.
type Program []Instruction

type Push struct {
	Value int32
}

type Add struct{}
type Sub struct{}
type Mul struct{}
type Div struct{}
type Print struct{}
type Pop struct{}
type Halt struct{}

func (Push) OpCode() OpCode  { return OpPush }
func (Add) OpCode() OpCode   { return OpAdd }
func (Sub) OpCode() OpCode   { return OpSub }
func (Mul) OpCode() OpCode   { return OpMul }
func (Div) OpCode() OpCode   { return OpDiv }
func (Print) OpCode() OpCode { return OpPrint }
func (Pop) OpCode() OpCode   { return OpPop }
func (Halt) OpCode() OpCode  { return OpHalt }

func (p Push) String() string { return fmt.Sprintf("%s %d", OpPush, p.Value) }
func (Add) String() string    { return OpAdd.String() }
func (Sub) String() string    { return OpSub.String() }
func (Mul) String() string    { return OpMul.String() }
func (Div) String() string    { return OpDiv.String() }
func (Print) String() string  { return OpPrint.String() }
func (Pop) String() string    { return OpPop.String() }
func (Halt) String() string   { return OpHalt.String() }

func (Push) instruction()  {}
func (Add) instruction()   {}
func (Sub) instruction()   {}
func (Mul) instruction()   {}
func (Div) instruction()   {}
func (Print) instruction() {}
func (Pop) instruction()   {}
func (Halt) instruction()  {}

// example
// (5 + 10) * 2 = 30
// push 5, push 10
// add -> 15
// push 2
// mul -> 30
func SampleProgram() Program {
	return Program{
		Push{Value: 5},
		Push{Value: 10},
		Add{},
		Push{Value: 2},
		Mul{},
		Print{},
		Halt{},
	}
}
