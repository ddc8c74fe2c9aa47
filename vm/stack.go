package vm

import (
	"strconv"
	"strings"
)

// Stack is the operand stack. It grows without a fixed limit.
type Stack struct {
	data []int32
}

func NewStack() *Stack {
	return &Stack{
		data: make([]int32, 0, 16),
	}
}

func (s *Stack) Push(v int32) {
	s.data = append(s.data, v)
}

func (s *Stack) Pop() (int32, error) {
	if s.Empty() {
		return 0, ErrStackEmpty
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

func (s *Stack) Peek() (int32, error) {
	if s.Empty() {
		return 0, ErrStackEmpty
	}
	return s.data[len(s.data)-1], nil
}

func (s *Stack) Empty() bool {
	return len(s.data) == 0
}

func (s *Stack) Len() int {
	return len(s.data)
}

// Values returns a bottom-to-top copy of the stack.
func (s *Stack) Values() []int32 {
	out := make([]int32, len(s.data))
	copy(out, s.data)
	return out
}

// String renders the stack bottom-to-top, e.g. [15, 2].
func (s *Stack) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteByte(']')
	return b.String()
}
