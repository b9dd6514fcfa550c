// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strings"
)

// Op selects one of the supported binary operations.
type Op int

// Supported operations. The numeric values match the menu choices 1/2/3.
const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
)

// Ops lists every supported operation in menu order.
func Ops() []Op { return []Op{OpAdd, OpSub, OpMul} }

// String returns the canonical lower-case name ("add", "subtract", "multiply").
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Title returns the human-readable name used in messages ("Addition", ...).
func (o Op) Title() string {
	switch o {
	case OpAdd:
		return "Addition"
	case OpSub:
		return "Subtraction"
	case OpMul:
		return "Multiplication"
	default:
		return o.String()
	}
}

// ResultFile is the conventional output file name for the operation,
// e.g. "add_result.txt".
func (o Op) ResultFile() string { return o.String() + "_result.txt" }

// ParseOp maps a menu choice or a name to an Op. Accepted (case-insensitive):
//
//	1, add, addition, sum, +
//	2, sub, subtract, subtraction, diff, -
//	3, mul, multiply, multiplication, product, *, x
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "add", "addition", "sum", "+":
		return OpAdd, nil
	case "2", "sub", "subtract", "subtraction", "diff", "-":
		return OpSub, nil
	case "3", "mul", "multiply", "multiplication", "product", "*", "x":
		return OpMul, nil
	}

	return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
}

// Apply dispatches op over (a, b).
func Apply(op Op, a, b *SparseMatrix) (*SparseMatrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	}

	return nil, fmt.Errorf("Apply(%s): %w", op, ErrUnknownOp)
}
