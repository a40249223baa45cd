// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// Operator is a binary Boolean operator, given by its truth table. Bit 2a+b
// of an Operator is the value of the operator for the operands a and b, so
// there are exactly 16 operators.
type Operator uint8

// Operators that can be used in Apply. Any other value in [0..15] is valid,
// for instance the operators obtained with OperatorOf.
const (
	//                         11 10 01 00
	OPand    Operator = 0x8 // 1  0  0  0   Boolean conjunction
	OPxor    Operator = 0x6 // 0  1  1  0   Exclusive or
	OPor     Operator = 0xE // 1  1  1  0   Disjunction
	OPnand   Operator = 0x7 // 0  1  1  1   Negation of and
	OPnor    Operator = 0x1 // 0  0  0  1   Negation of or
	OPimp    Operator = 0xB // 1  0  1  1   Implication
	OPbiimp  Operator = 0x9 // 1  0  0  1   Equivalence
	OPdiff   Operator = 0x4 // 0  1  0  0   Difference (a and not b)
	OPless   Operator = 0x2 // 0  0  1  0   Less than (not a and b)
	OPinvimp Operator = 0xD // 1  1  0  1   Reverse implication
)

var opnames = map[Operator]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
}

func (op Operator) String() string {
	if s, ok := opnames[op]; ok {
		return s
	}
	return fmt.Sprintf("op%04b", uint8(op)&0xF)
}

// OperatorOf returns the Operator with the same truth table than f.
func OperatorOf(f func(a, b bool) bool) Operator {
	var op Operator
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			if f(a, b) {
				op |= 1 << opindex(a, b)
			}
		}
	}
	return op
}

// Eval returns the value of op for the operands a and b.
func (op Operator) Eval(a, b bool) bool {
	return op&(1<<opindex(a, b)) != 0
}

func opindex(a, b bool) uint {
	var res uint
	if a {
		res = 2
	}
	if b {
		res++
	}
	return res
}

// res returns the result of op on two constant nodes.
func (op Operator) res(left, right int) int {
	if op.Eval(left == 1, right == 1) {
		return 1
	}
	return 0
}

// shortcut returns the result of op when it does not depend on the structure
// of the operands, for instance when one of them is a constant that absorbs
// the other, or when both operands are equal. It returns -1 otherwise.
func (op Operator) shortcut(left, right int) int {
	if left == right {
		switch op & 0x9 { // values for (0,0) and (1,1)
		case 0x0:
			return 0
		case 0x9:
			return 1
		case 0x8:
			return left
		}
		return -1
	}
	if left < 2 {
		return op.partial(left == 1, right, true)
	}
	if right < 2 {
		return op.partial(right == 1, left, false)
	}
	return -1
}

// partial handles the case where one operand is the constant c and the other
// is node n. When first is true the constant is the left operand.
func (op Operator) partial(c bool, n int, first bool) int {
	eval := func(v bool) bool {
		if first {
			return op.Eval(c, v)
		}
		return op.Eval(v, c)
	}
	onfalse, ontrue := eval(false), eval(true)
	switch {
	case !onfalse && !ontrue:
		return 0
	case onfalse && ontrue:
		return 1
	case !onfalse && ontrue:
		return n
	}
	return -1
}
