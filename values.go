// values.go - numeric reinterpretation helpers shared by the arithmetic,
// compare, and memory handlers.
//
// A register behaves like a union of int32/float32: reading "the
// integer payload" of a Float-tagged value reinterprets its bit pattern
// rather than truncating its value. These helpers make that
// reinterpretation explicit where the bitwise ops and Float-vs-Float
// compares need it.
package svm

import "math"

// intBits returns v's "raw integer payload": the Integer tag's value
// unchanged, or a Float tag's bit pattern reinterpreted as int32. It
// faults TypeMismatch and returns (0, false) for a Str-tagged operand.
func (vm *VM) intBits(v Value) (int32, bool) {
	switch v.Kind {
	case KindInteger:
		return v.I, true
	case KindFloat:
		return int32(math.Float32bits(v.F)), true
	default:
		vm.fault(FaultTypeMismatch, "expected Integer or Float, got Str")
		return 0, false
	}
}

// asFloat32 widens v to a float32 for mixed arithmetic: a Float keeps its
// value, an Integer is promoted by numeric conversion (not reinterpreted -
// only the bitwise ops reinterpret). Faults TypeMismatch on Str.
func (vm *VM) asFloat32(v Value) (float32, bool) {
	switch v.Kind {
	case KindInteger:
		return float32(v.I), true
	case KindFloat:
		return v.F, true
	default:
		vm.fault(FaultTypeMismatch, "expected Integer or Float, got Str")
		return 0, false
	}
}

// wrapInt16 masks an arithmetic result to the Integer tag's effective
// domain, [0, 0xFFFF]: every Integer value in this VM ultimately
// originates from an imm16 (INT_STORE, STRING_TOINT, INT_RANDOM) or
// from arithmetic on such values, so results wrap the same way address
// arithmetic wraps modulo CODE_SIZE. Adding 2 to 0xFFFE lands on
// Integer(0) and sets Z rather than overflowing into a 32-bit lane.
func wrapInt16(i int32) int32 {
	return i & 0xFFFF
}

// zOfResult computes the Z-flag update an arithmetic opcode makes:
// "result-as-integer == 0", where a Float result's "integer" is its
// reinterpreted bit pattern, consistent with intBits.
func zOfResult(v Value) bool {
	switch v.Kind {
	case KindInteger:
		return v.I == 0
	case KindFloat:
		return math.Float32bits(v.F) == 0
	default:
		return false
	}
}
