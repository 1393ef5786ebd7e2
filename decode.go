// decode.go - instruction-pointer-relative decoding helpers
//
// Handlers read their operand bytes directly out of the shared code
// buffer through these helpers. All address arithmetic wraps modulo
// CODE_SIZE, so IP is always a valid index.
package svm

import "math"

// nextByte advances IP by one, wrapping at CODE_SIZE-1, and returns the
// byte now under IP.
func (vm *VM) nextByte() byte {
	vm.IP++
	if int(vm.IP) >= CODE_SIZE {
		vm.IP = 0
	}
	return vm.Code[vm.IP]
}

// advanceIP moves IP to the next instruction after a handler has finished
// consuming its own operands via nextByte. It is the non-branch tail every
// handler in dispatch.go ends with; branches set vm.IP directly instead.
func (vm *VM) advanceIP() {
	vm.IP++
	if int(vm.IP) >= CODE_SIZE {
		vm.IP = 0
	}
}

// readImm16 consumes two little-endian bytes via nextByte and returns
// them as an unsigned 16-bit value (low + 256*high).
func (vm *VM) readImm16() uint16 {
	lo := vm.nextByte()
	hi := vm.nextByte()
	return uint16(lo) + 256*uint16(hi)
}

// readFloat16_16 consumes an imm16 exponent followed by an imm16
// mantissa and reconstructs ldexp(mant/65535, exp). The reconstruction
// is deterministic: a given operand pair always yields the same bits.
func (vm *VM) readFloat16_16() float32 {
	exp := vm.readImm16()
	mant := vm.readImm16()
	return float32(math.Ldexp(float64(mant)/65535, int(exp)))
}

// readInlineString consumes a length-prefixed inline string literal:
// imm16 len, one reserved byte, then len payload bytes, each read through
// nextByte so wrap-around at the end of code memory is handled exactly
// like any other code read. IP ends up on the last payload byte (or on
// the reserved byte, for a zero-length string), so the standard
// advanceIP tail lands on the next instruction. Payload bytes may
// include embedded zeros.
func (vm *VM) readInlineString() string {
	length := vm.readImm16()
	vm.nextByte() // reserved gap byte before the payload

	buf := make([]byte, length)
	for i := uint16(0); i < length; i++ {
		buf[i] = vm.nextByte()
	}
	return string(buf)
}
