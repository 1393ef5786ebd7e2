// handlers_string.go - STRING_STORE, STRING_PRINT, STRING_CONCAT,
// STRING_SYSTEM, STRING_TOINT
//
// STRING_SYSTEM is gated by Options.AllowSystem: when disabled, the
// opcode still consumes its register operand and advances IP, it just
// never execs anything.
package svm

import (
	"fmt"
	"os/exec"
	"strconv"
)

func opStringStore(vm *VM) {
	r := vm.nextByte()
	s := vm.readInlineString()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	setRegister(reg, StringValue(s))
	vm.advanceIP()
}

func opStringPrint(vm *VM) {
	r := vm.nextByte()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	if reg.Kind != KindString {
		vm.fault(FaultTypeMismatch, "STRING_PRINT on register %d: not a Str", r)
		return
	}
	fmt.Fprint(vm.output, reg.S)
	vm.advanceIP()
}

func opStringConcat(vm *VM) {
	d := vm.nextByte()
	a := vm.nextByte()
	b := vm.nextByte()
	regA := vm.register(a)
	if regA == nil {
		return
	}
	regB := vm.register(b)
	if regB == nil {
		return
	}
	if regA.Kind != KindString || regB.Kind != KindString {
		vm.fault(FaultTypeMismatch, "STRING_CONCAT requires two Str registers")
		return
	}
	concatenated := regA.S + regB.S
	dst := vm.register(d)
	if dst == nil {
		return
	}
	setRegister(dst, StringValue(concatenated))
	vm.advanceIP()
}

func opStringSystem(vm *VM) {
	r := vm.nextByte()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	if reg.Kind != KindString {
		vm.fault(FaultTypeMismatch, "STRING_SYSTEM on register %d: not a Str", r)
		return
	}
	if vm.allowSystem {
		cmd := exec.Command("sh", "-c", reg.S)
		_ = cmd.Run() // the exit status is not observable from bytecode
	}
	vm.advanceIP()
}

func opStringToInt(vm *VM) {
	r := vm.nextByte()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	if reg.Kind != KindString {
		vm.fault(FaultTypeMismatch, "STRING_TOINT on register %d: not a Str", r)
		return
	}
	n, err := strconv.Atoi(reg.S)
	if err != nil {
		n = 0
	}
	setRegister(reg, IntValue(wrapInt16(int32(n))))
	vm.advanceIP()
}
