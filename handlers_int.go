// handlers_int.go - INT_STORE, INT_PRINT, INT_TOSTRING, INT_RANDOM
package svm

import (
	"fmt"
	"math/rand"
	"strconv"
)

func opIntStore(vm *VM) {
	r := vm.nextByte()
	imm := vm.readImm16()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	setRegister(reg, IntValue(int32(imm)))
	vm.advanceIP()
}

func opIntPrint(vm *VM) {
	r := vm.nextByte()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	if reg.Kind != KindInteger {
		vm.fault(FaultTypeMismatch, "INT_PRINT on register %d: not an Integer", r)
		return
	}
	fmt.Fprintf(vm.output, "%d", reg.I)
	vm.advanceIP()
}

func opIntToString(vm *VM) {
	r := vm.nextByte()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	if reg.Kind != KindInteger {
		vm.fault(FaultTypeMismatch, "INT_TOSTRING on register %d: not an Integer", r)
		return
	}
	setRegister(reg, StringValue(strconv.Itoa(int(reg.I))))
	vm.advanceIP()
}

func opIntRandom(vm *VM) {
	r := vm.nextByte()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	setRegister(reg, IntValue(int32(rand.Intn(0xFFFF))))
	vm.advanceIP()
}
