// handlers_float.go - FLOAT_STORE, FLOAT_PRINT, FLOAT_TOSTRING
package svm

import (
	"fmt"
	"strconv"
)

func opFloatStore(vm *VM) {
	r := vm.nextByte()
	f := vm.readFloat16_16()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	setRegister(reg, FloatValue(f))
	vm.advanceIP()
}

func opFloatPrint(vm *VM) {
	r := vm.nextByte()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	if reg.Kind != KindFloat {
		vm.fault(FaultTypeMismatch, "FLOAT_PRINT on register %d: not a Float", r)
		return
	}
	fmt.Fprintf(vm.output, "%f", reg.F)
	vm.advanceIP()
}

func opFloatToString(vm *VM) {
	r := vm.nextByte()
	reg := vm.register(r)
	if reg == nil {
		return
	}
	if reg.Kind != KindFloat {
		vm.fault(FaultTypeMismatch, "FLOAT_TOSTRING on register %d: not a Float", r)
		return
	}
	setRegister(reg, StringValue(strconv.FormatFloat(float64(reg.F), 'f', -1, 32)))
	vm.advanceIP()
}
