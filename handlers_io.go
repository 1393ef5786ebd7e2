// handlers_io.go - BINARY_LOAD/SAVE, ANALOG_LOAD/SAVE, VARIABLE_LOAD/SAVE
//
// Channel arrays live on the host-owned *Channels (channels.go). Every
// access takes a small non-negative index and is bounds-checked against
// the array it targets.
package svm

func opBinaryLoad(vm *VM) {
	r := vm.nextByte()
	ch := vm.nextByte()
	if int(ch) >= len(vm.Channels.BinaryIn) {
		vm.fault(FaultBounds, "BINARY_LOAD channel %d out of bounds", ch)
		return
	}
	reg := vm.register(r)
	if reg == nil {
		return
	}
	setRegister(reg, IntValue(int32(vm.Channels.BinaryIn[ch])))
	vm.advanceIP()
}

// opBinarySave writes only when reg is Integer; a non-Integer register
// is silently skipped rather than faulted.
func opBinarySave(vm *VM) {
	r := vm.nextByte()
	ch := vm.nextByte()
	if int(ch) >= len(vm.Channels.BinaryOut) {
		vm.fault(FaultBounds, "BINARY_SAVE channel %d out of bounds", ch)
		return
	}
	reg := vm.register(r)
	if reg == nil {
		return
	}
	if reg.Kind == KindInteger {
		vm.Channels.BinaryOut[ch] = byte(reg.I & 0xFF)
	}
	vm.advanceIP()
}

func opAnalogLoad(vm *VM) {
	r := vm.nextByte()
	ch := vm.nextByte()
	if int(ch) >= len(vm.Channels.AnalogIn) {
		vm.fault(FaultBounds, "ANALOG_LOAD channel %d out of bounds", ch)
		return
	}
	reg := vm.register(r)
	if reg == nil {
		return
	}
	setRegister(reg, FloatValue(vm.Channels.AnalogIn[ch]))
	vm.advanceIP()
}

// opAnalogSave writes a Float register's value, or an Integer register
// numerically converted; any other tag is silently skipped, like
// opBinarySave.
func opAnalogSave(vm *VM) {
	r := vm.nextByte()
	ch := vm.nextByte()
	if int(ch) >= len(vm.Channels.AnalogOut) {
		vm.fault(FaultBounds, "ANALOG_SAVE channel %d out of bounds", ch)
		return
	}
	reg := vm.register(r)
	if reg == nil {
		return
	}
	switch reg.Kind {
	case KindFloat:
		vm.Channels.AnalogOut[ch] = reg.F
	case KindInteger:
		vm.Channels.AnalogOut[ch] = float32(reg.I)
	}
	vm.advanceIP()
}

func opVariableLoad(vm *VM) {
	r := vm.nextByte()
	ch := vm.nextByte()
	if int(ch) >= len(vm.Channels.Variable) {
		vm.fault(FaultBounds, "VARIABLE_LOAD channel %d out of bounds", ch)
		return
	}
	reg := vm.register(r)
	if reg == nil {
		return
	}
	setRegister(reg, vm.Channels.Variable[ch])
	vm.advanceIP()
}

func opVariableSave(vm *VM) {
	r := vm.nextByte()
	ch := vm.nextByte()
	if int(ch) >= len(vm.Channels.Variable) {
		vm.fault(FaultBounds, "VARIABLE_SAVE channel %d out of bounds", ch)
		return
	}
	reg := vm.register(r)
	if reg == nil {
		return
	}
	vm.Channels.Variable[ch] = *reg
	vm.advanceIP()
}
