// handlers_memory.go - PEEK, POKE, MEMCPY
//
// Code memory is the same contiguous, mutable CODE_SIZE buffer the
// decoder reads instructions from (see decode.go), so self-modifying
// sequences work.
package svm

// wrapAddr reduces a raw address to [0, CODE_SIZE) the same way the
// decoder wraps IP.
func wrapAddr(addr int32) uint16 {
	a := int(addr) % CODE_SIZE
	if a < 0 {
		a += CODE_SIZE
	}
	return uint16(a)
}

func opPeek(vm *VM) {
	d := vm.nextByte()
	a := vm.nextByte()
	addrReg := vm.register(a)
	if addrReg == nil {
		return
	}
	if addrReg.Kind != KindInteger {
		vm.fault(FaultTypeMismatch, "PEEK address register %d: not an Integer", a)
		return
	}
	addr := wrapAddr(addrReg.I)
	dst := vm.register(d)
	if dst == nil {
		return
	}
	setRegister(dst, IntValue(int32(vm.Code[addr])))
	vm.advanceIP()
}

func opPoke(vm *VM) {
	v := vm.nextByte()
	a := vm.nextByte()
	valReg := vm.register(v)
	if valReg == nil {
		return
	}
	if valReg.Kind != KindInteger {
		vm.fault(FaultTypeMismatch, "POKE value register %d: not an Integer", v)
		return
	}
	addrReg := vm.register(a)
	if addrReg == nil {
		return
	}
	if addrReg.Kind != KindInteger {
		vm.fault(FaultTypeMismatch, "POKE address register %d: not an Integer", a)
		return
	}
	addr := wrapAddr(addrReg.I)
	vm.Code[addr] = byte(valReg.I & 0xFF)
	vm.advanceIP()
}

func opMemcpy(vm *VM) {
	d := vm.nextByte()
	s := vm.nextByte()
	sz := vm.nextByte()
	dstReg := vm.register(d)
	if dstReg == nil {
		return
	}
	srcReg := vm.register(s)
	if srcReg == nil {
		return
	}
	sizeReg := vm.register(sz)
	if sizeReg == nil {
		return
	}
	if dstReg.Kind != KindInteger || srcReg.Kind != KindInteger || sizeReg.Kind != KindInteger {
		vm.fault(FaultTypeMismatch, "MEMCPY requires Integer dst/src/size registers")
		return
	}

	dstAddr := wrapAddr(dstReg.I)
	srcAddr := wrapAddr(srcReg.I)
	size := sizeReg.I
	for i := int32(0); i < size; i++ {
		from := (int(srcAddr) + int(i)) % CODE_SIZE
		to := (int(dstAddr) + int(i)) % CODE_SIZE
		vm.Code[to] = vm.Code[from]
	}
	vm.advanceIP()
}
