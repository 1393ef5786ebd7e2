// dispatch.go - 256-entry opcode dispatch table
//
// The VM fills a full 256-entry handler table at construction rather
// than switching on the opcode byte inline. Every unmapped entry is the
// silent advancement handler, so the code segment stays safe to walk
// even across inline string payloads.
package svm

type opcodeFunc func(*VM)

// opUnknown advances past an unrecognised opcode byte without faulting.
func opUnknown(vm *VM) {
	vm.advanceIP()
}

func (vm *VM) initOpcodeTable() {
	for i := range vm.opcodes {
		vm.opcodes[i] = opUnknown
	}

	vm.opcodes[EXIT] = opExit
	vm.opcodes[NOP] = opNop

	vm.opcodes[INT_STORE] = opIntStore
	vm.opcodes[INT_PRINT] = opIntPrint
	vm.opcodes[INT_TOSTRING] = opIntToString
	vm.opcodes[INT_RANDOM] = opIntRandom

	vm.opcodes[FLOAT_STORE] = opFloatStore
	vm.opcodes[FLOAT_PRINT] = opFloatPrint
	vm.opcodes[FLOAT_TOSTRING] = opFloatToString

	vm.opcodes[STRING_STORE] = opStringStore
	vm.opcodes[STRING_PRINT] = opStringPrint
	vm.opcodes[STRING_CONCAT] = opStringConcat
	vm.opcodes[STRING_SYSTEM] = opStringSystem
	vm.opcodes[STRING_TOINT] = opStringToInt

	vm.opcodes[STORE_REG] = opStoreReg

	vm.opcodes[ADD] = opAdd
	vm.opcodes[SUB] = opSub
	vm.opcodes[MUL] = opMul
	vm.opcodes[DIV] = opDiv
	vm.opcodes[AND] = opAnd
	vm.opcodes[OR] = opOr
	vm.opcodes[XOR] = opXor
	vm.opcodes[INC] = opInc
	vm.opcodes[DEC] = opDec

	vm.opcodes[CMP_REG] = opCmpReg
	vm.opcodes[CMP_IMMEDIATE] = opCmpImmediate
	vm.opcodes[CMP_STRING] = opCmpString
	vm.opcodes[IS_STRING] = opIsString
	vm.opcodes[IS_INTEGER] = opIsInteger

	vm.opcodes[JUMP_TO] = opJumpTo
	vm.opcodes[JUMP_Z] = opJumpZ
	vm.opcodes[JUMP_NZ] = opJumpNZ

	vm.opcodes[PEEK] = opPeek
	vm.opcodes[POKE] = opPoke
	vm.opcodes[MEMCPY] = opMemcpy

	vm.opcodes[STACK_PUSH] = opStackPush
	vm.opcodes[STACK_POP] = opStackPop
	vm.opcodes[STACK_CALL] = opStackCall
	vm.opcodes[STACK_RET] = opStackRet

	vm.opcodes[BINARY_LOAD] = opBinaryLoad
	vm.opcodes[BINARY_SAVE] = opBinarySave
	vm.opcodes[ANALOG_LOAD] = opAnalogLoad
	vm.opcodes[ANALOG_SAVE] = opAnalogSave
	vm.opcodes[VARIABLE_LOAD] = opVariableLoad
	vm.opcodes[VARIABLE_SAVE] = opVariableSave
}
