// opcodes.go - opcode mnemonic constants
//
// One byte per opcode, grouped by concern. The byte assignments live in
// internal/isa so the test-fixture assembler can encode against them
// without importing this package; they are re-exported here as the
// module's public vocabulary.
package svm

import "github.com/tinylogic/svm/internal/isa"

const (
	EXIT = isa.EXIT
	NOP  = isa.NOP

	INT_STORE    = isa.INT_STORE
	INT_PRINT    = isa.INT_PRINT
	INT_TOSTRING = isa.INT_TOSTRING
	INT_RANDOM   = isa.INT_RANDOM

	FLOAT_STORE    = isa.FLOAT_STORE
	FLOAT_PRINT    = isa.FLOAT_PRINT
	FLOAT_TOSTRING = isa.FLOAT_TOSTRING

	STRING_STORE  = isa.STRING_STORE
	STRING_PRINT  = isa.STRING_PRINT
	STRING_CONCAT = isa.STRING_CONCAT
	STRING_SYSTEM = isa.STRING_SYSTEM
	STRING_TOINT  = isa.STRING_TOINT

	STORE_REG = isa.STORE_REG

	ADD = isa.ADD
	SUB = isa.SUB
	MUL = isa.MUL
	DIV = isa.DIV
	AND = isa.AND
	OR  = isa.OR
	XOR = isa.XOR
	INC = isa.INC
	DEC = isa.DEC

	CMP_REG       = isa.CMP_REG
	CMP_IMMEDIATE = isa.CMP_IMMEDIATE
	CMP_STRING    = isa.CMP_STRING
	IS_STRING     = isa.IS_STRING
	IS_INTEGER    = isa.IS_INTEGER

	JUMP_TO = isa.JUMP_TO
	JUMP_Z  = isa.JUMP_Z
	JUMP_NZ = isa.JUMP_NZ

	PEEK   = isa.PEEK
	POKE   = isa.POKE
	MEMCPY = isa.MEMCPY

	STACK_PUSH = isa.STACK_PUSH
	STACK_POP  = isa.STACK_POP
	STACK_CALL = isa.STACK_CALL
	STACK_RET  = isa.STACK_RET

	BINARY_LOAD   = isa.BINARY_LOAD
	BINARY_SAVE   = isa.BINARY_SAVE
	ANALOG_LOAD   = isa.ANALOG_LOAD
	ANALOG_SAVE   = isa.ANALOG_SAVE
	VARIABLE_LOAD = isa.VARIABLE_LOAD
	VARIABLE_SAVE = isa.VARIABLE_SAVE
)

func mnemonicName(opcode byte) string {
	return isa.Name(opcode)
}
