// Package asmtest is a tiny mnemonic-to-bytecode builder used only by
// this module's test suite, so tests can read as sequences of opcodes
// instead of hand-encoded byte literals. There is no file format, no
// CLI, and no two-pass parser: labels resolve against a single builder
// instance held for the lifetime of one test.
//
// Not part of the public API; only _test.go files in this module import
// it.
package asmtest

import (
	"fmt"
	"math"

	"github.com/tinylogic/svm/internal/isa"
)

type fixup struct {
	pos   int
	label string
}

// Builder accumulates bytecode and resolves forward/backward label
// references (JUMP_TO, JUMP_Z, JUMP_NZ, STACK_CALL targets) on Bytes().
type Builder struct {
	buf    []byte
	labels map[string]uint16
	fixups []fixup
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{labels: make(map[string]uint16)}
}

func (b *Builder) emit(v byte) *Builder {
	b.buf = append(b.buf, v)
	return b
}

func (b *Builder) emitImm16(v uint16) *Builder {
	b.buf = append(b.buf, byte(v&0xFF), byte(v>>8))
	return b
}

// Label records the current byte offset under name for later jump/call
// targets. It can be defined before or after the jumps that reference it.
func (b *Builder) Label(name string) *Builder {
	b.labels[name] = uint16(len(b.buf))
	return b
}

// At returns the current byte offset, for tests that need to splice a
// target address computed outside the builder (e.g. a self-modifying
// MEMCPY destination).
func (b *Builder) At() uint16 {
	return uint16(len(b.buf))
}

func (b *Builder) emitLabelRef(name string) *Builder {
	b.fixups = append(b.fixups, fixup{pos: len(b.buf), label: name})
	return b.emitImm16(0)
}

// EncodeFloat16_16 inverts the ldexp(mant/65535, exp) operand encoding
// for a given non-negative float32, for tests that want to assert
// against a known value rather than just round-trip it. The exp field is
// unsigned, so values below 0.5 fold their negative exponent into the
// mantissa instead.
func EncodeFloat16_16(f float32) (exp uint16, mant uint16) {
	frac, e := math.Frexp(float64(f))
	if e < 0 {
		return 0, uint16(float64(f) * 65535)
	}
	return uint16(e), uint16(frac * 65535)
}

func (b *Builder) Exit() *Builder { return b.emit(isa.EXIT) }
func (b *Builder) Nop() *Builder  { return b.emit(isa.NOP) }

func (b *Builder) IntStore(reg byte, v uint16) *Builder {
	return b.emit(isa.INT_STORE).emit(reg).emitImm16(v)
}
func (b *Builder) IntPrint(reg byte) *Builder    { return b.emit(isa.INT_PRINT).emit(reg) }
func (b *Builder) IntToString(reg byte) *Builder { return b.emit(isa.INT_TOSTRING).emit(reg) }
func (b *Builder) IntRandom(reg byte) *Builder   { return b.emit(isa.INT_RANDOM).emit(reg) }

func (b *Builder) FloatStore(reg byte, exp, mant uint16) *Builder {
	return b.emit(isa.FLOAT_STORE).emit(reg).emitImm16(exp).emitImm16(mant)
}
func (b *Builder) FloatStoreValue(reg byte, f float32) *Builder {
	exp, mant := EncodeFloat16_16(f)
	return b.FloatStore(reg, exp, mant)
}
func (b *Builder) FloatPrint(reg byte) *Builder    { return b.emit(isa.FLOAT_PRINT).emit(reg) }
func (b *Builder) FloatToString(reg byte) *Builder { return b.emit(isa.FLOAT_TOSTRING).emit(reg) }

func (b *Builder) StringStore(reg byte, s string) *Builder {
	b.emit(isa.STRING_STORE).emit(reg).emitImm16(uint16(len(s))).emit(0)
	b.buf = append(b.buf, []byte(s)...)
	return b
}
func (b *Builder) StringPrint(reg byte) *Builder { return b.emit(isa.STRING_PRINT).emit(reg) }
func (b *Builder) StringConcat(dst, a, bReg byte) *Builder {
	return b.emit(isa.STRING_CONCAT).emit(dst).emit(a).emit(bReg)
}
func (b *Builder) StringSystem(reg byte) *Builder { return b.emit(isa.STRING_SYSTEM).emit(reg) }
func (b *Builder) StringToInt(reg byte) *Builder  { return b.emit(isa.STRING_TOINT).emit(reg) }

func (b *Builder) StoreReg(dst, src byte) *Builder { return b.emit(isa.STORE_REG).emit(dst).emit(src) }

func (b *Builder) Add(dst, a, bReg byte) *Builder {
	return b.emit(isa.ADD).emit(dst).emit(a).emit(bReg)
}
func (b *Builder) Sub(dst, a, bReg byte) *Builder {
	return b.emit(isa.SUB).emit(dst).emit(a).emit(bReg)
}
func (b *Builder) Mul(dst, a, bReg byte) *Builder {
	return b.emit(isa.MUL).emit(dst).emit(a).emit(bReg)
}
func (b *Builder) Div(dst, a, bReg byte) *Builder {
	return b.emit(isa.DIV).emit(dst).emit(a).emit(bReg)
}
func (b *Builder) And(dst, a, bReg byte) *Builder {
	return b.emit(isa.AND).emit(dst).emit(a).emit(bReg)
}
func (b *Builder) Or(dst, a, bReg byte) *Builder { return b.emit(isa.OR).emit(dst).emit(a).emit(bReg) }
func (b *Builder) Xor(dst, a, bReg byte) *Builder {
	return b.emit(isa.XOR).emit(dst).emit(a).emit(bReg)
}
func (b *Builder) Inc(reg byte) *Builder { return b.emit(isa.INC).emit(reg) }
func (b *Builder) Dec(reg byte) *Builder { return b.emit(isa.DEC).emit(reg) }

func (b *Builder) CmpReg(a, bReg byte) *Builder { return b.emit(isa.CMP_REG).emit(a).emit(bReg) }
func (b *Builder) CmpImmediate(reg byte, imm uint16) *Builder {
	return b.emit(isa.CMP_IMMEDIATE).emit(reg).emitImm16(imm)
}
func (b *Builder) CmpString(reg byte, s string) *Builder {
	b.emit(isa.CMP_STRING).emit(reg).emitImm16(uint16(len(s))).emit(0)
	b.buf = append(b.buf, []byte(s)...)
	return b
}
func (b *Builder) IsString(reg byte) *Builder  { return b.emit(isa.IS_STRING).emit(reg) }
func (b *Builder) IsInteger(reg byte) *Builder { return b.emit(isa.IS_INTEGER).emit(reg) }

func (b *Builder) JumpTo(label string) *Builder { return b.emit(isa.JUMP_TO).emitLabelRef(label) }
func (b *Builder) JumpZ(label string) *Builder  { return b.emit(isa.JUMP_Z).emitLabelRef(label) }
func (b *Builder) JumpNZ(label string) *Builder { return b.emit(isa.JUMP_NZ).emitLabelRef(label) }

func (b *Builder) Peek(dst, addrReg byte) *Builder { return b.emit(isa.PEEK).emit(dst).emit(addrReg) }
func (b *Builder) Poke(valReg, addrReg byte) *Builder {
	return b.emit(isa.POKE).emit(valReg).emit(addrReg)
}
func (b *Builder) Memcpy(dst, src, size byte) *Builder {
	return b.emit(isa.MEMCPY).emit(dst).emit(src).emit(size)
}

func (b *Builder) StackPush(reg byte) *Builder { return b.emit(isa.STACK_PUSH).emit(reg) }
func (b *Builder) StackPop(reg byte) *Builder  { return b.emit(isa.STACK_POP).emit(reg) }
func (b *Builder) StackCall(label string) *Builder {
	return b.emit(isa.STACK_CALL).emitLabelRef(label)
}
func (b *Builder) StackRet() *Builder { return b.emit(isa.STACK_RET) }

func (b *Builder) BinaryLoad(reg, ch byte) *Builder {
	return b.emit(isa.BINARY_LOAD).emit(reg).emit(ch)
}
func (b *Builder) BinarySave(reg, ch byte) *Builder {
	return b.emit(isa.BINARY_SAVE).emit(reg).emit(ch)
}
func (b *Builder) AnalogLoad(reg, ch byte) *Builder {
	return b.emit(isa.ANALOG_LOAD).emit(reg).emit(ch)
}
func (b *Builder) AnalogSave(reg, ch byte) *Builder {
	return b.emit(isa.ANALOG_SAVE).emit(reg).emit(ch)
}
func (b *Builder) VariableLoad(reg, ch byte) *Builder {
	return b.emit(isa.VARIABLE_LOAD).emit(reg).emit(ch)
}
func (b *Builder) VariableSave(reg, ch byte) *Builder {
	return b.emit(isa.VARIABLE_SAVE).emit(reg).emit(ch)
}

// Raw appends arbitrary bytes verbatim, for tests exercising malformed
// or boundary-condition bytecode that the mnemonic helpers above can't
// express directly.
func (b *Builder) Raw(bs ...byte) *Builder {
	b.buf = append(b.buf, bs...)
	return b
}

// AtLabel returns a previously-defined label's resolved address, for
// tests that need the literal numeric address alongside the symbolic one.
func (b *Builder) AtLabel(name string) uint16 {
	return b.labels[name]
}

// Bytes resolves every label fixup and returns the finished bytecode. It
// panics if a referenced label was never defined - a programmer error in
// the test, not something production code needs to handle.
func (b *Builder) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	for _, f := range b.fixups {
		addr, ok := b.labels[f.label]
		if !ok {
			panic(fmt.Sprintf("asmtest: undefined label %q", f.label))
		}
		out[f.pos] = byte(addr & 0xFF)
		out[f.pos+1] = byte(addr >> 8)
	}
	return out
}
