package svm

import (
	"context"
	"math"
	"testing"

	"github.com/tinylogic/svm/internal/asmtest"
)

func TestCmpRegIntegerEquality(t *testing.T) {
	code := asmtest.New().
		IntStore(0, 42).
		IntStore(1, 42).
		CmpReg(0, 1).
		Exit().
		Bytes()
	vm := NewDefault(code, failOnFault(t), nil)
	vm.Run(context.Background())
	if !vm.Z {
		t.Fatalf("Z = false, want true for equal Integer registers")
	}
}

func TestCmpRegDifferentTagsAlwaysClearsZ(t *testing.T) {
	code := asmtest.New().
		IntStore(0, 0).
		StringStore(1, "").
		CmpReg(0, 1).
		Exit().
		Bytes()
	vm := NewDefault(code, failOnFault(t), nil)
	vm.Run(context.Background())
	if vm.Z {
		t.Fatalf("Z = true, want false for mismatched tags")
	}
}

func TestCmpRegFloatComparesReinterpretedBits(t *testing.T) {
	// NaN != NaN under float equality, but Float-vs-Float compares raw
	// bit patterns, so an identically-bit-patterned NaN in both registers is
	// "equal". Registers are poked directly here, bypassing the lossy
	// exp/mantissa encoding, so the exact bit pattern is under test
	// control rather than whatever FLOAT_STORE's decode would produce.
	code := asmtest.New().CmpReg(0, 1).Exit().Bytes()
	vm := NewDefault(code, failOnFault(t), nil)
	nanBits := uint32(0x7FC00000)
	vm.Registers[0] = FloatValue(math.Float32frombits(nanBits))
	vm.Registers[1] = FloatValue(math.Float32frombits(nanBits))

	vm.Run(context.Background())

	if !vm.Z {
		t.Fatalf("Z = false, want true: identical NaN bit patterns must compare equal under reinterpreted-int comparison")
	}
}

func TestCmpImmediate(t *testing.T) {
	code := asmtest.New().
		IntStore(0, 0x1234).
		CmpImmediate(0, 0x1234).
		Exit().
		Bytes()
	vm := NewDefault(code, failOnFault(t), nil)
	vm.Run(context.Background())
	if !vm.Z {
		t.Fatalf("Z = false, want true")
	}
}

func TestCmpString(t *testing.T) {
	code := asmtest.New().
		StringStore(0, "match").
		CmpString(0, "match").
		Exit().
		Bytes()
	vm := NewDefault(code, failOnFault(t), nil)
	vm.Run(context.Background())
	if !vm.Z {
		t.Fatalf("Z = false, want true for equal strings")
	}
}

func TestIsStringIsInteger(t *testing.T) {
	code := asmtest.New().
		StringStore(0, "x").
		IsString(0).
		IsInteger(1). // register 1 defaults to Integer(0)
		Exit().
		Bytes()
	vm := NewDefault(code, failOnFault(t), nil)
	vm.Run(context.Background())
	// The final Z reflects the last predicate evaluated (IS_INTEGER on r1).
	if !vm.Z {
		t.Fatalf("Z = false, want true: register 1 is Integer by default")
	}
}
