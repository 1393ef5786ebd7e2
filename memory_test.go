package svm

import (
	"context"
	"testing"

	"github.com/tinylogic/svm/internal/asmtest"
)

func TestPeekPoke(t *testing.T) {
	code := asmtest.New().
		IntStore(0, 0x99).   // value to poke
		IntStore(1, 0x0100). // target address
		Poke(0, 1).
		IntStore(2, 0x0100). // address register reused for PEEK
		Peek(3, 2).
		Exit().
		Bytes()

	vm := NewDefault(code, failOnFault(t), nil)
	vm.Run(context.Background())

	if vm.Registers[3] != IntValue(0x99) {
		t.Fatalf("register 3 = %v, want Integer(0x99) (PEEK after POKE)", vm.Registers[3])
	}
}

func TestMemcpyRoundTrip(t *testing.T) {
	// memcpy(src=a,dst=b,size=n) then memcpy(src=b,dst=a,size=n) restores
	// the original bytes when the two regions are disjoint.
	code := asmtest.New().
		IntStore(0, 0x2000). // a
		IntStore(1, 0x3000). // b
		IntStore(2, 16).     // n
		Memcpy(1, 0, 2).     // dst=b, src=a
		Memcpy(0, 1, 2).     // dst=a, src=b -- no-op since a already had the bytes
		Exit().
		Bytes()

	vm := NewDefault(code, failOnFault(t), nil)
	for i := 0; i < 16; i++ {
		vm.Code[0x2000+i] = byte(i*7 + 1)
	}
	want := make([]byte, 16)
	copy(want, vm.Code[0x2000:0x2010])

	vm.Run(context.Background())

	for i := 0; i < 16; i++ {
		if vm.Code[0x2000+i] != want[i] {
			t.Fatalf("byte %d at src region = %02X, want %02X after round-trip memcpy", i, vm.Code[0x2000+i], want[i])
		}
		if vm.Code[0x3000+i] != want[i] {
			t.Fatalf("byte %d at dst region = %02X, want %02X", i, vm.Code[0x3000+i], want[i])
		}
	}
}

func TestMemcpyWrapsAroundTopOfCodeMemory(t *testing.T) {
	code := asmtest.New().
		IntStore(0, 0xFFF0). // src: wraps past CODE_SIZE
		IntStore(1, 0x0500). // dst
		IntStore(2, 0x20).   // size
		Memcpy(1, 0, 2).
		Exit().
		Bytes()

	vm := NewDefault(code, failOnFault(t), nil)
	// Seed only the 16 bytes below the wrap point; the wrapped half of the
	// source (0x0000-0x000F) is the program itself and must stay intact.
	for i := 0; i < 0x10; i++ {
		vm.Code[0xFFF0+i] = byte(i + 1)
	}
	vm.Run(context.Background())

	for i := 0; i < 0x20; i++ {
		srcAddr := (0xFFF0 + i) % CODE_SIZE
		if vm.Code[0x0500+i] != vm.Code[srcAddr] {
			t.Fatalf("dst byte %d = %02X, want %02X (wrap-around copy)", i, vm.Code[0x0500+i], vm.Code[srcAddr])
		}
	}
}

func TestPeekTypeMismatchFaults(t *testing.T) {
	code := asmtest.New().
		StringStore(0, "not-an-address").
		Peek(1, 0).
		Exit().
		Bytes()

	var fault *Fault
	vm := NewDefault(code, func(f *Fault) { fault = f }, nil)
	vm.Run(context.Background())

	if fault == nil || fault.Kind != FaultTypeMismatch {
		t.Fatalf("fault = %v, want TypeMismatch", fault)
	}
}

func TestRegisterOutOfBoundsFaults(t *testing.T) {
	code := asmtest.New().IntPrint(0xFF).Exit().Bytes()

	var fault *Fault
	vm := NewDefault(code, func(f *Fault) { fault = f }, nil)
	vm.Run(context.Background())

	if fault == nil || fault.Kind != FaultBounds {
		t.Fatalf("fault = %v, want Bounds", fault)
	}
}
