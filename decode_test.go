package svm

import (
	"math"
	"testing"
)

func TestReadInlineStringHandlesEmbeddedZeroBytes(t *testing.T) {
	vm := NewDefault(nil, nil, nil)
	payload := []byte{'a', 0x00, 'b'}
	vm.Code[0] = byte(len(payload))
	vm.Code[1] = 0
	vm.Code[2] = 0 // reserved gap byte
	copy(vm.Code[3:], payload)
	vm.IP = 0xFFFF // nextByte's first call wraps to 0, landing on the length byte

	s := vm.readInlineString()
	if s != string(payload) {
		t.Fatalf("readInlineString = %q, want %q (embedded zero byte must survive)", s, string(payload))
	}
	if vm.IP != 5 {
		t.Fatalf("IP = %04X after reading a 3-byte payload starting at 0, want 0005", vm.IP)
	}
}

func TestReadFloat16_16IsBitIdentical(t *testing.T) {
	vm := NewDefault(nil, nil, nil)
	vm.Code[0] = 0x00
	vm.Code[1] = 0x00
	vm.Code[2] = 0x80
	vm.Code[3] = 0x7F
	vm.IP = 0xFFFF

	got := vm.readFloat16_16()
	want := float32(math.Ldexp(float64(0x7F80)/65535, 0))
	if got != want {
		t.Fatalf("readFloat16_16 = %v, want %v", got, want)
	}
}

func TestNextByteWrapsAtTopOfAddressSpace(t *testing.T) {
	vm := NewDefault(nil, nil, nil)
	vm.Code[0] = 0x42
	vm.IP = CODE_SIZE - 1
	got := vm.nextByte()
	if vm.IP != 0 || got != 0x42 {
		t.Fatalf("nextByte at top of address space: IP=%04X got=%02X, want IP=0000 got=42", vm.IP, got)
	}
}
