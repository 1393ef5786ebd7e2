package svm

import (
	"context"
	"testing"

	"github.com/tinylogic/svm/internal/asmtest"
)

func TestAnalogRoundTrip(t *testing.T) {
	code := asmtest.New().
		AnalogLoad(0, 0).
		AnalogSave(0, 0).
		Exit().
		Bytes()

	ch := NewChannels()
	ch.SetAnalogInputs([]float32{3.5})

	vm := NewDefault(code, failOnFault(t), ch)
	vm.Run(context.Background())

	if ch.AnalogOut[0] != 3.5 {
		t.Fatalf("AnalogOut[0] = %v, want 3.5 exactly", ch.AnalogOut[0])
	}
}

func TestBinarySaveSkipsNonInteger(t *testing.T) {
	code := asmtest.New().
		StringStore(0, "not binary").
		BinarySave(0, 0).
		Exit().
		Bytes()

	ch := NewChannels()
	ch.BinaryOut[0] = 0x42

	vm := NewDefault(code, failOnFault(t), ch)
	vm.Run(context.Background())

	if ch.BinaryOut[0] != 0x42 {
		t.Fatalf("BinaryOut[0] = %02X, want unchanged 42 (BINARY_SAVE should skip non-Integer registers)", ch.BinaryOut[0])
	}
}

func TestAnalogSaveSkipsNonFloatNonInteger(t *testing.T) {
	code := asmtest.New().
		StringStore(0, "not analog").
		AnalogSave(0, 0).
		Exit().
		Bytes()

	ch := NewChannels()
	ch.AnalogOut[0] = 2.5

	vm := NewDefault(code, failOnFault(t), ch)
	vm.Run(context.Background())

	if ch.AnalogOut[0] != 2.5 {
		t.Fatalf("AnalogOut[0] = %v, want unchanged 2.5 (ANALOG_SAVE should skip a Str register)", ch.AnalogOut[0])
	}
	if vm.Running {
		t.Fatalf("VM still running: ANALOG_SAVE must advance past its operands")
	}
}

func TestVariableChannelSurvivesRun(t *testing.T) {
	code := asmtest.New().
		StringStore(0, "scratchpad").
		VariableSave(0, 3).
		Exit().
		Bytes()

	ch := NewChannels()
	vm := NewDefault(code, failOnFault(t), ch)
	vm.Run(context.Background())

	if ch.Variable[3].S != "scratchpad" {
		t.Fatalf("Variable[3] = %v, want Str(\"scratchpad\")", ch.Variable[3])
	}
}

func TestVariableLoadRoundTrip(t *testing.T) {
	code := asmtest.New().
		IntStore(0, 0x1234).
		VariableSave(0, 7).
		VariableLoad(1, 7).
		Exit().
		Bytes()

	vm := NewDefault(code, failOnFault(t), nil)
	vm.Run(context.Background())

	if vm.Registers[1] != IntValue(0x1234) {
		t.Fatalf("register 1 = %v, want Integer(0x1234) back from the variable channel", vm.Registers[1])
	}
}

func TestChannelOutOfBoundsFaults(t *testing.T) {
	code := asmtest.New().BinaryLoad(0, 0xFF).Exit().Bytes()

	var fault *Fault
	vm := NewDefault(code, func(f *Fault) { fault = f }, nil)
	vm.Run(context.Background())

	if fault == nil || fault.Kind != FaultBounds {
		t.Fatalf("fault = %v, want Bounds", fault)
	}
}
