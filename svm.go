// svm.go - register-based bytecode virtual machine core
package svm

import (
	"context"
	"io"
)

const (
	// REGISTER_COUNT is the size of the tagged register bank. Register
	// indices are a single unsigned byte, so this can never exceed 256.
	REGISTER_COUNT = 32

	// CODE_SIZE is the fixed, shared code/data address space. IP and every
	// address computed from it wrap modulo CODE_SIZE.
	CODE_SIZE = 0x10000

	// Stack capacities.
	DATA_STACK_SIZE = 1024
	CALL_STACK_SIZE = 256

	// I/O channel array sizes.
	ANALOG_IN_COUNT  = 32
	ANALOG_OUT_COUNT = 32
	BINARY_IN_COUNT  = 64
	BINARY_OUT_COUNT = 64
)

// Kind tags the content of a register or stack slot.
type Kind uint8

const (
	KindInteger Kind = iota
	KindFloat
	KindString
)

// Value is a tagged register/stack slot. The String case exclusively owns
// its buffer: copying a Value by assignment copies the Go string header
// (strings are immutable), which already gives value semantics without
// manual buffer management.
type Value struct {
	Kind Kind
	I    int32
	F    float32
	S    string
}

// IntValue builds an Integer-tagged Value.
func IntValue(i int32) Value { return Value{Kind: KindInteger, I: i} }

// FloatValue builds a Float-tagged Value.
func FloatValue(f float32) Value { return Value{Kind: KindFloat, F: f} }

// StringValue builds a Str-tagged Value.
func StringValue(s string) Value { return Value{Kind: KindString, S: s} }

// IsString, IsInteger report the tag of a Value.
func (v Value) IsString() bool  { return v.Kind == KindString }
func (v Value) IsInteger() bool { return v.Kind == KindInteger }
func (v Value) IsFloat() bool   { return v.Kind == KindFloat }

// ErrorHandler is the VM's fatal-error sink. It is invoked once per fatal
// condition; the VM does not resume the instruction that triggered it.
type ErrorHandler func(*Fault)

// Options configures a VM at construction time.
type Options struct {
	// Debug enables per-opcode trace emission via Tracer.
	Debug bool

	// AllowSystem permits STRING_SYSTEM to shell out. Default false.
	AllowSystem bool

	// RegisterCount overrides REGISTER_COUNT when non-zero. Clamped to
	// [32,256].
	RegisterCount int

	// Tracer receives per-opcode trace lines when Debug is set. Defaults
	// to a no-op tracer.
	Tracer Tracer

	// Output receives INT_PRINT/FLOAT_PRINT/STRING_PRINT text. Defaults
	// to io.Discard.
	Output io.Writer
}

func (o Options) registerCount() int {
	n := o.RegisterCount
	if n == 0 {
		n = REGISTER_COUNT
	}
	if n < 32 {
		n = 32
	}
	if n > 256 {
		n = 256
	}
	return n
}

// VM is a single, non-reentrant instance of the bytecode machine. It owns
// its code memory, register file, and both stacks; the four I/O arrays and
// the variable-channel array live in a host-owned *Channels passed in at
// construction.
type VM struct {
	IP      uint16
	Z       bool
	Running bool

	Registers []Value

	dataStack []Value
	sp        int // count of live entries; 0 == empty

	callStack []uint16
	csp       int

	Code [CODE_SIZE]byte

	Channels *Channels

	onError     ErrorHandler
	allowSystem bool
	debug       bool
	tracer      Tracer
	output      io.Writer

	opcodes [256]opcodeFunc
}

// New constructs a VM from a copy of code (truncated/zero-padded to
// CODE_SIZE), wires it to channels, and installs onError as the fault
// sink. IP, Z, SP and CSP all start at their zero/empty values and every
// register defaults to Integer(0), per the construction contract.
func New(code []byte, onError ErrorHandler, channels *Channels, opts Options) *VM {
	if onError == nil {
		onError = func(*Fault) {}
	}
	if channels == nil {
		channels = NewChannels()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = NoopTracer{}
	}
	output := opts.Output
	if output == nil {
		output = io.Discard
	}

	vm := &VM{
		Running:     true,
		Registers:   make([]Value, opts.registerCount()),
		dataStack:   make([]Value, DATA_STACK_SIZE),
		callStack:   make([]uint16, CALL_STACK_SIZE),
		Channels:    channels,
		onError:     onError,
		allowSystem: opts.AllowSystem,
		debug:       opts.Debug,
		tracer:      tracer,
		output:      output,
	}
	copy(vm.Code[:], code) // remaining bytes are already zero-filled by array allocation
	vm.initOpcodeTable()
	return vm
}

// NewDefault wraps New with the safe-default Options (debug off, system
// exec disabled).
func NewDefault(code []byte, onError ErrorHandler, channels *Channels) *VM {
	return New(code, onError, channels, Options{})
}

// Run executes opcodes until EXIT or a fatal error stops the machine.
// Execution is synchronous, non-reentrant, and runs to completion:
// there is no suspension or cancellation primitive, so the run loop
// never inspects ctx.Done() mid-instruction. A host that needs to
// interrupt a run should execute the VM on a disposable worker.
func (vm *VM) Run(ctx context.Context) {
	_ = ctx
	for vm.Running {
		vm.step()
	}
}

func (vm *VM) step() {
	opcode := vm.Code[vm.IP]
	handler := vm.opcodes[opcode]
	if vm.debug {
		vm.tracer.Trace(vm.traceLine(opcode))
	}
	handler(vm)
}

// register returns a pointer to the register at index r, or nil and
// raises FaultBounds if r is out of range for this VM's register file.
func (vm *VM) register(r byte) *Value {
	if int(r) >= len(vm.Registers) {
		vm.fault(FaultBounds, "register %d out of bounds (have %d)", r, len(vm.Registers))
		return nil
	}
	return &vm.Registers[r]
}

// setRegister overwrites a register slot. A previously held Str payload
// needs no manual release in Go; this is kept as a named step so every
// write site reads uniformly.
func setRegister(reg *Value, v Value) {
	*reg = v
}
