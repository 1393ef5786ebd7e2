// trace.go - per-opcode execution tracing and state dumping
//
// The transport - where trace lines actually land - is the host's
// choice via the Tracer interface; the core only decides what to trace
// and when.
package svm

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// Tracer receives one line of text per traced opcode. Implementations
// decide where lines go (stdout, a ring buffer, a test recorder, ...);
// the core never blocks on them and never retries a failed trace.
type Tracer interface {
	Trace(line string)
}

// NoopTracer discards every line. It is the default whenever
// Options.Tracer is unset, whether or not Debug is set.
type NoopTracer struct{}

func (NoopTracer) Trace(string) {}

// ColorTracer writes trace lines to w. Lines arrive already colourised
// by mnemonicColor (control flow cyan, arithmetic yellow, strings
// green); the color package suppresses ANSI codes globally when stdout
// is not a terminal, so a piped run degrades to plain text.
type ColorTracer struct {
	W io.Writer
}

func NewColorTracer(w io.Writer) *ColorTracer {
	return &ColorTracer{W: w}
}

func (t *ColorTracer) Trace(line string) {
	fmt.Fprintln(t.W, line)
}

// mnemonicColor maps an opcode byte to the colour family used when
// rendering its trace line, grouping related opcodes visually.
func mnemonicColor(opcode byte) *color.Color {
	switch opcode {
	case JUMP_TO, JUMP_Z, JUMP_NZ, STACK_CALL, STACK_RET, EXIT:
		return color.New(color.FgCyan)
	case ADD, SUB, MUL, DIV, AND, OR, XOR, INC, DEC:
		return color.New(color.FgYellow)
	case STRING_STORE, STRING_PRINT, STRING_CONCAT, STRING_SYSTEM, STRING_TOINT:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Reset)
	}
}

// traceLine renders the about-to-execute instruction at the current IP as
// one human-readable line: address, mnemonic, and the raw opcode byte
// followed by the two bytes after it. It is called before the handler
// mutates state.
func (vm *VM) traceLine(opcode byte) string {
	c := mnemonicColor(opcode)
	name := mnemonicName(opcode)
	return c.Sprintf("%04X: %-16s [% 02X % 02X % 02X]", vm.IP, name,
		vm.Code[vm.IP], vm.peekByte(1), vm.peekByte(2))
}

// writerIsTerminal reports whether w is an interactive terminal, so
// DumpState only emits ANSI colour where a person will see it.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// peekByte reads a byte n positions ahead of IP without mutating IP,
// wrapping the same way nextByte does. Used only for trace rendering.
func (vm *VM) peekByte(n int) byte {
	addr := (int(vm.IP) + n) % CODE_SIZE
	return vm.Code[addr]
}

// DumpState renders the register file, Z-flag, SP/CSP, and the live
// data-stack entries as aligned tables, top of stack first.
func (vm *VM) DumpState(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Reg", "Kind", "Value"})
	for i, reg := range vm.Registers {
		table.Append([]string{fmt.Sprintf("R%02d", i), kindName(reg.Kind), formatValue(reg)})
	}
	table.Render()

	status := fmt.Sprintf("IP=%04X Z=%v SP=%d CSP=%d Running=%v", vm.IP, vm.Z, vm.sp, vm.csp, vm.Running)
	if writerIsTerminal(w) {
		color.New(color.FgCyan, color.Bold).Fprintln(w, status)
	} else {
		fmt.Fprintln(w, status)
	}

	if vm.sp > 0 {
		stackTable := tablewriter.NewWriter(w)
		stackTable.SetHeader([]string{"SP", "Kind", "Value"})
		for i := vm.sp; i >= 1; i-- {
			v := vm.dataStack[i-1]
			stackTable.Append([]string{fmt.Sprintf("%d", i), kindName(v.Kind), formatValue(v)})
		}
		stackTable.Render()
	}
}

func kindName(k Kind) string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "Str"
	default:
		return "?"
	}
}

func formatValue(v Value) string {
	switch v.Kind {
	case KindInteger:
		return fmt.Sprintf("%d (0x%04X)", v.I, uint32(v.I)&0xFFFF)
	case KindFloat:
		return fmt.Sprintf("%f", v.F)
	case KindString:
		return fmt.Sprintf("%q", v.S)
	default:
		return "?"
	}
}
