// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"io"
	"log"
	"strings"
)

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the flat address space of the machine.
type Memory [MEMORY_SIZE]byte

// Slice returns the bytes from start to end inclusive, wrapping at the top
// of memory.
func (mem *Memory) Slice(start, end uint8) (data []byte) {
	for addr := start; ; addr++ {
		data = append(data, mem[addr])
		if addr == end {
			break
		}
	}
	return
}

// String renders memory as a hex block, 16 bytes per row.
func (mem *Memory) String() string {
	var sb strings.Builder
	for n, b := range mem {
		if n%16 == 0 {
			if n != 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "%02x:", n)
		}
		fmt.Fprintf(&sb, " %02x", b)
	}
	return sb.String()
}

// Machine is the simulation context for the accumulator machine.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Pc     uint8     // Address of the next instruction.
	Acc    uint8     // Accumulator.
	Memory Memory    // Flat memory.
	Output io.Writer // Destination of print instructions.

	Ticks int // Executed instruction counter.
}

// NewMachine creates a machine with the image copied to the low end of
// memory. The rest of memory is zero.
func NewMachine(image []byte) (m *Machine, err error) {
	m = &Machine{
		Output: io.Discard,
	}

	err = m.Load(image)
	if err != nil {
		m = nil
	}

	return
}

// Load clears the machine state and copies the image into memory.
func (m *Machine) Load(image []byte) (err error) {
	if len(image) > MEMORY_SIZE {
		err = ErrImage(len(image))
		return
	}

	clear(m.Memory[:])
	copy(m.Memory[:], image)
	m.Pc = 0
	m.Acc = 0
	m.Ticks = 0

	return
}

// String returns the current register state as a string.
func (m *Machine) String() string {
	return fmt.Sprintf("   pc: %02x\n  acc: %02x\nticks: %d\n", m.Pc, m.Acc, m.Ticks)
}

// arg returns the n'th operand byte of the current instruction.
func (m *Machine) arg(n uint8) uint8 {
	return m.Memory[m.Pc+n]
}

// Step executes a single instruction.
// done is set when a stop instruction was executed; pc is left on the stop.
func (m *Machine) Step() (done bool, err error) {
	code := m.Memory[m.Pc]

	def, ok := Decode(code)
	if !ok {
		err = ErrOpcode{Opcode: code, Pc: m.Pc}
		return
	}

	if m.Verbose {
		log.Printf("cpu: %02x: %v (acc %02x)", m.Pc, def.Mnemonic, m.Acc)
	}

	m.Ticks++

	advance := uint8(def.Len())

	switch def.Opcode {
	case OP_NOP:
	case OP_LD:
		m.Acc = m.Memory[m.arg(1)]
	case OP_LDI:
		m.Acc = m.arg(1)
	case OP_ST:
		m.Memory[m.arg(1)] = m.Acc
	case OP_STI:
		m.Memory[m.arg(2)] = m.arg(1)
	case OP_MOV:
		m.Memory[m.arg(2)] = m.Memory[m.arg(1)]
	case OP_JMP:
		m.Pc = m.arg(1)
		advance = 0
	case OP_JZ:
		if m.Acc == 0 {
			m.Pc = m.arg(1)
			advance = 0
		}
	case OP_ADD:
		m.Acc += m.Memory[m.arg(1)]
	case OP_ADDI:
		m.Acc += m.arg(1)
	case OP_SUB:
		m.Acc -= m.Memory[m.arg(1)]
	case OP_SUBI:
		m.Acc -= m.arg(1)
	case OP_SHR:
		m.Acc >>= 1
	case OP_SHL:
		m.Acc <<= 1
	case OP_AND:
		m.Acc &= m.Memory[m.arg(1)]
	case OP_ANDI:
		m.Acc &= m.arg(1)
	case OP_PRINT:
		err = m.print(m.arg(1))
		if err != nil {
			return
		}
	case OP_STOP:
		done = true
		return
	}

	m.Pc += advance

	return
}

// print writes the length prefixed string at src, followed by a newline.
func (m *Machine) print(src uint8) (err error) {
	length := m.Memory[src]

	var text string
	if length > 0 {
		text = strings.ToValidUTF8(string(m.Memory.Slice(src+1, src+length)), "\uFFFD")
	}

	_, err = io.WriteString(m.Output, text+"\n")
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrOutput, err)
	}

	return
}

// Run executes instructions until a stop instruction or an error.
func (m *Machine) Run() (err error) {
	for done := false; !done; {
		done, err = m.Step()
		if err != nil {
			return
		}
	}

	return
}
