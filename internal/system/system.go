// Package system implements the CHIP-8 virtual machine core.
//
// The machine state consists of 4 KB of byte addressable memory, 16
// general purpose 8 bit registers, a 16 bit address register, a bounded
// call stack, two countdown timers and the program counter. The run loop
// repeats fetch, decode, execute and timer decay until it is stopped
// externally, the instruction set has no halt opcode.
package system

import (
	"time"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// reservedStart marks the start of the interpreter and stack area,
	// program loading stops before it.
	reservedStart = 0xea0

	// MaxProgramSize is the number of program bytes that fit between the
	// program start and the reserved area.
	MaxProgramSize = reservedStart - ProgramStart

	memorySize    = 0x1000
	registerCount = 16
	flagRegister  = 0x0f
	stackDepth    = 24
)

// Display receives the draw intents of the executed program.
// Rendering an actual framebuffer is outside of the core, the default
// collaborator discards all intents.
type Display interface {
	// Clear clears the display.
	Clear()
	// Draw draws a sprite of the given byte height at position x, y.
	Draw(x, y, height uint8)
}

// System is an emulated CHIP-8 virtual machine.
type System struct {
	logger *log.Logger

	memory    [memorySize]byte
	registers [registerCount]uint8
	index     uint16   // address register for memory indexed instructions
	stack     []uint16 // call stack, return addresses only
	delay     uint8
	sound     uint8
	pc        uint16

	// timer decay samples the time source once per cycle, lastTick is
	// the reference timestamp of the last consumed whole tick
	tickRate int
	lastTick time.Time
	now      func() time.Time

	display Display
	random  func() uint8
}

// Dependencies contains the optional external collaborators of the
// machine. Absent collaborators leave the corresponding opcodes without
// side effect.
type Dependencies struct {
	Display Display          // receiver of draw and clear intents
	Random  func() uint8     // random byte source for the rnd opcode
	Now     func() time.Time // time source for timer decay, defaults to time.Now
}

// New creates a new virtual machine and loads the program image.
// The image is copied to memory starting at the program start address,
// bytes that would reach the reserved interpreter area are dropped.
func New(logger *log.Logger, program []byte, opts options.Runtime) *System {
	s := &System{
		logger:   logger,
		pc:       ProgramStart,
		stack:    make([]uint16, 0, stackDepth),
		tickRate: opts.TickRate,
		now:      time.Now,
	}
	if s.tickRate <= 0 {
		s.tickRate = options.DefaultTickRate
	}

	if len(program) > MaxProgramSize {
		logger.Debug("Truncating program image",
			log.Int("size", len(program)),
			log.Int("max", MaxProgramSize))
		program = program[:MaxProgramSize]
	}
	copy(s.memory[ProgramStart:], program)

	s.lastTick = s.now()
	return s
}

// InjectDependencies sets the external collaborators of the machine.
func (s *System) InjectDependencies(deps Dependencies) {
	s.display = deps.Display
	s.random = deps.Random
	if deps.Now != nil {
		s.now = deps.Now
		s.lastTick = s.now()
	}
}

// Register returns the value of the general purpose register idx.
// The index is truncated to the valid register range.
func (s *System) Register(idx uint8) uint8 {
	return s.registers[idx&0x0f]
}

// SetRegister sets the general purpose register idx to value.
// The index is truncated to the valid register range.
func (s *System) SetRegister(idx, value uint8) {
	s.registers[idx&0x0f] = value
}

// SetFlag sets the flag register (v15). Every carry, borrow and shift
// outcome of the arithmetic opcodes is routed through this single path.
// The flag register doubles as a general purpose register, a later
// explicit write wins over an earlier flag write and vice versa.
func (s *System) SetFlag(value uint8) {
	s.registers[flagRegister] = value
}

// readMemory reads the byte at addr. Addresses past the memory bound
// are clamped to the last valid cell instead of faulting.
func (s *System) readMemory(addr uint16) byte {
	if addr >= memorySize {
		addr = memorySize - 1
	}
	return s.memory[addr]
}

// writeMemory writes the byte at addr. Writes past the memory bound are
// rejected, out of range accesses must not corrupt unrelated state.
func (s *System) writeMemory(addr uint16, value byte) {
	if addr >= memorySize {
		return
	}
	s.memory[addr] = value
}
