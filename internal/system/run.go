package system

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8vm/internal/decoder"
	"github.com/retroenv/retrogolib/log"
)

// Step executes a single machine cycle: fetch the instruction word at
// the program counter, decode it, apply its state transition and decay
// the timers. Words that decode to no known opcode are treated as inert
// data, the program counter advances and no state changes.
func (s *System) Step() {
	pc := s.pc
	b1 := s.readMemory(pc)
	b2 := s.readMemory(pc + 1)

	ins, ok := decoder.Decode(b1, b2)
	if ok {
		s.trace(pc, ins.String())
		s.execute(ins)
	} else {
		s.trace(pc, fmt.Sprintf("data 0x%02x%02x", b1, b2))
		s.pc += decoder.InstructionSize
	}

	s.tick()
}

// Run executes machine cycles until the context is cancelled.
// The instruction set has no halt opcode, free running execution is
// unbounded by design.
func (s *System) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Step()
	}
}

// RunCycles executes at most the given number of machine cycles.
// It allows bounded execution for tools and tests.
func (s *System) RunCycles(ctx context.Context, cycles int) error {
	for i := 0; i < cycles; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Step()
	}
	return nil
}

// trace logs one line per cycle with the program counter, the timer
// values and the decoded instruction or the literal bytes tagged as
// data. Diagnostic output only, not part of the machine contract.
func (s *System) trace(pc uint16, op string) {
	s.logger.Debug("cycle",
		log.Hex("pc", pc),
		log.Uint8("delay", s.delay),
		log.Uint8("sound", s.sound),
		log.String("op", op))
}
