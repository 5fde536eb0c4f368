package system

import (
	"github.com/retroenv/chip8vm/internal/decoder"
	"github.com/retroenv/retrogolib/log"
)

// execute applies the state transition of a decoded instruction.
// The program counter advances by one instruction width unless the
// instruction sets it directly or a skip condition is met. All 8 bit
// arithmetic wraps modulo 256, carry, borrow and shift outcomes are
// routed through the flag register. No transition is permitted to abort
// the process, out of range accesses are truncated or rejected.
func (s *System) execute(ins decoder.Instruction) {
	switch ins.Op {
	case decoder.SysCall:
		// machine code routine calls are not emulated
		s.pc += decoder.InstructionSize

	case decoder.ClearScreen:
		if s.display != nil {
			s.display.Clear()
		}
		s.pc += decoder.InstructionSize

	case decoder.Return:
		if n := len(s.stack); n > 0 {
			s.pc = s.stack[n-1] + decoder.InstructionSize
			s.stack = s.stack[:n-1]
		} else {
			s.logger.Debug("Return with empty call stack", log.Hex("pc", s.pc))
			s.pc += decoder.InstructionSize
		}

	case decoder.Jump:
		s.pc = ins.NNN

	case decoder.Call:
		if len(s.stack) >= stackDepth {
			s.logger.Warn("Call with full call stack",
				log.Hex("pc", s.pc),
				log.Hex("target", ins.NNN))
			s.pc += decoder.InstructionSize
		} else {
			s.stack = append(s.stack, s.pc)
			s.pc = ins.NNN
		}

	case decoder.SkipEqual:
		s.skip(s.Register(ins.X) == ins.KK)

	case decoder.SkipNotEqual:
		s.skip(s.Register(ins.X) != ins.KK)

	case decoder.SkipEqualReg:
		s.skip(s.Register(ins.X) == s.Register(ins.Y))

	case decoder.SkipNotEqualReg:
		s.skip(s.Register(ins.X) != s.Register(ins.Y))

	case decoder.SetReg:
		s.SetRegister(ins.X, ins.KK)
		s.pc += decoder.InstructionSize

	case decoder.AddValue:
		s.SetRegister(ins.X, s.Register(ins.X)+ins.KK)
		s.pc += decoder.InstructionSize

	case decoder.CopyReg:
		s.SetRegister(ins.X, s.Register(ins.Y))
		s.pc += decoder.InstructionSize

	case decoder.OrReg:
		s.SetRegister(ins.X, s.Register(ins.X)|s.Register(ins.Y))
		s.pc += decoder.InstructionSize

	case decoder.AndReg:
		s.SetRegister(ins.X, s.Register(ins.X)&s.Register(ins.Y))
		s.pc += decoder.InstructionSize

	case decoder.XorReg:
		s.SetRegister(ins.X, s.Register(ins.X)^s.Register(ins.Y))
		s.pc += decoder.InstructionSize

	case decoder.AddReg:
		sum := uint16(s.Register(ins.X)) + uint16(s.Register(ins.Y))
		s.SetRegister(ins.X, uint8(sum))
		s.SetFlag(carryFlag(sum > 0xff))
		s.pc += decoder.InstructionSize

	case decoder.SubReg:
		a, b := s.Register(ins.X), s.Register(ins.Y)
		s.SetRegister(ins.X, a-b)
		s.SetFlag(carryFlag(b > a))
		s.pc += decoder.InstructionSize

	case decoder.SubReverse:
		a, b := s.Register(ins.X), s.Register(ins.Y)
		s.SetRegister(ins.X, b-a)
		s.SetFlag(carryFlag(a > b))
		s.pc += decoder.InstructionSize

	case decoder.ShiftRight:
		value := s.Register(ins.Y)
		s.SetRegister(ins.X, value>>1)
		s.SetRegister(ins.Y, value>>1)
		s.SetFlag(value & 0x01)
		s.pc += decoder.InstructionSize

	case decoder.ShiftLeft:
		value := s.Register(ins.Y)
		s.SetRegister(ins.X, value<<1)
		s.SetRegister(ins.Y, value<<1)
		s.SetFlag(value >> 7)
		s.pc += decoder.InstructionSize

	case decoder.SetIndex:
		s.index = ins.NNN
		s.pc += decoder.InstructionSize

	case decoder.JumpOffset:
		s.pc = s.index + uint16(s.Register(0))

	case decoder.Random:
		if s.random != nil {
			s.SetRegister(ins.X, s.random()&ins.KK)
		}
		s.pc += decoder.InstructionSize

	case decoder.Draw:
		if s.display != nil {
			s.display.Draw(s.Register(ins.X), s.Register(ins.Y), ins.N)
		}
		s.pc += decoder.InstructionSize

	case decoder.ReadDelayTimer:
		s.SetRegister(ins.X, s.delay)
		s.pc += decoder.InstructionSize

	case decoder.SetDelayTimer:
		s.delay = s.Register(ins.X)
		s.pc += decoder.InstructionSize

	case decoder.SetSoundTimer:
		s.sound = s.Register(ins.X)
		s.pc += decoder.InstructionSize

	case decoder.AddIndex:
		s.index += uint16(s.Register(ins.X))
		s.pc += decoder.InstructionSize

	case decoder.StoreRegs:
		for i := uint8(0); i <= ins.X; i++ {
			s.writeMemory(s.index, s.Register(i))
			s.index++
		}
		s.pc += decoder.InstructionSize

	case decoder.LoadRegs:
		for i := uint8(0); i <= ins.X; i++ {
			if s.index < memorySize {
				s.SetRegister(i, s.memory[s.index])
			}
			s.index++
		}
		s.pc += decoder.InstructionSize

	case decoder.SkipKeyPressed, decoder.SkipKeyNotPressed,
		decoder.WaitKey, decoder.SpriteAddress, decoder.StoreDigits:
		// input polling and the font table are not emulated
		s.pc += decoder.InstructionSize

	default:
		s.pc += decoder.InstructionSize
	}
}

// skip advances the program counter by two instruction widths if the
// condition is met, else by one.
func (s *System) skip(condition bool) {
	if condition {
		s.pc += 2 * decoder.InstructionSize
	} else {
		s.pc += decoder.InstructionSize
	}
}

// carryFlag converts an arithmetic outcome to its flag register value.
func carryFlag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
