// Package decoder turns raw CHIP-8 instruction bytes into typed instructions.
//
// Decoding is backed by the retrogolib CHIP-8 opcode table: a 16 bit
// instruction word is matched against the mask/value pairs of all opcodes
// sharing its first nibble. Words that match no known opcode are reported
// as data, program images historically interleave non-instruction bytes
// with code.
package decoder

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// InstructionSize is the size of CHIP-8 instructions in bytes.
const InstructionSize = 2

// Decode decodes the two raw bytes of an instruction word.
// It returns the typed instruction and true on success, or the zero
// instruction and false if the bytes do not form a known opcode and
// should be treated as inert data.
func Decode(b1, b2 byte) (Instruction, bool) {
	w := uint16(b1)<<8 | uint16(b2)

	ins := Instruction{
		X:   uint8(w >> 8 & 0x0f),
		Y:   uint8(w >> 4 & 0x0f),
		N:   uint8(w & 0x000f),
		KK:  uint8(w & 0x00ff),
		NNN: w & 0x0fff,
	}

	var ok bool
	ins.Op, ok = classify(w)
	if !ok {
		return Instruction{}, false
	}

	switch op, ok := matchOpcode(w); {
	case ok:
		ins.name = op.Instruction.Name
	case ins.Op == SysCall:
		// machine code routine calls predate the opcode tables of
		// modern tooling and are not guaranteed to be listed
		ins.name = "sys"
	default:
		return Instruction{}, false
	}
	return ins, true
}

// matchOpcode looks up the instruction word in the opcode table.
func matchOpcode(w uint16) (chip8.Opcode, bool) {
	firstNibble := (w & 0xf000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&w == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

// classify maps an instruction word to its operation, discriminating the
// addressing variants that share a mnemonic in the opcode table.
func classify(w uint16) (Op, bool) {
	switch w & 0xf000 {
	case 0x0000:
		switch w & 0x00ff {
		case 0x00e0:
			return ClearScreen, true
		case 0x00ee:
			return Return, true
		default:
			return SysCall, true
		}
	case 0x1000:
		return Jump, true
	case 0x2000:
		return Call, true
	case 0x3000:
		return SkipEqual, true
	case 0x4000:
		return SkipNotEqual, true
	case 0x5000:
		if w&0x000f == 0 {
			return SkipEqualReg, true
		}
	case 0x6000:
		return SetReg, true
	case 0x7000:
		return AddValue, true
	case 0x8000:
		switch w & 0x000f {
		case 0x0:
			return CopyReg, true
		case 0x1:
			return OrReg, true
		case 0x2:
			return AndReg, true
		case 0x3:
			return XorReg, true
		case 0x4:
			return AddReg, true
		case 0x5:
			return SubReg, true
		case 0x6:
			return ShiftRight, true
		case 0x7:
			return SubReverse, true
		case 0xe:
			return ShiftLeft, true
		}
	case 0x9000:
		if w&0x000f == 0 {
			return SkipNotEqualReg, true
		}
	case 0xa000:
		return SetIndex, true
	case 0xb000:
		return JumpOffset, true
	case 0xc000:
		return Random, true
	case 0xd000:
		return Draw, true
	case 0xe000:
		switch w & 0x00ff {
		case 0x9e:
			return SkipKeyPressed, true
		case 0xa1:
			return SkipKeyNotPressed, true
		}
	case 0xf000:
		switch w & 0x00ff {
		case 0x07:
			return ReadDelayTimer, true
		case 0x0a:
			return WaitKey, true
		case 0x15:
			return SetDelayTimer, true
		case 0x18:
			return SetSoundTimer, true
		case 0x1e:
			return AddIndex, true
		case 0x29:
			return SpriteAddress, true
		case 0x33:
			return StoreDigits, true
		case 0x55:
			return StoreRegs, true
		case 0x65:
			return LoadRegs, true
		}
	}
	return 0, false
}
