package decoder

import "fmt"

// Op identifies the operation of a decoded instruction. Addressing
// variants that share a mnemonic, like the many ld forms, map to
// distinct operations.
type Op int

// Operations of the CHIP-8 instruction set.
const (
	SysCall           Op = iota // 0nnn - machine code routine call, not used by ROMs
	ClearScreen                 // 00e0 - clear the display
	Return                      // 00ee - return from subroutine
	Jump                        // 1nnn - jump to address
	Call                        // 2nnn - call subroutine at address
	SkipEqual                   // 3xkk - skip next instruction if vx == kk
	SkipNotEqual                // 4xkk - skip next instruction if vx != kk
	SkipEqualReg                // 5xy0 - skip next instruction if vx == vy
	SetReg                      // 6xkk - vx = kk
	AddValue                    // 7xkk - vx += kk
	CopyReg                     // 8xy0 - vx = vy
	OrReg                       // 8xy1 - vx |= vy
	AndReg                      // 8xy2 - vx &= vy
	XorReg                      // 8xy3 - vx ^= vy
	AddReg                      // 8xy4 - vx += vy, flag register set on carry
	SubReg                      // 8xy5 - vx -= vy, flag register set on borrow
	ShiftRight                  // 8xy6 - vx = vy = vy >> 1, flag register = shifted out bit
	SubReverse                  // 8xy7 - vx = vy - vx, flag register set on borrow
	ShiftLeft                   // 8xye - vx = vy = vy << 1, flag register = shifted out bit
	SkipNotEqualReg             // 9xy0 - skip next instruction if vx != vy
	SetIndex                    // annn - i = nnn
	JumpOffset                  // bnnn - jump to i + v0
	Random                      // cxkk - vx = random byte & kk
	Draw                        // dxyn - draw n byte sprite at (vx, vy)
	SkipKeyPressed              // ex9e - skip next instruction if key vx is pressed
	SkipKeyNotPressed           // exa1 - skip next instruction if key vx is not pressed
	ReadDelayTimer              // fx07 - vx = delay timer
	WaitKey                     // fx0a - wait for a key press, store the key in vx
	SetDelayTimer               // fx15 - delay timer = vx
	SetSoundTimer               // fx18 - sound timer = vx
	AddIndex                    // fx1e - i += vx
	SpriteAddress               // fx29 - i = sprite address for digit vx
	StoreDigits                 // fx33 - store BCD digits of vx at i
	StoreRegs                   // fx55 - store v0..vx at i
	LoadRegs                    // fx65 - load v0..vx from i
)

// Instruction is a decoded CHIP-8 instruction with its extracted operands.
// Only the operands of the instruction's addressing form carry meaning,
// the others are zero.
type Instruction struct {
	Op Op

	X   uint8  // first register operand
	Y   uint8  // second register operand
	N   uint8  // 4 bit immediate
	KK  uint8  // 8 bit immediate
	NNN uint16 // 12 bit address

	name string // mnemonic from the opcode table
}

// Name returns the instruction mnemonic.
func (ins Instruction) Name() string {
	return ins.name
}

// String returns the instruction in assembler notation for tracing.
func (ins Instruction) String() string {
	switch ins.Op {
	case ClearScreen, Return:
		return ins.name

	case SysCall, Jump, Call, SetIndex, JumpOffset:
		return fmt.Sprintf("%s 0x%03x", ins.name, ins.NNN)

	case SkipEqual, SkipNotEqual, SetReg, AddValue, Random:
		return fmt.Sprintf("%s v%x, 0x%02x", ins.name, ins.X, ins.KK)

	case SkipEqualReg, SkipNotEqualReg, CopyReg, OrReg, AndReg, XorReg,
		AddReg, SubReg, SubReverse, ShiftRight, ShiftLeft:
		return fmt.Sprintf("%s v%x, v%x", ins.name, ins.X, ins.Y)

	case Draw:
		return fmt.Sprintf("%s v%x, v%x, 0x%x", ins.name, ins.X, ins.Y, ins.N)

	default:
		return fmt.Sprintf("%s v%x", ins.name, ins.X)
	}
}
