// Package chip8 implements the fetch-decode-execute core of a CHIP-8
// virtual machine: the instruction decoder, the arithmetic/logic and
// sprite semantics, the keypad/wait-for-keypress coupling, and the
// 60 Hz timer model. It has no I/O of its own — no window, no audio,
// no file reads — those are host concerns layered on top in
// internal/render, internal/audio and cmd.
package chip8

const (
	// RAMSize is the total addressable memory, in bytes.
	RAMSize = 4096

	// EntryPoint is the address execution starts at after reset and
	// the address ROM bytes are loaded at.
	EntryPoint = 0x200

	// ROMMaxSize is the largest program LoadROM will accept.
	ROMMaxSize = RAMSize - EntryPoint

	// ScreenWidth and ScreenHeight describe the monochrome frame
	// buffer in pixels.
	ScreenWidth  = 64
	ScreenHeight = 32

	// KeypadSize is the number of CHIP-8 keys, 0x0 through 0xF.
	KeypadSize = 16

	// StackCapacity is the maximum subroutine nesting depth.
	StackCapacity = 16

	// FontGlyphBytes is the height, in bytes, of each hex-digit glyph.
	FontGlyphBytes = 5
)

// Machine is the flat aggregate of all CHIP-8 interpreter state. It is
// exclusively owned by whoever drives Cycle; there is no internal
// locking, see the package doc and spec §5.
type Machine struct {
	ram [RAMSize]byte

	v  [16]uint8
	i  uint16
	pc uint16

	stack []uint16

	delay uint8
	sound uint8

	// frame holds 32 rows of 64 bits each; bit 63 of a row is the
	// leftmost pixel.
	frame [ScreenHeight]uint64
	dirty bool

	// keypad is a bitset of currently-held keys, bit k == key k.
	keypad uint16

	waiting bool
	waitReg uint8

	rand func(seed uint8) uint8

	shiftUsesVy     bool
	bulkIncrementsI bool
}

// Option configures a Machine at construction time. The zero value of
// every option preserves this core's documented default semantics.
type Option func(*Machine)

// WithShiftUsesVy selects the alternate SHR/SHL interpretation
// (Vx = Vy >> 1 / Vx = Vy << 1) instead of this core's COSMAC default,
// where Vy is ignored. See spec §9's SHR/SHL open question.
func WithShiftUsesVy(enabled bool) Option {
	return func(m *Machine) { m.shiftUsesVy = enabled }
}

// WithBulkIncrementsI makes Fx55/Fx65 post-increment I by x+1, the
// classic COSMAC behavior some ROMs assume. The default leaves I
// untouched, per spec §4.8/§9.
func WithBulkIncrementsI(enabled bool) Option {
	return func(m *Machine) { m.bulkIncrementsI = enabled }
}

// WithRandom injects a deterministic random oracle, primarily for
// tests. The oracle is not part of persistent state: it is never
// copied by Reset.
func WithRandom(rand func(seed uint8) uint8) Option {
	return func(m *Machine) { m.rand = rand }
}

// NewMachine returns a Machine with PC at EntryPoint, all registers
// and the frame buffer zeroed, and the standard library's math/rand
// as its default random oracle.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		pc:    EntryPoint,
		stack: make([]uint16, 0, StackCapacity),
		rand:  defaultRandom,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reset sets PC back to EntryPoint. RAM, registers and the frame
// buffer are left as-is; callers typically load font and ROM data
// before calling Reset, per spec §4.11.
func (m *Machine) Reset() {
	m.pc = EntryPoint
}

// FrameRow returns the packed 64-bit pixel row y, bit 63 leftmost.
func (m *Machine) FrameRow(y int) uint64 {
	return m.frame[y]
}

// IsDirty reports whether any opcode has mutated the frame buffer
// since the last ClearDirty call.
func (m *Machine) IsDirty() bool {
	return m.dirty
}

// ClearDirty is called by the host after it has consumed a frame.
func (m *Machine) ClearDirty() {
	m.dirty = false
}

// DelayTimer returns the current delay-timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delay
}

// SoundTimer returns the current sound-timer value. Hosts gate tone
// playback on this being non-zero.
func (m *Machine) SoundTimer() uint8 {
	return m.sound
}

// IsWaitingForKey reports whether the machine is parked in Fx0A,
// awaiting a key-down edge.
func (m *Machine) IsWaitingForKey() bool {
	return m.waiting
}

// PC returns the current program counter, for host diagnostics.
func (m *Machine) PC() uint16 {
	return m.pc
}
