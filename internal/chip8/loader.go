package chip8

import "fmt"

// LoadFont copies the 80-byte hex-digit font into RAM starting at
// offset 0. Hosts call this once, before LoadROM, on a fresh Machine.
func (m *Machine) LoadFont() {
	copy(m.ram[0:], font[:])
}

// LoadROM copies prog into RAM starting at EntryPoint. It fails with
// ErrROMTooLarge if prog does not fit in the program area
// (RAMSize - EntryPoint bytes).
func (m *Machine) LoadROM(prog []byte) error {
	if len(prog) > ROMMaxSize {
		return fmt.Errorf("%w: %d bytes, max %d", ErrROMTooLarge, len(prog), ROMMaxSize)
	}
	copy(m.ram[EntryPoint:], prog)
	return nil
}

// HandleKeyDown records key as held and, if the machine is parked in
// Fx0A awaiting a keypress, resolves the wait: the key nibble is
// stored into the target register and the machine resumes normal
// cycling on the next Cycle call. Must be invoked from the same
// context that drives Cycle, or under an external lock; see spec §5.
func (m *Machine) HandleKeyDown(key uint8) {
	if key >= KeypadSize {
		return
	}
	m.keypad |= 1 << key
	if m.waiting {
		m.v[m.waitReg] = key
		m.waiting = false
	}
}

// HandleKeyUp records key as released.
func (m *Machine) HandleKeyUp(key uint8) {
	if key >= KeypadSize {
		return
	}
	m.keypad &^= 1 << key
}

// keyHeld reports whether key is currently latched down.
func (m *Machine) keyHeld(key uint8) bool {
	return m.keypad&(1<<key) != 0
}
