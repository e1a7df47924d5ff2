package chip8

// opLDInnn implements Annn: I <- nnn.
func opLDInnn(m *Machine, ins instruction) error {
	m.i = addr(ins)
	return nil
}

// opLDvxDT implements Fx07: Vx <- delay timer.
func opLDvxDT(m *Machine, x uint8) error {
	m.v[x] = m.delay
	return nil
}

// opLDDTvx implements Fx15: delay timer <- Vx.
func opLDDTvx(m *Machine, x uint8) error {
	m.delay = m.v[x]
	return nil
}

// opLDSTvx implements Fx18: sound timer <- Vx.
func opLDSTvx(m *Machine, x uint8) error {
	m.sound = m.v[x]
	return nil
}

// opADDIvx implements Fx1E: I <- I + Vx. VF is not touched.
func opADDIvx(m *Machine, x uint8) error {
	m.i += uint16(m.v[x])
	return nil
}

// opLDFvx implements Fx29: I <- address of the 5-byte font glyph for
// hex digit (Vx & 0xF).
func opLDFvx(m *Machine, x uint8) error {
	digit := m.v[x] & 0x0F
	m.i = uint16(digit) * FontGlyphBytes
	return nil
}

// opLDBvx implements Fx33: store the BCD representation of Vx at
// RAM[I], RAM[I+1], RAM[I+2] (hundreds, tens, units). Fails with a
// MemoryError if I+2 falls outside RAM.
func opLDBvx(m *Machine, x uint8) error {
	if int(m.i)+2 >= RAMSize {
		return &MemoryError{Address: int(m.i) + 2}
	}
	value := m.v[x]
	m.ram[m.i] = value / 100
	m.ram[m.i+1] = (value / 10) % 10
	m.ram[m.i+2] = value % 10
	return nil
}

// opLDIvx implements Fx55: store V0..Vx inclusive to RAM starting at
// I. I itself is left unmodified by default; WithBulkIncrementsI
// selects the classic COSMAC post-increment behavior. Fails with a
// MemoryError if any written address falls outside RAM.
func opLDIvx(m *Machine, x uint8) error {
	if int(m.i)+int(x) >= RAMSize {
		return &MemoryError{Address: int(m.i) + int(x)}
	}
	for r := uint16(0); r <= uint16(x); r++ {
		m.ram[m.i+r] = m.v[r]
	}
	if m.bulkIncrementsI {
		m.i += uint16(x) + 1
	}
	return nil
}

// opLDvxI implements Fx65: load V0..Vx inclusive from RAM starting at
// I. See opLDIvx for the I post-increment toggle.
func opLDvxI(m *Machine, x uint8) error {
	if int(m.i)+int(x) >= RAMSize {
		return &MemoryError{Address: int(m.i) + int(x)}
	}
	for r := uint16(0); r <= uint16(x); r++ {
		m.v[r] = m.ram[m.i+r]
	}
	if m.bulkIncrementsI {
		m.i += uint16(x) + 1
	}
	return nil
}
