package chip8

// opLDvxnn implements 6xnn: Vx <- nn.
func opLDvxnn(m *Machine, ins instruction) error {
	x, nn := xnn(ins)
	m.v[x] = nn
	return nil
}

// opADDvxnn implements 7xnn: Vx <- Vx + nn, wrapping mod 256. VF is
// not touched.
func opADDvxnn(m *Machine, ins instruction) error {
	x, nn := xnn(ins)
	m.v[x] += nn
	return nil
}

// opLDvxvy implements 8xy0: Vx <- Vy.
func opLDvxvy(m *Machine, x, y uint8) error {
	m.v[x] = m.v[y]
	return nil
}

// opORvxvy implements 8xy1: Vx <- Vx | Vy. VF is left unspecified by
// the original instruction set; this core leaves it unchanged.
func opORvxvy(m *Machine, x, y uint8) error {
	m.v[x] |= m.v[y]
	return nil
}

// opANDvxvy implements 8xy2: Vx <- Vx & Vy. VF unchanged.
func opANDvxvy(m *Machine, x, y uint8) error {
	m.v[x] &= m.v[y]
	return nil
}

// opXORvxvy implements 8xy3: Vx <- Vx ^ Vy. VF unchanged.
func opXORvxvy(m *Machine, x, y uint8) error {
	m.v[x] ^= m.v[y]
	return nil
}

// opADDvxvy implements 8xy4: Vx <- Vx + Vy, wrapping mod 256, with
// VF <- 1 iff the unwrapped sum exceeds 0xFF. The primary result is
// written to Vx before VF, so when x == 0xF the flag value overrides
// the arithmetic result, per spec §4.4.
func opADDvxvy(m *Machine, x, y uint8) error {
	sum := uint16(m.v[x]) + uint16(m.v[y])
	carry := uint8(0)
	if sum > 0xFF {
		carry = 1
	}
	m.v[x] = uint8(sum)
	m.v[0xF] = carry
	return nil
}

// opSUBvxvy implements 8xy5: Vx <- Vx - Vy, wrapping mod 256, with
// VF <- 1 iff Vx >= Vy (no borrow). Result written before VF.
func opSUBvxvy(m *Machine, x, y uint8) error {
	noBorrow := uint8(0)
	if m.v[x] >= m.v[y] {
		noBorrow = 1
	}
	result := m.v[x] - m.v[y]
	m.v[x] = result
	m.v[0xF] = noBorrow
	return nil
}

// opSUBNvxvy implements 8xy7: Vx <- Vy - Vx, wrapping mod 256, with
// VF <- 1 iff Vy >= Vx (no borrow). Result written before VF.
func opSUBNvxvy(m *Machine, x, y uint8) error {
	noBorrow := uint8(0)
	if m.v[y] >= m.v[x] {
		noBorrow = 1
	}
	result := m.v[y] - m.v[x]
	m.v[x] = result
	m.v[0xF] = noBorrow
	return nil
}

// opSHR implements 8xy6: VF <- LSB of the shift source, then
// Vx <- source >> 1. This core follows COSMAC semantics by default
// (the shift source is Vx, Vy ignored); WithShiftUsesVy selects the
// alternate interpretation where the source is Vy. Result written
// before VF.
func opSHR(m *Machine, x, y uint8) error {
	source := m.v[x]
	if m.shiftUsesVy {
		source = m.v[y]
	}
	lsb := source & 0x01
	m.v[x] = source >> 1
	m.v[0xF] = lsb
	return nil
}

// opSHL implements 8xyE: VF <- MSB of the shift source, then
// Vx <- (source << 1) & 0xFF. See opSHR for the Vy-source toggle.
func opSHL(m *Machine, x, y uint8) error {
	source := m.v[x]
	if m.shiftUsesVy {
		source = m.v[y]
	}
	msb := (source >> 7) & 0x01
	m.v[x] = source << 1
	m.v[0xF] = msb
	return nil
}

// opRND implements Cxnn: Vx <- random() & nn, using the machine's
// injected random oracle.
func opRND(m *Machine, ins instruction) error {
	x, nn := xnn(ins)
	m.v[x] = m.rand(nn) & nn
	return nil
}
