package chip8

// opDRW implements Dxyn: draw an n-row, 8-pixel-wide sprite sourced
// from RAM[I..I+n-1] at (Vx mod 64, Vy mod 32), XORed into the frame
// buffer with horizontal wrap via bit rotation and vertical wrap via
// modulo row index, per spec §4.6.
//
// VF is set to 1 iff the OR of per-row collisions (a bit that was 1
// in the frame and 1 in the sprite projection, i.e. turned off by the
// XOR) is non-zero across all n rows, not just the last one. n == 0 is
// a no-op: VF is cleared and the frame is untouched.
func opDRW(m *Machine, ins instruction) error {
	x, y, n := xyn(ins)
	if n == 0 {
		m.v[0xF] = 0
		return nil
	}

	startX := uint(m.v[x]) % ScreenWidth
	startY := int(m.v[y]) % ScreenHeight

	var collided uint8
	for r := uint8(0); r < n; r++ {
		offset := int(m.i) + int(r)
		if offset >= RAMSize {
			return &MemoryError{Address: offset}
		}
		spriteByte := m.ram[offset]

		rowY := (startY + int(r)) % ScreenHeight

		projection := rotr(uint64(spriteByte)<<56, startX, 64)

		before := m.frame[rowY]
		if before&projection != 0 {
			collided = 1
		}
		m.frame[rowY] = before ^ projection
	}

	m.v[0xF] = collided
	m.dirty = true
	return nil
}
