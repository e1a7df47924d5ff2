package chip8

// opSKP implements Ex9E: skip the next instruction if key Vx is held.
func opSKP(m *Machine, x uint8) error {
	if m.keyHeld(m.v[x] & 0xF) {
		m.pc += 2
	}
	return nil
}

// opSKNP implements ExA1: skip the next instruction if key Vx is not
// held.
func opSKNP(m *Machine, x uint8) error {
	if !m.keyHeld(m.v[x] & 0xF) {
		m.pc += 2
	}
	return nil
}

// opLDvxK implements Fx0A: park the machine in the waiting-for-key
// state with x as the target register. The instruction itself has
// already advanced PC by 2 (via fetch); per spec §4.9/§8's end-to-end
// scenario, PC is not rewound — the cycle driver simply stops
// fetching further instructions until HandleKeyDown resolves the
// wait.
func opLDvxK(m *Machine, x uint8) error {
	m.waiting = true
	m.waitReg = x
	return nil
}
