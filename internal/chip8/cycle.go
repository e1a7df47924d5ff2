package chip8

// fetch reads the big-endian instruction word at PC and PC+1,
// advancing PC by 2. PC wraps modulo RAMSize; no alignment check is
// performed, per spec §4.2.
func (m *Machine) fetch() instruction {
	hi := m.ram[m.pc%RAMSize]
	lo := m.ram[(m.pc+1)%RAMSize]
	m.pc = (m.pc + 2) % RAMSize
	return instruction(uint16(hi)<<8 | uint16(lo))
}

// Cycle runs one step of the machine: a timer tick interleaved with
// one fetch+execute, gated on the wait-for-keypress state.
//
//  1. If waiting for a key, Cycle is a no-op: no fetch, no timer
//     decrement, no PC change (spec §4.9/§4.10).
//  2. Otherwise delay and sound are each decremented if non-zero.
//  3. One instruction is fetched at PC (PC advances by 2) and
//     dispatched.
//
// Cycle returns a non-nil error for any of the fatal conditions in
// spec §7: stack underflow/overflow, out-of-range memory access,
// unknown opcode, or unsupported SYS. The host decides whether to
// halt, reset, or ignore; Cycle never retries internally.
func (m *Machine) Cycle() error {
	if m.waiting {
		return nil
	}

	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}

	pcBefore := m.pc
	ins := m.fetch()
	return dispatch(m, ins, pcBefore)
}
