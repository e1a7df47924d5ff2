package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These mirror spec.md §8's literal end-to-end scenarios exactly.

func TestScenario_JumpAndHaltLoop(t *testing.T) {
	m := newTestMachine(t)
	loadProgram(t, m, 0x12, 0x00) // JP 0x200

	require.NoError(t, m.Cycle())
	require.EqualValues(t, 0x200, m.pc)
}

func TestScenario_SetAddSkip(t *testing.T) {
	m := newTestMachine(t)
	loadProgram(t, m,
		0x60, 0x05, // LD V0, 0x05
		0x70, 0x03, // ADD V0, 0x03
		0x30, 0x08, // SE V0, 0x08 (taken)
		0x12, 0x00, // JP 0x200 (skipped)
	)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.Cycle())
	}

	require.EqualValues(t, 0x208, m.pc)
	require.EqualValues(t, 0x08, m.v[0])
}

func TestScenario_CallAndReturn(t *testing.T) {
	m := newTestMachine(t)
	loadProgram(t, m,
		0x22, 0x06, // 0x200: CALL 0x206
		0x12, 0x04, // 0x202: JP 0x204
		0x00, 0x00, // 0x204: (unreached)
		0x00, 0xEE, // 0x206: RET
	)

	require.NoError(t, m.Cycle()) // CALL 0x206: push 0x202, pc=0x206
	require.EqualValues(t, 0x206, m.pc)
	require.Equal(t, []uint16{0x202}, m.stack)

	require.NoError(t, m.Cycle()) // RET: pc=0x202
	require.EqualValues(t, 0x202, m.pc)
	require.Empty(t, m.stack)

	require.NoError(t, m.Cycle()) // JP 0x204
	require.EqualValues(t, 0x204, m.pc)
	require.Empty(t, m.stack)
}

func TestScenario_SpriteDrawWithCollision(t *testing.T) {
	m := newTestMachine(t)
	loadProgram(t, m,
		0xA0, 0x00, // LD I, 0x000 (glyph 0 lives at offset 0)
		0x60, 0x00, // LD V0, 0
		0x61, 0x00, // LD V1, 0
		0xD0, 0x15, // DRW V0, V1, 5
		0xD0, 0x15, // DRW V0, V1, 5 (again)
	)

	require.NoError(t, m.Cycle()) // LD I, 0
	require.NoError(t, m.Cycle()) // LD V0, 0
	require.NoError(t, m.Cycle()) // LD V1, 0

	require.NoError(t, m.Cycle()) // first DRW
	require.EqualValues(t, 0, m.v[0xF])
	require.NotZero(t, m.frame[0])

	require.NoError(t, m.Cycle()) // second DRW
	require.EqualValues(t, 1, m.v[0xF])
	require.Zero(t, m.frame[0])
}

func TestScenario_BCD(t *testing.T) {
	m := newTestMachine(t)
	m.v[2] = 0x9C // 156
	m.i = 0x300

	require.NoError(t, dispatch(m, instruction(0xF233), m.pc))

	require.EqualValues(t, 1, m.ram[0x300])
	require.EqualValues(t, 5, m.ram[0x301])
	require.EqualValues(t, 6, m.ram[0x302])
}

func TestScenario_WaitForKey(t *testing.T) {
	m := newTestMachine(t)
	loadProgram(t, m,
		0xF3, 0x0A, // 0x200: LD V3, K
		0x12, 0x00, // 0x202: JP 0x200
	)

	require.NoError(t, m.Cycle()) // enters waiting state
	require.True(t, m.waiting)
	require.EqualValues(t, 0x202, m.pc)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.Cycle()) // no-ops while waiting
		require.EqualValues(t, 0x202, m.pc)
	}

	m.HandleKeyDown(0xA)
	require.False(t, m.waiting)
	require.EqualValues(t, 0xA, m.v[3])

	require.NoError(t, m.Cycle()) // JP 0x200
	require.EqualValues(t, 0x200, m.pc)
}
