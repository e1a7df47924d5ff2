package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine()
	m.LoadFont()
	return m
}

func loadProgram(t *testing.T, m *Machine, program ...byte) {
	t.Helper()
	require.NoError(t, m.LoadROM(program))
}

func TestNewMachineDefaults(t *testing.T) {
	m := NewMachine()
	require.EqualValues(t, EntryPoint, m.pc)
	require.Zero(t, m.i)
	require.Empty(t, m.stack)
	require.Zero(t, m.delay)
	require.Zero(t, m.sound)
	require.False(t, m.waiting)
}

func TestLoadFontPlacesGlyphZeroAtOffsetZero(t *testing.T) {
	m := NewMachine()
	m.LoadFont()
	require.Equal(t, []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}, m.ram[0:5])
}

func TestLoadROMRejectsOversizeProgram(t *testing.T) {
	m := NewMachine()
	tooBig := make([]byte, ROMMaxSize+1)
	err := m.LoadROM(tooBig)
	require.ErrorIs(t, err, ErrROMTooLarge)
}

func TestReset(t *testing.T) {
	m := newTestMachine(t)
	loadProgram(t, m, 0x12, 0x00) // JP 0x200
	require.NoError(t, m.Cycle())
	m.v[0] = 42
	m.i = 100

	m.Reset()

	require.EqualValues(t, EntryPoint, m.pc)
	// Reset touches only PC, per spec §4.11.
	require.EqualValues(t, 42, m.v[0])
	require.EqualValues(t, 100, m.i)
}

func TestHandleKeyDownAndUp(t *testing.T) {
	m := NewMachine()
	m.HandleKeyDown(0xA)
	require.True(t, m.keyHeld(0xA))
	m.HandleKeyUp(0xA)
	require.False(t, m.keyHeld(0xA))
}

func TestHandleKeyDownIgnoresOutOfRangeKey(t *testing.T) {
	m := NewMachine()
	m.HandleKeyDown(0x10)
	require.EqualValues(t, 0, m.keypad)
}
