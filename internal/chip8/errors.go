package chip8

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal conditions spec §7 enumerates. Hosts
// branch on these with errors.Is; the core never retries any of them
// internally.
var (
	ErrStackUnderflow   = errors.New("chip8: stack underflow on RET")
	ErrStackOverflow    = errors.New("chip8: stack overflow on CALL")
	ErrMemoryOutOfRange = errors.New("chip8: memory access out of range")
	ErrUnknownOpcode    = errors.New("chip8: unknown opcode")
	ErrROMTooLarge      = errors.New("chip8: ROM exceeds program area")
	ErrUnsupportedSYS   = errors.New("chip8: SYS addr is not supported")
)

// OpcodeError wraps ErrUnknownOpcode or ErrUnsupportedSYS with the
// offending instruction word and the program counter it was fetched
// from, for host diagnostics.
type OpcodeError struct {
	Err         error
	Instruction uint16
	PC          uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%v: instruction %04X at PC %04X", e.Err, e.Instruction, e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}

func newOpcodeError(err error, ins instruction, pc uint16) *OpcodeError {
	return &OpcodeError{Err: err, Instruction: uint16(ins), PC: pc}
}

// MemoryError wraps ErrMemoryOutOfRange with the offending address.
type MemoryError struct {
	Address int
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("%v: address %04X", ErrMemoryOutOfRange, e.Address)
}

func (e *MemoryError) Unwrap() error {
	return ErrMemoryOutOfRange
}
