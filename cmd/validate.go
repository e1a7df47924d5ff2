package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullrune/chip8vm/internal/chip8"
)

// validateCmd loads a ROM's bytes and reports whether it fits the
// program area, without standing up a window or executing anything.
// It exercises chip8.LoadROM's error path as a diagnostics-only entry
// point.
var validateCmd = &cobra.Command{
	Use:   "validate path/to/rom",
	Short: "check whether a ROM fits the CHIP-8 program area",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Printf("error reading ROM: %v\n", err)
		os.Exit(1)
	}

	m := chip8.NewMachine()
	if err := m.LoadROM(rom); err != nil {
		fmt.Printf("%s: %v\n", pathToROM, err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d/%d bytes, fits\n", pathToROM, len(rom), chip8.ROMMaxSize)
}
