package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/nullrune/chip8vm/internal/audio"
	"github.com/nullrune/chip8vm/internal/chip8"
	"github.com/nullrune/chip8vm/internal/render"
)

var (
	clockHz      int
	altShift     bool
	incrementOnI bool
)

// runCmd runs the chip8vm virtual machine and waits for the window to
// be closed.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run the chip8vm emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChip8vm,
}

func init() {
	runCmd.Flags().IntVar(&clockHz, "hz", 700, "instruction rate in Hz, 500-1000 is typical")
	runCmd.Flags().BoolVar(&altShift, "alt-shift", false, "SHR/SHL read Vy instead of Vx, the non-COSMAC interpretation")
	runCmd.Flags().BoolVar(&incrementOnI, "increment-i", false, "Fx55/Fx65 post-increment I, the classic COSMAC behavior")
}

func runChip8vm(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Printf("error reading ROM: %v\n", err)
		os.Exit(1)
	}

	m := chip8.NewMachine(
		chip8.WithShiftUsesVy(altShift),
		chip8.WithBulkIncrementsI(incrementOnI),
	)
	m.LoadFont()
	if err := m.LoadROM(rom); err != nil {
		fmt.Printf("error loading ROM: %v\n", err)
		os.Exit(1)
	}

	// pixelgl needs the main OS thread, so the window and the cycle
	// loop both run inside pixelgl.Run.
	pixelgl.Run(func() {
		win, err := render.NewWindow("chip8vm")
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		gate, err := audio.NewGate()
		if err != nil {
			fmt.Printf("error starting audio: %v\n", err)
			os.Exit(1)
		}

		ticker := time.NewTicker(time.Second / time.Duration(clockHz))
		defer ticker.Stop()

		for range ticker.C {
			if win.Closed() {
				return
			}

			win.PollKeys(m)

			if err := m.Cycle(); err != nil {
				fmt.Printf("fatal: %v\n", err)
				return
			}

			win.DrawFrame(m)
			gate.Tick(m)
		}
	})
}
