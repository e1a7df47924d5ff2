package main

import "github.com/nullrune/chip8vm/cmd"

func main() {
	cmd.Execute()
}
