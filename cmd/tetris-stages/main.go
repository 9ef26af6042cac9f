package main

import "github.com/chiselstrike/tetris-stages/internal/cmd"

func main() {
	cmd.Execute()
}
