package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chiselstrike/tetris-stages/internal/flags"
)

var rootCmd = &cobra.Command{
	Use:     "tetris-stages",
	Version: version,
	Long:    "Falling blocks, one stage at a time",
}

func init() {
	if err := flags.AddConfigPath(rootCmd); err != nil {
		panic(err)
	}
	flags.AddDebugFlag(rootCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
