package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chiselstrike/tetris-stages/internal/stage"
)

func noFilesArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{}, cobra.ShellCompDirectiveNoFileComp
}

// stageArg completes the first argument with the first stage numbers
func stageArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	stages := make([]string, 0, 10)
	for n := 1; n <= 10 && n <= stage.MaxStage; n++ {
		stages = append(stages, strconv.Itoa(n))
	}
	return stages, cobra.ShellCompDirectiveNoFileComp
}

// parseStageArg parses a stage given either as a number or as an id like stage7
func parseStageArg(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n, stage.Validate(n)
	}
	return stage.ParseID(arg)
}
