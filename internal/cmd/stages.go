package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/chiselstrike/tetris-stages/internal/stage"
)

const defaultStagesCount = 10

func init() {
	rootCmd.AddCommand(stagesCmd)
}

var stagesCmd = &cobra.Command{
	Use:               "stages [count]",
	Short:             "List the first stages and what they ask for",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		count := defaultStagesCount
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("count must be a positive number, got %q", args[0])
			}
			count = min(n, stage.MaxStage)
		}

		columns := make([]interface{}, 0)
		columns = append(columns, "STAGE")
		columns = append(columns, "ID")
		columns = append(columns, "GOAL")
		columns = append(columns, "GARBAGE ROWS")

		tbl := table.New(columns...)

		columnFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
		tbl.WithFirstColumnFormatter(columnFmt)

		for n := 1; n <= count; n++ {
			tbl.AddRow(n, stage.ID(n), fmt.Sprintf("clear %d lines", stage.GoalCount(n)), stage.GarbageRows(n))
		}
		tbl.Print()

		return nil
	},
}
