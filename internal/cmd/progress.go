package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/chiselstrike/tetris-stages/internal"
	"github.com/chiselstrike/tetris-stages/internal/settings"
	"github.com/chiselstrike/tetris-stages/internal/stage"
)

func init() {
	rootCmd.AddCommand(progressCmd)
}

var progressCmd = &cobra.Command{
	Use:               "progress [player]",
	Short:             "Show the stages a player has played",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		player := config.GetPlayer()
		if len(args) == 1 {
			player = args[0]
		}
		if player == "" {
			fmt.Printf("No player yet. Set one with %s.\n", internal.Emph("tetris-stages config set player"))
			return nil
		}
		if err := settings.ValidatePlayer(player); err != nil {
			return err
		}

		ctx := cmd.Context()
		store, err := openStore(ctx, config)
		if err != nil {
			return err
		}
		defer store.Close()

		results, err := store.StageResults(ctx, player)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("%s has not played any stage yet.\n", internal.Emph(player))
			return nil
		}
		highest, err := store.HighestCleared(ctx, player)
		if err != nil {
			return err
		}

		data := make([][]string, 0, len(results))
		for _, result := range results {
			cleared := "no"
			score := "-"
			if result.Cleared {
				cleared = internal.Good("yes")
				score = strconv.Itoa(result.Score)
			}
			data = append(data, []string{
				stage.ID(result.Stage),
				cleared,
				score,
				strconv.Itoa(result.Attempts),
				humanize.Time(result.LastPlayed),
			})
		}
		printTable([]string{"stage", "cleared", "score", "attempts", "last played"}, data)

		fmt.Println()
		if highest > 0 {
			fmt.Printf("Highest stage cleared: %s.\n", internal.Emph(highest))
		}
		fmt.Printf("%s attempts left today.\n", internal.Emph(config.AttemptsLeft(player, time.Now())))
		return nil
	},
}
