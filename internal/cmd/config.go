package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/chiselstrike/tetris-stages/internal"
	"github.com/chiselstrike/tetris-stages/internal/prompt"
	"github.com/chiselstrike/tetris-stages/internal/settings"
)

var configKeys = []string{"player", "difficulty", "mute", "database"}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetAttemptsCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage your game settings",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a configuration value",
	Args:  cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		switch len(args) {
		case 0:
			return configKeys, cobra.ShellCompDirectiveNoFileComp
		case 1:
			switch args[0] {
			case "difficulty":
				return settings.Difficulties, cobra.ShellCompDirectiveNoFileComp
			case "mute":
				return []string{"on", "off"}, cobra.ShellCompDirectiveNoFileComp
			case "database":
				return nil, cobra.ShellCompDirectiveDefault
			}
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		value := ""
		if len(args) == 2 {
			value = args[1]
		}

		switch args[0] {
		case "player":
			if value == "" {
				if value, err = askPlayerName(config.GetPlayer()); err != nil {
					return err
				}
			}
			if err := config.SetPlayer(value); err != nil {
				return err
			}
			fmt.Println("Playing as", internal.Emph(value))
		case "difficulty":
			if err := config.SetDifficulty(value); err != nil {
				return err
			}
			fmt.Println("Difficulty is now", internal.Emph(value))
		case "mute":
			if value != "on" && value != "off" {
				return fmt.Errorf("mute must be either 'on' or 'off'")
			}
			config.SetMute(value == "on")
			fmt.Println("Mute is now", internal.Emph(value))
		case "database":
			if value == "" {
				return fmt.Errorf("database needs a path")
			}
			config.SetDatabasePath(value)
			fmt.Println("Progress is now stored at", internal.Emph(value))
		default:
			return fmt.Errorf("unknown config: %s", args[0])
		}

		return settings.PersistChanges()
	},
}

var configShowCmd = &cobra.Command{
	Use:               "show",
	Short:             "Show the configuration values",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		values := configValues(config)
		keys := maps.Keys(values)
		slices.Sort(keys)

		data := make([][]string, 0, len(keys))
		for _, key := range keys {
			data = append(data, []string{key, values[key]})
		}
		printTable([]string{"key", "value"}, data)
		return nil
	},
}

var configResetAttemptsCmd = &cobra.Command{
	Use:               "reset-attempts [player]",
	Short:             "Give a player back all the attempts of the day",
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
		if err := settings.ValidatePlayer(player); err != nil {
			return err
		}

		config.ResetAttempts(player)
		fmt.Printf("%s has %s attempts left today.\n", internal.Emph(player), internal.Emph(config.AttemptsLeft(player, time.Now())))
		return settings.PersistChanges()
	},
}

func configValues(config *settings.Settings) map[string]string {
	intervals := config.GetIntervals()
	mute := "off"
	if config.GetMute() {
		mute = "on"
	}
	return map[string]string{
		"player":           config.GetPlayer(),
		"difficulty":       config.GetDifficulty(),
		"mute":             mute,
		"database":         config.GetDatabasePath(),
		"settings":         config.Path(),
		"intervals.easy":   strconv.Itoa(intervals.Easy) + "ms",
		"intervals.medium": strconv.Itoa(intervals.Medium) + "ms",
		"intervals.hard":   strconv.Itoa(intervals.Hard) + "ms",
	}
}

func askPlayerName(current string) (string, error) {
	if !prompt.IsInteractive() {
		return "", fmt.Errorf("player needs a name: %w", prompt.ErrNotInteractive)
	}
	placeholder := current
	if placeholder == "" {
		name, err := generatePlayerName()
		if err != nil {
			return "", err
		}
		placeholder = name
	}
	return prompt.TextInput("Player name: ", placeholder, "")
}
