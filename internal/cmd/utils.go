package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/athoscouto/codename"
	"github.com/olekukonko/tablewriter"

	"github.com/chiselstrike/tetris-stages/internal"
	"github.com/chiselstrike/tetris-stages/internal/flags"
	"github.com/chiselstrike/tetris-stages/internal/progress"
	"github.com/chiselstrike/tetris-stages/internal/settings"
	"github.com/chiselstrike/tetris-stages/internal/tetris"
)

func emph(a ...interface{}) string {
	return internal.Emph(a...)
}

func printTable(header []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}

// openLog points the game logger at the log file next to the settings.
// The returned function closes the file.
func openLog(config *settings.Settings) (*log.Logger, func(), error) {
	logFile, err := os.OpenFile(config.LogPath(), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file error: %w", err)
	}
	logger := log.New(logFile, "", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)
	tetris.SetLogger(logger)
	return logger, func() {
		tetris.SetLogger(nil)
		logFile.Close()
	}, nil
}

func openStore(ctx context.Context, config *settings.Settings) (*progress.Store, error) {
	store, err := progress.Open(ctx, config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open progress: %w", err)
	}
	return store, nil
}

func generatePlayerName() (string, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", err
	}
	return codename.Generate(rng, 0), nil
}

// ensurePlayer returns the configured player, picking a random name the first time
func ensurePlayer(config *settings.Settings) (string, error) {
	if player := config.GetPlayer(); player != "" {
		if err := settings.ValidatePlayer(player); err != nil {
			return "", fmt.Errorf("%w, rename it with %s", err, emph("tetris-stages config set player"))
		}
		return player, nil
	}
	player, err := generatePlayerName()
	if err != nil {
		return "", fmt.Errorf("could not generate a player name: %w", err)
	}
	if err := config.SetPlayer(player); err != nil {
		return "", err
	}
	if err := settings.PersistChanges(); err != nil {
		return "", err
	}
	fmt.Printf("Playing as %s. Change it with %s.\n", emph(player), emph("tetris-stages config set player <name>"))
	return player, nil
}

// gameListeners returns the listeners every session gets
func gameListeners() tetris.Listeners {
	listeners := tetris.Listeners{}
	if flags.Debug() {
		listeners = append(listeners, tetris.LogListener{})
	}
	return listeners
}
