package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/chiselstrike/tetris-stages/internal"
	"github.com/chiselstrike/tetris-stages/internal/flags"
	"github.com/chiselstrike/tetris-stages/internal/progress"
	"github.com/chiselstrike/tetris-stages/internal/settings"
)

var addrFlag string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addrFlag, "addr", "127.0.0.1:8080", "Address the progress API listens on.")
}

var serveCmd = &cobra.Command{
	Use:               "serve",
	Short:             "Serve the stored progress as a JSON API",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := openStore(ctx, config)
		if err != nil {
			return err
		}
		defer store.Close()

		if !flags.Debug() {
			gin.SetMode(gin.ReleaseMode)
		}
		server := &http.Server{Addr: addrFlag, Handler: progress.NewRouter(store)}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()
		fmt.Printf("%s progress API listening on %s\n", internal.Emph("→  "), internal.Emph("http://"+addrFlag))

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("progress API stopped: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop the progress API: %w", err)
		}
		return nil
	},
}
