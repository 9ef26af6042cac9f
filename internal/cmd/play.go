package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	tbl "github.com/charmbracelet/bubbles/table"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chiselstrike/tetris-stages/internal"
	"github.com/chiselstrike/tetris-stages/internal/progress"
	"github.com/chiselstrike/tetris-stages/internal/prompt"
	"github.com/chiselstrike/tetris-stages/internal/settings"
	"github.com/chiselstrike/tetris-stages/internal/sound"
	"github.com/chiselstrike/tetris-stages/internal/stage"
	"github.com/chiselstrike/tetris-stages/internal/tetris"
)

const minPickerStages = 5

func init() {
	rootCmd.AddCommand(playCmd)
	addContinueFlag(playCmd)
	addMuteFlag(playCmd)
}

var playCmd = &cobra.Command{
	Use:               "play [stage]",
	Short:             "Play a stage",
	Long:              "Play a stage. Every stage started uses one of the attempts of the day.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: stageArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if !prompt.IsInteractive() {
			return fmt.Errorf("play needs a terminal: %w", prompt.ErrNotInteractive)
		}

		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		player, err := ensurePlayer(config)
		if err != nil {
			return err
		}
		logger, closeLog, err := openLog(config)
		if err != nil {
			return err
		}
		defer closeLog()

		ctx := cmd.Context()
		store, err := openStore(ctx, config)
		if err != nil {
			return err
		}
		defer store.Close()

		var n int
		if len(args) == 1 {
			n, err = parseStageArg(args[0])
		} else {
			n, err = pickStage(ctx, store, player)
		}
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		if config.AttemptsLeft(player, time.Now()) == 0 {
			return fmt.Errorf("%s has %w, come back tomorrow", player, settings.ErrNoAttempts)
		}

		difficulty := config.GetDifficulty()
		interval, err := config.Interval(difficulty)
		if err != nil {
			return err
		}

		effects, err := sound.New(muteFlag || config.GetMute())
		if err != nil {
			fmt.Println(internal.Warn("Sound is off:"), err)
		}
		defer effects.Close()

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("could not open the terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("could not open the terminal: %w", err)
		}

		game := &game{
			screen:     screen,
			store:      store,
			logger:     logger,
			player:     player,
			difficulty: difficulty,
			interval:   interval,
			listeners:  append(gameListeners(), effects),
		}
		runs, err := game.playFrom(ctx, config, n)
		screen.Fini()

		printRuns(runs)
		left := config.AttemptsLeft(player, time.Now())
		fmt.Printf("%s attempts left today.\n", internal.Emph(left))
		if errors.Is(err, settings.ErrNoAttempts) {
			fmt.Println(internal.Warn("No attempts left, come back tomorrow."))
			return nil
		}
		return err
	},
}

// game plays stages on one screen
type game struct {
	screen     tcell.Screen
	store      *progress.Store
	logger     *log.Logger
	player     string
	difficulty string
	interval   time.Duration
	listeners  tetris.Listeners
}

// playFrom plays stage n and, with --continue, the stages after it while
// they are cleared. Every stage uses an attempt.
func (g *game) playFrom(ctx context.Context, config *settings.Settings, n int) ([]progress.Run, error) {
	runs := []progress.Run{}
	for {
		if _, err := config.UseAttempt(g.player, time.Now()); err != nil {
			return runs, err
		}
		if err := settings.PersistChanges(); err != nil {
			return runs, err
		}

		run, quit, err := g.playStage(ctx, n)
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)

		if quit || !run.Cleared || !continueFlag || n >= stage.MaxStage {
			return runs, nil
		}
		n++
	}
}

// playStage runs stage n until it ends or the player quits, and saves the run.
// quit is true when the player asked to stop playing.
func (g *game) playStage(ctx context.Context, n int) (run progress.Run, quit bool, err error) {
	g.logger.Printf("playStage %d start", n)
	defer g.logger.Printf("playStage %d end", n)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	recorder := progress.NewRecorder(g.store, nil, g.player, n, g.difficulty)
	listeners := append(tetris.Listeners{recorder}, g.listeners...)

	session := tetris.NewSession(stage.Generate(n, rng), g.interval, rng, listeners)
	view := tetris.NewView(g.screen, g.difficulty)
	engine := tetris.NewEngine(session, tetris.SystemClock{})
	engine.OnFrame(view.Draw)

	actions := make(chan tetris.Action, 8)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return engine.Run(gctx, tetris.DefaultFrameTime, actions)
	})
	group.Go(func() error {
		return tetris.ForwardKeys(gctx, g.screen, actions)
	})

	err = group.Wait()
	switch {
	case errors.Is(err, tetris.ErrQuit):
		quit = true
	case err != nil:
		return run, true, err
	default:
		if session.State() == tetris.StateGameOver {
			view.ShowGameOverAnimation(session)
		}
		view.ShowResult(session)
		quit = waitForKey(g.screen)
	}

	run, err = recorder.Save(ctx)
	if err != nil {
		return run, true, fmt.Errorf("failed to save the run: %w", err)
	}
	return run, quit, nil
}

// waitForKey blocks until a key is pressed and reports whether it was a quit key
func waitForKey(screen tcell.Screen) bool {
	for {
		switch event := screen.PollEvent().(type) {
		case nil:
			return true
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			return tetris.IsQuitKey(event)
		}
	}
}

// pickStage asks the player for a stage, starting on the first stage not cleared yet
func pickStage(ctx context.Context, store *progress.Store, player string) (int, error) {
	results, err := store.StageResults(ctx, player)
	if err != nil {
		return 0, err
	}
	highest, err := store.HighestCleared(ctx, player)
	if err != nil {
		return 0, err
	}

	byStage := make(map[int]progress.StageResult, len(results))
	for _, result := range results {
		byStage[result.Stage] = result
	}

	last := min(max(highest+1, minPickerStages), stage.MaxStage)
	columns := []tbl.Column{
		{Title: "STAGE", Width: 6},
		{Title: "GOAL", Width: 6},
		{Title: "GARBAGE", Width: 8},
		{Title: "STATUS", Width: 14},
	}
	rows := make([]tbl.Row, 0, last)
	for n := 1; n <= last; n++ {
		rows = append(rows, tbl.Row{
			strconv.Itoa(n),
			fmt.Sprintf("%d lines", stage.GoalCount(n)),
			strconv.Itoa(stage.GarbageRows(n)),
			stageStatus(byStage[n]),
		})
	}

	choice, err := prompt.Table(columns, rows, min(highest, last-1))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(choice)
}

func stageStatus(result progress.StageResult) string {
	switch {
	case result.Cleared:
		return "cleared " + strconv.Itoa(result.Score)
	case result.Attempts > 0:
		return fmt.Sprintf("%d tries", result.Attempts)
	}
	return ""
}

func printRuns(runs []progress.Run) {
	if len(runs) == 0 {
		return
	}
	data := make([][]string, 0, len(runs))
	for _, run := range runs {
		result := "lost"
		if run.Cleared {
			result = internal.Good("cleared")
		}
		data = append(data, []string{
			stage.ID(run.Stage),
			result,
			strconv.Itoa(run.Score),
			strconv.Itoa(run.Lines),
			run.EndedAt.Sub(run.StartedAt).Round(time.Second).String(),
		})
	}
	printTable([]string{"stage", "result", "score", "lines", "time"}, data)
}
