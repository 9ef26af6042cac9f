package tetris

import (
	"context"
	"errors"
	"runtime"

	"github.com/gdamore/tcell/v2"
)

// ErrQuit is returned by ForwardKeys when the player asks to quit
var ErrQuit = errors.New("quit")

// ActionForKey maps a key press to a player action
func ActionForKey(eventKey *tcell.EventKey) (Action, bool) {
	switch eventKey.Key() {
	case tcell.KeyLeft:
		return ActionMoveLeft, true
	case tcell.KeyRight:
		return ActionMoveRight, true
	case tcell.KeyDown:
		return ActionSoftDrop, true
	case tcell.KeyUp:
		return ActionRotate, true
	case tcell.KeyRune:
		switch eventKey.Rune() {
		case ' ':
			return ActionHardDrop, true
		case 'x':
			return ActionRotate, true
		}
	}
	return 0, false
}

// IsQuitKey reports whether the key ends the game
func IsQuitKey(eventKey *tcell.EventKey) bool {
	switch eventKey.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return eventKey.Rune() == 'q'
	}
	return false
}

// ForwardKeys polls screen events and sends the player actions they map to.
// It returns ErrQuit on a quit key, and nil on an interrupt event or once the
// screen is finalized. Actions are dropped when the channel is full.
func ForwardKeys(ctx context.Context, screen tcell.Screen, actions chan<- Action) error {
	logger.Println("ForwardKeys start")
	defer logger.Println("ForwardKeys end")

	for {
		event := screen.PollEvent()
		switch eventType := event.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if eventType.Key() == tcell.KeyCtrlL {
				// Ctrl l (lower case L) to log stack trace
				buffer := make([]byte, 1<<16)
				length := runtime.Stack(buffer, true)
				logger.Println("Stack trace")
				logger.Println(string(buffer[:length]))
				continue
			}
			if IsQuitKey(eventType) {
				return ErrQuit
			}
			action, ok := ActionForKey(eventType)
			if !ok {
				continue
			}
			select {
			case actions <- action:
			case <-ctx.Done():
				return nil
			default:
			}
		default:
			logger.Printf("event type %T", eventType)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}
