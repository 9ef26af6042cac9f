package settings

import (
	"errors"
	"time"
)

// AttemptsPerDay is how many stages a player may start each day
const AttemptsPerDay = 10

var ErrNoAttempts = errors.New("no attempts left today")

const attemptsCacheKeyPrefix = "attempts."

// attemptsKey expects a name accepted by ValidatePlayer, which keeps
// viper's case folding and dot splitting from merging two players
func attemptsKey(player string) string {
	return attemptsCacheKeyPrefix + player
}

// nextMidnight is the start of the day after now, in now's location
func nextMidnight(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, now.Location())
}

// AttemptsLeft returns how many attempts the player has left on the day of now
func (s *Settings) AttemptsLeft(player string, now time.Time) int {
	used, err := getCacheAt[int](attemptsKey(player), now)
	if err != nil {
		used = 0
	}
	return max(AttemptsPerDay-used, 0)
}

// UseAttempt consumes one of the player's attempts for the day of now and
// returns how many are left. The counter resets at the next local midnight.
func (s *Settings) UseAttempt(player string, now time.Time) (int, error) {
	left := s.AttemptsLeft(player, now)
	if left == 0 {
		return 0, ErrNoAttempts
	}
	used := AttemptsPerDay - left + 1
	SetCacheWithExp(attemptsKey(player), nextMidnight(now).Unix(), used)
	return AttemptsPerDay - used, nil
}

// ResetAttempts gives the player a full budget again
func (s *Settings) ResetAttempts(player string) {
	InvalidateCache[int](attemptsKey(player))
}
