package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/chiselstrike/tetris-stages/internal/tetris"
)

const (
	appName = "tetris-stages"

	DefaultDifficulty = "easy"
	databaseFileName  = "progress.db"
	logFileName       = "tetris-stages.log"
)

// Difficulties lists the known difficulties from slowest to fastest
var Difficulties = []string{"easy", "medium", "hard"}

// ErrInvalidPlayer is returned for player names outside of [a-z0-9_-]
var ErrInvalidPlayer = errors.New("player names are 1 to 32 lowercase letters, digits, '-' or '_'")

var playerPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)

// ValidatePlayer checks that a player name can be used as a key for both
// the settings file and the progress store
func ValidatePlayer(player string) error {
	if !playerPattern.MatchString(player) {
		return fmt.Errorf("invalid player %q: %w", player, ErrInvalidPlayer)
	}
	return nil
}

// Intervals holds the drop interval of each difficulty in milliseconds
type Intervals struct {
	Easy   int `mapstructure:"easy" json:"easy"`
	Medium int `mapstructure:"medium" json:"medium"`
	Hard   int `mapstructure:"hard" json:"hard"`
}

type Settings struct {
	changed bool
	path    string
}

var settings *Settings

func ReadSettings() (*Settings, error) {
	if settings != nil {
		return settings, nil
	}

	configPath := configdir.LocalConfig(appName)
	configPathFlag := viper.GetString("config-path")
	if len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	viper.SetDefault("difficulty", DefaultDifficulty)
	viper.SetDefault("mute", false)
	viper.SetDefault("intervals", Intervals{
		Easy:   int(tetris.DifficultyIntervals["easy"].Milliseconds()),
		Medium: int(tetris.DifficultyIntervals["medium"].Milliseconds()),
		Hard:   int(tetris.DifficultyIntervals["hard"].Milliseconds()),
	})

	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := viper.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	settings = &Settings{path: configPath}
	return settings, nil
}

// PersistChanges writes the settings file if anything changed since it was read
func PersistChanges() error {
	if settings == nil || !settings.changed {
		return nil
	}
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}
	settings.changed = false
	return nil
}

// Reset forgets the loaded settings so the next ReadSettings starts over
func Reset() {
	settings = nil
	viper.Reset()
}

// Path is the directory holding the settings file
func (s *Settings) Path() string {
	return s.path
}

func (s *Settings) LogPath() string {
	return filepath.Join(s.path, logFileName)
}

func (s *Settings) GetPlayer() string {
	return viper.GetString("player")
}

func (s *Settings) SetPlayer(player string) error {
	if err := ValidatePlayer(player); err != nil {
		return err
	}
	viper.Set("player", player)
	s.changed = true
	return nil
}

func (s *Settings) GetDifficulty() string {
	difficulty := viper.GetString("difficulty")
	if !slices.Contains(Difficulties, difficulty) {
		return DefaultDifficulty
	}
	return difficulty
}

func (s *Settings) SetDifficulty(difficulty string) error {
	if !slices.Contains(Difficulties, difficulty) {
		return fmt.Errorf("unknown difficulty %s, use one of %v", difficulty, Difficulties)
	}
	viper.Set("difficulty", difficulty)
	s.changed = true
	return nil
}

func (s *Settings) GetMute() bool {
	return viper.GetBool("mute")
}

func (s *Settings) SetMute(mute bool) {
	viper.Set("mute", mute)
	s.changed = true
}

// GetDatabasePath returns the progress database file, next to the settings file unless configured
func (s *Settings) GetDatabasePath() string {
	if path := viper.GetString("database"); path != "" {
		return path
	}
	return filepath.Join(s.path, databaseFileName)
}

func (s *Settings) SetDatabasePath(path string) {
	viper.Set("database", path)
	s.changed = true
}

// GetIntervals returns the configured drop intervals, missing entries keep their default
func (s *Settings) GetIntervals() Intervals {
	intervals := Intervals{}
	if err := mapstructure.Decode(viper.Get("intervals"), &intervals); err != nil {
		intervals = Intervals{}
	}
	if intervals.Easy <= 0 {
		intervals.Easy = int(tetris.DifficultyIntervals["easy"].Milliseconds())
	}
	if intervals.Medium <= 0 {
		intervals.Medium = int(tetris.DifficultyIntervals["medium"].Milliseconds())
	}
	if intervals.Hard <= 0 {
		intervals.Hard = int(tetris.DifficultyIntervals["hard"].Milliseconds())
	}
	return intervals
}

// Interval is the drop interval of the given difficulty
func (s *Settings) Interval(difficulty string) (time.Duration, error) {
	intervals := s.GetIntervals()
	var ms int
	switch difficulty {
	case "easy":
		ms = intervals.Easy
	case "medium":
		ms = intervals.Medium
	case "hard":
		ms = intervals.Hard
	default:
		return 0, fmt.Errorf("unknown difficulty %s, use one of %v", difficulty, Difficulties)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
