package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/xj9zitto/terminal-game-test/constants"
)

// Settings are the startup-time knobs: where the map comes from, how
// keys debounce, and what the session logs. Gameplay calibration
// (move/rotation steps, field of view, ray marching geometry) stays
// compile-time in the constants package; the renderer's quantized
// distances depend on it.
type Settings struct {
	HoldWindow time.Duration `mapstructure:"hold_window"`

	MapFile    string `mapstructure:"map_file"`
	TextureDir string `mapstructure:"texture_dir"`

	Maze MazeSettings `mapstructure:"maze"`

	Mute    bool   `mapstructure:"mute"`
	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log_file"`
}

// MazeSettings control generated maps. Enabled and map_file are
// mutually exclusive.
type MazeSettings struct {
	Enabled  bool    `mapstructure:"enabled"`
	Width    int     `mapstructure:"width"`
	Height   int     `mapstructure:"height"`
	Braiding float64 `mapstructure:"braiding"`
	Seed     int64   `mapstructure:"seed"`
}

// Load reads settings with precedence env > file > defaults. With an
// empty path it looks for an optional raywalk.toml in the working
// directory; an explicit path must exist.
func Load(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("hold_window", constants.HoldWindow)
	v.SetDefault("map_file", "")
	v.SetDefault("texture_dir", "")
	v.SetDefault("mute", false)
	v.SetDefault("debug", false)
	v.SetDefault("log_file", "raywalk.log")
	v.SetDefault("maze.enabled", false)
	v.SetDefault("maze.width", 21)
	v.SetDefault("maze.height", 15)
	v.SetDefault("maze.braiding", 0.15)
	v.SetDefault("maze.seed", 0)

	v.SetEnvPrefix("RAYWALK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("raywalk")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects settings the session cannot start with.
func (s *Settings) Validate() error {
	if s.HoldWindow <= 0 {
		return fmt.Errorf("hold_window must be positive, got %v", s.HoldWindow)
	}
	if s.MapFile != "" && s.Maze.Enabled {
		return fmt.Errorf("map_file and maze.enabled are mutually exclusive")
	}
	if s.Maze.Width < 2 || s.Maze.Height < 2 {
		return fmt.Errorf("maze dimensions must be at least 2x2, got %dx%d", s.Maze.Width, s.Maze.Height)
	}
	if s.Maze.Braiding < 0 || s.Maze.Braiding > 1 {
		return fmt.Errorf("maze.braiding must be in [0,1], got %v", s.Maze.Braiding)
	}
	return nil
}
