package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the user configuration for domterm.
type Config struct {
	Status   []string
	Commands []string
	Output   []string
	Layout   Layout
	Follow   Follow
	Keys     Keys
	Log      Log
}

// Layout controls pane sizing.
type Layout struct {
	CommandWidth int // minimum width of the command pane
}

// Follow describes an optional file tailed into the output pane.
type Follow struct {
	Path     string
	Lines    int
	Interval time.Duration
}

// Keys lists the key names bound to each action. Only Quit is bound by default.
type Keys struct {
	Quit   []string
	Up     []string
	Down   []string
	Top    []string
	Bottom []string
	Clear  []string
}

// Log configures the diagnostic log file.
type Log struct {
	File  string
	Level string
}

const (
	defaultConfigPath   = "~/.config/domterm/config.toml"
	defaultLogFile      = "~/.local/state/domterm/domterm.log"
	defaultLogLevel     = "info"
	defaultCommandWidth = 20
	defaultFollowLines  = 200
	defaultInterval     = time.Second
	defaultQuitKey      = "q"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Layout: Layout{CommandWidth: defaultCommandWidth},
		Follow: Follow{Lines: defaultFollowLines, Interval: defaultInterval},
		Keys:   Keys{Quit: []string{defaultQuitKey}},
		Log:    Log{File: mustExpand(defaultLogFile), Level: defaultLogLevel},
	}
}

type rawConfig struct {
	Status   []string `toml:"status"`
	Commands []string `toml:"commands"`
	Output   []string `toml:"output"`
	Layout   struct {
		CommandWidth int `toml:"command_width"`
	} `toml:"layout"`
	Follow struct {
		Path     string `toml:"path"`
		Lines    int    `toml:"lines"`
		Interval string `toml:"interval"`
	} `toml:"follow"`
	Keys struct {
		Quit   []string `toml:"quit"`
		Up     []string `toml:"up"`
		Down   []string `toml:"down"`
		Top    []string `toml:"top"`
		Bottom []string `toml:"bottom"`
		Clear  []string `toml:"clear"`
	} `toml:"keys"`
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return raw.resolve()
}

func (raw rawConfig) resolve() (Config, error) {
	cfg := Default()
	cfg.Status = raw.Status
	cfg.Commands = raw.Commands
	cfg.Output = raw.Output

	switch {
	case raw.Layout.CommandWidth < 0:
		return Config{}, fmt.Errorf("invalid config: layout.command_width must not be negative, got %d", raw.Layout.CommandWidth)
	case raw.Layout.CommandWidth > 0:
		cfg.Layout.CommandWidth = raw.Layout.CommandWidth
	}

	if p := strings.TrimSpace(raw.Follow.Path); p != "" {
		expanded, err := expandPath(p)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config: follow.path: %w", err)
		}
		cfg.Follow.Path = expanded
	}
	switch {
	case raw.Follow.Lines < 0:
		return Config{}, fmt.Errorf("invalid config: follow.lines must not be negative, got %d", raw.Follow.Lines)
	case raw.Follow.Lines > 0:
		cfg.Follow.Lines = raw.Follow.Lines
	}
	if s := strings.TrimSpace(raw.Follow.Interval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config: follow.interval: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid config: follow.interval must be positive, got %s", d)
		}
		cfg.Follow.Interval = d
	}

	if quit := cleanKeys(raw.Keys.Quit); len(quit) > 0 {
		cfg.Keys.Quit = quit
	}
	cfg.Keys.Up = cleanKeys(raw.Keys.Up)
	cfg.Keys.Down = cleanKeys(raw.Keys.Down)
	cfg.Keys.Top = cleanKeys(raw.Keys.Top)
	cfg.Keys.Bottom = cleanKeys(raw.Keys.Bottom)
	cfg.Keys.Clear = cleanKeys(raw.Keys.Clear)

	if f := strings.TrimSpace(raw.Log.File); f != "" {
		cfg.Log.File = mustExpand(f)
	}
	if l := strings.TrimSpace(raw.Log.Level); l != "" {
		cfg.Log.Level = strings.ToLower(l)
	}
	return cfg, nil
}

func cleanKeys(keys []string) []string {
	var out []string
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
