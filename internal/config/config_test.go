package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("Load = %#v, want defaults %#v", cfg, Default())
	}
	if cfg.Layout.CommandWidth != defaultCommandWidth {
		t.Fatalf("CommandWidth = %d, want %d", cfg.Layout.CommandWidth, defaultCommandWidth)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"q"}) {
		t.Fatalf("Keys.Quit = %v, want [q]", cfg.Keys.Quit)
	}
	if len(cfg.Keys.Up)+len(cfg.Keys.Down)+len(cfg.Keys.Top)+len(cfg.Keys.Bottom)+len(cfg.Keys.Clear) != 0 {
		t.Fatalf("navigation keys should be unbound by default: %#v", cfg.Keys)
	}
	if len(cfg.Commands) != 0 || len(cfg.Output) != 0 || len(cfg.Status) != 0 {
		t.Fatalf("content should be empty by default: %#v", cfg)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
status = ["dx run -i", "rust 1.70"]
commands = ["Console", "Configure", "Edit"]
output = ["Compiling dioxus v0.1.0"]

[layout]
command_width = 30

[follow]
path = "  ~/build.log  "
lines = 50
interval = "250ms"

[keys]
quit = [" q ", "ctrl+c", ""]
down = ["down", "j"]

[log]
file = "~/logs/dt.log"
level = " DEBUG "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Commands, []string{"Console", "Configure", "Edit"}) {
		t.Fatalf("Commands = %v", cfg.Commands)
	}
	if len(cfg.Status) != 2 || len(cfg.Output) != 1 {
		t.Fatalf("Status = %v, Output = %v", cfg.Status, cfg.Output)
	}
	if cfg.Layout.CommandWidth != 30 {
		t.Fatalf("CommandWidth = %d, want 30", cfg.Layout.CommandWidth)
	}
	if cfg.Follow.Path != filepath.Join(home, "build.log") {
		t.Fatalf("Follow.Path = %q, want it under HOME", cfg.Follow.Path)
	}
	if cfg.Follow.Lines != 50 || cfg.Follow.Interval != 250*time.Millisecond {
		t.Fatalf("Follow = %#v", cfg.Follow)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"q", "ctrl+c"}) {
		t.Fatalf("Keys.Quit = %q", cfg.Keys.Quit)
	}
	if !reflect.DeepEqual(cfg.Keys.Down, []string{"down", "j"}) {
		t.Fatalf("Keys.Down = %q", cfg.Keys.Down)
	}
	if !strings.HasPrefix(cfg.Log.File, home) || cfg.Log.Level != "debug" {
		t.Fatalf("Log = %#v", cfg.Log)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
[layout]
command_width = 0

[follow]
path = "   "
interval = ""

[keys]
quit = ["  "]

[log]
file = ""
level = "  "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("Load = %#v, want defaults %#v", cfg, Default())
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "toml", body: `commands = [`, want: "parse config"},
		{name: "negative width", body: "[layout]\ncommand_width = -1", want: "invalid config"},
		{name: "negative lines", body: "[follow]\nlines = -5", want: "invalid config"},
		{name: "bad interval", body: "[follow]\ninterval = \"soon\"", want: "follow.interval"},
		{name: "zero interval", body: "[follow]\ninterval = \"0s\"", want: "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
