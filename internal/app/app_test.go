package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/domterm/internal/state"
	"github.com/five82/domterm/internal/terminal"
	"github.com/five82/domterm/vdom"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func waitForLines(t *testing.T, dev *terminal.Simulated, errc <-chan error, cond func([]string) bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if dev.Screen() != nil {
			if lines := dev.Lines(); cond(lines) {
				return
			}
		}
		select {
		case err := <-errc:
			t.Fatalf("Run exited early: %v", err)
		case <-time.After(5 * time.Millisecond):
		}
	}
	t.Fatalf("timed out; screen:\n%s", strings.Join(dev.Lines(), "\n"))
}

func runAsync(ctx context.Context, opts Options) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- Run(ctx, opts) }()
	return errc
}

func TestRunQuitRestoresTerminal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := writeConfig(t, `
status = ["dx run -i"]
commands = ["Console", "Configure"]
output = ["Compiling dioxus v0.1.0"]
`)
	dev := terminal.NewSimulated(60, 10)
	logPath := filepath.Join(t.TempDir(), "domterm.log")
	errc := runAsync(context.Background(), Options{ConfigPath: cfg, Device: dev, LogFile: logPath, LogLevel: "debug"})

	waitForLines(t, dev, errc, func(lines []string) bool {
		return len(lines) > 2 && strings.HasPrefix(lines[0], "dx run -i") && strings.HasSuffix(lines[0], "q quit") &&
			strings.Contains(lines[2], "Console") && strings.Contains(lines[2], "Compiling dioxus")
	})
	if !dev.Raw() {
		t.Fatalf("terminal should be raw while running")
	}

	if err := dev.PressRune('q'); err != nil {
		t.Fatalf("PressRune: %v", err)
	}
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after quit")
	}
	if dev.Raw() {
		t.Fatalf("terminal still raw after Run returned")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{"theme=Nightfox", "domterm stopped"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("log missing %q:\n%s", want, data)
		}
	}
}

func TestRunDrawFailureRestoresTerminal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dev := terminal.NewSimulated(40, 8)
	errc := runAsync(context.Background(), Options{
		ConfigPath: writeConfig(t, ""),
		Device:     dev,
		Root:       func(s *vdom.Scope) *vdom.Element { return vdom.Text("ready") },
	})
	waitForLines(t, dev, errc, func(lines []string) bool { return len(lines) > 0 && strings.HasPrefix(lines[0], "ready") })

	boom := errors.New("broken pipe")
	dev.Fail(boom)
	_ = dev.PressRune('x')

	var err error
	select {
	case err = <-errc:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after a draw failure")
	}
	var ioErr *terminal.IOError
	if !errors.As(err, &ioErr) || ioErr.Op != terminal.OpDraw || !errors.Is(err, boom) {
		t.Fatalf("Run = %v, want a draw IOError wrapping %v", err, boom)
	}
	if dev.Raw() {
		t.Fatalf("terminal left raw after a draw failure")
	}
}

func TestRunContextCancelStops(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dev := terminal.NewSimulated(40, 8)
	ctx, cancel := context.WithCancel(context.Background())
	errc := runAsync(ctx, Options{ConfigPath: writeConfig(t, ""), Device: dev})
	waitForLines(t, dev, errc, func(lines []string) bool { return len(lines) > 0 && strings.HasPrefix(lines[0], "up ") })

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run = %v, want nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
	if dev.Raw() {
		t.Fatalf("terminal still raw after cancel")
	}
}

func TestRunFollowsFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	followed := filepath.Join(t.TempDir(), "build.log")
	cfg := writeConfig(t, `
[follow]
path = "`+filepath.ToSlash(followed)+`"
interval = "10ms"
`)
	dev := terminal.NewSimulated(60, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := runAsync(ctx, Options{ConfigPath: cfg, Device: dev})
	waitForLines(t, dev, errc, func(lines []string) bool { return len(lines) > 1 && strings.Contains(lines[1], "Output") })

	if err := os.WriteFile(followed, []byte("Finished dev profile\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	waitForLines(t, dev, errc, func(lines []string) bool {
		return len(lines) > 2 && strings.Contains(lines[2], "Finished dev profile")
	})

	cancel()
	if err := <-errc; err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
}

func TestRunEnterFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dev := terminal.NewSimulated(40, 8)
	dev.FailOpen(terminal.ErrNotTerminal)

	err := Run(context.Background(), Options{ConfigPath: writeConfig(t, ""), Device: dev})
	var ioErr *terminal.IOError
	if !errors.As(err, &ioErr) || ioErr.Op != terminal.OpEnter {
		t.Fatalf("Run = %v, want an enter IOError", err)
	}
}

func TestRunBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	err := Run(context.Background(), Options{ConfigPath: writeConfig(t, "commands = ["), Device: terminal.NewSimulated(10, 5)})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run = %v, want a load config error", err)
	}
}

func TestOutputLinesAppendsFailure(t *testing.T) {
	var store state.Store
	out := outputLines([]string{"static"}, &store)
	if got := out(); len(got) != 1 || got[0] != "static" {
		t.Fatalf("output = %q", got)
	}
	store.Update([]string{"tail"}, nil)
	store.Update(nil, errors.New("gone"))
	store.Update(nil, errors.New("gone"))
	got := out()
	if len(got) != 3 || got[1] != "tail" || !strings.Contains(got[2], "follow failed 2 times: gone") {
		t.Fatalf("output = %q", got)
	}
}
