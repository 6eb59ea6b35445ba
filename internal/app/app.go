package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/five82/domterm/internal/config"
	"github.com/five82/domterm/internal/logging"
	"github.com/five82/domterm/internal/state"
	"github.com/five82/domterm/internal/terminal"
	"github.com/five82/domterm/internal/ui"
	"github.com/five82/domterm/vdom"
)

// Options configure a domterm run.
type Options struct {
	ConfigPath string // empty uses ~/.config/domterm/config.toml
	LogFile    string // overrides the configured log file
	LogLevel   string // overrides the configured log level

	Root   vdom.Component  // nil shows StatusBar with the configured segments
	Device terminal.Device // nil uses the process TTY
}

// Run loads configuration, enters the terminal and runs the loop until the
// user quits, ctx ends or the terminal fails. The terminal is restored on
// every path.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logFile, logLevel := cfg.Log.File, cfg.Log.Level
	if opts.LogFile != "" {
		if logFile, err = config.ExpandPath(opts.LogFile); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
	}
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	closer, err := logging.Configure(logFile, logLevel)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer closer.Close()

	return runWithConfig(ctx, cfg, opts)
}

func runWithConfig(ctx context.Context, cfg config.Config, opts Options) (err error) {
	root := opts.Root
	if root == nil {
		root = StatusBar(cfg.Status)
	}
	dev := opts.Device
	if dev == nil {
		dev = terminal.TTY()
	}

	dom := vdom.New(root)
	defer dom.Close()

	ctx, cancel := context.WithCancel(ctx)
	store := &state.Store{}
	var followerDone <-chan struct{}
	if cfg.Follow.Path != "" {
		followerDone = StartFollower(ctx, store, FollowOptions{
			Path:     cfg.Follow.Path,
			Lines:    cfg.Follow.Lines,
			Interval: cfg.Follow.Interval,
		}, func() { dom.MarkDirty(vdom.RootScope) })
	}
	defer func() {
		cancel()
		if followerDone != nil {
			<-followerDone
		}
	}()

	session := terminal.NewSession(dev)
	if err := session.Enter(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, session.Exit())
	}()

	logging.L.Info("domterm started", "commands", len(cfg.Commands), "follow", cfg.Follow.Path)
	loop := ui.NewLoop(session, dom, ui.Options{
		Commands:        cfg.Commands,
		Output:          outputLines(cfg.Output, store),
		Keys:            cfg.Keys,
		MinCommandWidth: cfg.Layout.CommandWidth,
	})
	if err := loop.Run(ctx); err != nil {
		logging.Errorf("loop failed: %v", err)
		return err
	}
	logging.Infof("domterm %s", loop.State())
	return nil
}

// outputLines returns the configured lines followed by the followed file's
// tail and, once reads keep failing, a line describing the failure.
func outputLines(static []string, store *state.Store) func() []string {
	return func() []string {
		snap := store.Snapshot()
		out := slices.Concat(static, snap.Lines)
		if snap.IsStale() && snap.LastError != nil {
			out = append(out, fmt.Sprintf("! follow failed %d times: %v", snap.ConsecutiveFailures, snap.LastError))
		}
		return out
	}
}
