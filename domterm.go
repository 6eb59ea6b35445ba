// Package domterm runs a vdom component tree inside the terminal.
//
//	func app(s *vdom.Scope) *vdom.Element {
//		n := vdom.UseSignal(s, func() int { return 0 })
//		vdom.UseFuture(s, func(ctx context.Context) { ... n.Set(...) ... })
//		return vdom.Textf("count %d", n.Get())
//	}
//
//	func main() {
//		if err := domterm.Launch(app); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The component's text becomes the status line above a command list and an
// output pane, both configured in ~/.config/domterm/config.toml. Launch
// blocks until q is pressed or the process is signalled, and always restores
// the terminal before returning.
package domterm

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/five82/domterm/internal/app"
	"github.com/five82/domterm/vdom"
)

// LaunchOptions override configuration for a launch.
type LaunchOptions struct {
	ConfigPath string // empty uses ~/.config/domterm/config.toml
	LogFile    string // empty uses the configured log file
	LogLevel   string // empty uses the configured level
}

// Launch runs root until the user quits or the process receives SIGINT or
// SIGTERM.
func Launch(root vdom.Component) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return LaunchContext(ctx, root, LaunchOptions{})
}

// LaunchContext runs root until the user quits or ctx ends. A nil root shows
// the configured status segments and the session uptime.
func LaunchContext(ctx context.Context, root vdom.Component, opts LaunchOptions) error {
	return app.Run(ctx, app.Options{
		ConfigPath: opts.ConfigPath,
		LogFile:    opts.LogFile,
		LogLevel:   opts.LogLevel,
		Root:       root,
	})
}
