package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/domterm"
)

var version = "dev" // set by the linker

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "domterm: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts domterm.LaunchOptions
	cmd := &cobra.Command{
		Use:   "domterm",
		Short: "Render a reactive component tree in the terminal",
		Long: `domterm shows a status line, a command list and an output pane built
from ~/.config/domterm/config.toml. The output pane can follow a file.
Press q to quit.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return domterm.LaunchContext(cmd.Context(), nil, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/domterm/config.toml)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "log file (default ~/.local/state/domterm/domterm.log)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	return cmd
}
