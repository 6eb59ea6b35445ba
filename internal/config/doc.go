// Package config loads domterm's TOML configuration.
//
// The file lives at ~/.config/domterm/config.toml unless a path is given. A
// missing file is not an error: Load returns Default(). Blank values fall
// back to their defaults, paths beginning with ~ are expanded, and key lists
// are trimmed.
//
//	status   = ["dx run -i", "rust 1.70 | stable"]
//	commands = ["Console", "Configure", "Edit"]
//	output   = ["Compiling dioxus v0.1.0"]
//
//	[layout]
//	command_width = 20
//
//	[follow]
//	path     = "~/build.log"
//	lines    = 200
//	interval = "1s"
//
//	[keys]
//	quit = ["q", "ctrl+c"]
//	up   = ["up", "k"]
//	down = ["down", "j"]
//
//	[log]
//	file  = "~/.local/state/domterm/domterm.log"
//	level = "info"
//
// Only quit is bound out of the box. Navigation keys stay unbound until the
// file lists them.
//
// Errors are wrapped with the stage that failed: "open config", "read
// config", "parse config" or "invalid config".
package config
