// Package cmd provides the command-line interface for lexfmt.
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	kongcompletion "github.com/jotaen/kong-completion"

	"github.com/lexfmt/lexfmt/internal/config"
	"github.com/lexfmt/lexfmt/internal/theme"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	// Global flags (apply to all commands)
	Verbose bool `help:"Enable verbose diagnostics" name:"verbose"  short:"v"` //nolint:lll,revive // Kong struct tag
	NoColor bool `help:"Disable colored output"     name:"no-color"`           //nolint:lll,revive // Kong struct tag

	// Commands
	Parse      ParseCmd                  `cmd:"" help:"Parse a document and print an artifact"` //nolint:lll,revive // Kong struct tag with alignment
	Watch      WatchCmd                  `cmd:"" help:"Re-parse a document on every change"`    //nolint:lll,revive // Kong struct tag with alignment
	Version    VersionCmd                `cmd:"" help:"Show version info"`                      //nolint:lll,revive // Kong struct tag with alignment
	Completion kongcompletion.Completion `cmd:"" help:"Generate completions"`                   //nolint:lll,revive // Kong struct tag with alignment
}

// AfterApply is called by Kong after parsing flags but before running the
// command. It loads the configuration, applies the theme, and sets up the
// verbose logger shared by the commands.
func (c *CLI) AfterApply() error {
	runtimeState.verbose = c.Verbose

	cfg, err := config.Load()
	if err != nil {
		// A broken config must not block parsing; fall back to the
		// defaults and say so on stderr.
		fmt.Fprintf(os.Stderr, "config ignored: %v\n", err)
		cfg = &config.Config{Theme: "default", Color: config.ColorAuto}
	}
	_ = theme.Load(cfg.Theme)

	useColor := false
	switch cfg.Color {
	case config.ColorAlways:
		useColor = true
	case config.ColorNever:
		useColor = false
	default:
		useColor = isatty.IsTerminal(os.Stdout.Fd())
	}
	if c.NoColor {
		useColor = false
	}

	runtimeState.color = useColor

	return nil
}

// runtimeState carries the settings AfterApply derived for the commands.
var runtimeState struct {
	color   bool
	verbose bool
	log     *zap.Logger
}

// logger returns the CLI diagnostics logger: a development-config zap
// logger when --verbose is set, a nop logger otherwise.
func logger() *zap.Logger {
	if runtimeState.log != nil {
		return runtimeState.log
	}

	if runtimeState.verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			runtimeState.log = log

			return log
		}
	}
	runtimeState.log = zap.NewNop()

	return runtimeState.log
}
