// Package main is the entry point for the lazyhg dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyhg/internal/app"
	"github.com/chmouel/lazyhg/internal/buildinfo"
	"github.com/chmouel/lazyhg/internal/config"
	"github.com/chmouel/lazyhg/internal/log"
	"github.com/chmouel/lazyhg/internal/telemetry"
	"github.com/chmouel/lazyhg/internal/utils"
	"github.com/chmouel/lazyhg/internal/vcs"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// errNotTerminal is returned when stdin or stdout is not a terminal.
var errNotTerminal = errors.New("lazyhg must be run in an interactive terminal")

// runner captures the panel commands. Tests replace it.
var runner vcs.Runner = vcs.ExecRunner{}

// isTerminal reports whether the process is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // fd fits in int
}

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()

	if err := newCommand(os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand(errWriter io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "lazyhg",
		Usage:     "A terminal dashboard for Mercurial repositories",
		UsageText: "lazyhg",
		Version:   buildinfo.Summary(),
		ErrWriter: errWriter,
		Action:    runTUI,
	}
}

// runTUI captures every panel, then hands the terminal to the dashboard until
// the user quits.
func runTUI(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return fmt.Errorf("unexpected argument %q, lazyhg takes no arguments", cmd.Args().First())
	}

	errOut := cmd.Root().ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
	}

	// Debug logging is buffered until we know where it goes
	debugLog := cfg.DebugLog
	if debugLog != "" {
		if expanded, err := utils.ExpandPath(debugLog); err == nil {
			debugLog = expanded
		}
	}
	if err := log.SetFile(debugLog); err != nil {
		fmt.Fprintf(errOut, "Error opening debug log file %q: %v\n", debugLog, err)
	}
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(errOut, "Error closing debug log: %v\n", err)
		}
	}()

	shutdown, err := telemetry.Setup(ctx, cfg.TraceEndpoint)
	if err != nil {
		fmt.Fprintf(errOut, "Error setting up tracing: %v\n", err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	panels, err := vcs.Fetch(ctx, runner, cfg.VCS)
	if err != nil {
		return err
	}

	if !isTerminal() {
		return errNotTerminal
	}

	model := app.NewModel(cfg, panels)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err = p.Run()
	model.Close()
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
