package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/potluck-dev/potluck/internal/display"
	"github.com/potluck-dev/potluck/internal/ledgerfile"
)

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the ledger dashboard on screen, refreshing on file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			last, redraw := time.Time{}, true
			for {
				modified, err := modificationTime(a.ledgerPath)
				if err != nil {
					return err
				}
				// Created, deleted or newer than last draw.
				if modified.IsZero() != last.IsZero() || modified.After(last) {
					last = modified
					redraw = true
				}
				if redraw {
					if err := drawDashboard(out, a, modified); err != nil {
						return err
					}
					redraw = false
				}
				time.Sleep(a.cfg.WatchInterval())
			}
		},
	}
}

// modificationTime returns the zero time when the ledger file is absent.
func modificationTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("watching ledger file: %w", err)
	}
	return info.ModTime(), nil
}

func drawDashboard(out io.Writer, a *app, modified time.Time) error {
	// Clear the screen and home the cursor between refreshes.
	fmt.Fprint(out, "\033[2J\033[H")

	if modified.IsZero() {
		fmt.Fprintf(out, "no ledger file at %s\n", a.ledgerPath)
		return nil
	}
	led, err := ledgerfile.Load(a.ledgerPath)
	if err != nil {
		// A half-written or broken file should not kill the watch loop.
		fmt.Fprintf(out, "cannot load %s: %v\n", a.ledgerPath, err)
		return nil
	}
	rendered, err := display.Render(display.Dashboard(led, a.ledgerPath, modified), a.cfg.Display.Style)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}
