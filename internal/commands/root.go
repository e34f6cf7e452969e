// Package commands wires the CLI. It maps user-facing verbs onto the
// ledger's recording methods and is the only layer that turns core errors
// into messages.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potluck-dev/potluck/internal/buildinfo"
	"github.com/potluck-dev/potluck/internal/config"
	"github.com/potluck-dev/potluck/internal/logging"
)

// app holds the settings resolved once before any command runs.
type app struct {
	cfg        *config.Config
	ledgerPath string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var file string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "potluck",
		Short:   "Shared group ledger: who owes whom after shared expenses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(config.EnvLogLevel)
			cfg, err := config.Load(config.DefaultPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.ledgerPath = cfg.Ledger.File
			if file != "" {
				a.ledgerPath = file
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", "", "ledger file (default from potluck.yaml)")

	rootCmd.AddCommand(
		newInitCommand(a),
		newAccountsCommand(a),
		newOperationsCommand(a),
		newExpensesCommand(a),
		newRecordCommand(a),
		newUndoCommand(a),
		newWatchCommand(a),
	)

	return rootCmd
}
