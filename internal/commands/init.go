package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potluck-dev/potluck/internal/ledger"
	"github.com/potluck-dev/potluck/internal/ledgerfile"
)

func newInitCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new empty ledger file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ledgerfile.Exists(a.ledgerPath) && !force {
				return fmt.Errorf("ledger file %s already exists (use --force to replace it)", a.ledgerPath)
			}
			if err := ledgerfile.Save(a.ledgerPath, ledger.New()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty ledger at %s\n", a.ledgerPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing ledger file")

	return cmd
}
