package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potluck-dev/potluck/internal/display"
	"github.com/potluck-dev/potluck/internal/ledgerfile"
)

func newAccountsCommand(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Show the state of the accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := ledgerfile.Load(a.ledgerPath)
			if err != nil {
				return err
			}
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), display.PlainAccounts(led))
				return nil
			}
			return renderTo(cmd, display.Accounts(led), a)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print without markup, one account per line")

	return cmd
}

func newOperationsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List recorded operations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := ledgerfile.Load(a.ledgerPath)
			if err != nil {
				return err
			}
			return renderTo(cmd, display.Operations(led), a)
		},
	}
}

// renderTo sends a markdown view through the terminal renderer.
func renderTo(cmd *cobra.Command, markdown string, a *app) error {
	out, err := display.Render(markdown, a.cfg.Display.Style)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
