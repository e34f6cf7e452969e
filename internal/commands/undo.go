package commands

import (
	"github.com/spf13/cobra"

	"github.com/potluck-dev/potluck/internal/ledger"
)

func newUndoCommand(a *app) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Remove an operation and replay the rest (the last one by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(led *ledger.Ledger) error {
				return led.Undo(index)
			})
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "1-based operation index to remove")

	return cmd
}
