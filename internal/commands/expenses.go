package commands

import (
	"github.com/spf13/cobra"

	"github.com/potluck-dev/potluck/internal/display"
	"github.com/potluck-dev/potluck/internal/ledgerfile"
)

func newExpensesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Inspect shared expenses",
	}

	cmd.AddCommand(newExpensesListCommand(a), newExpensesTagsCommand(a))

	return cmd
}

func newExpensesListCommand(a *app) *cobra.Command {
	var tag string
	var untagged bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shared expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := ledgerfile.Load(a.ledgerPath)
			if err != nil {
				return err
			}
			expenses := led.Expenses()

			filter := "all"
			switch {
			case untagged:
				// --no-tag wins over --tag.
				expenses = expenses.Untagged()
				filter = "untagged"
			case tag != "":
				expenses = expenses.WithTag(tag)
				filter = tag
			}
			return renderTo(cmd, display.Expenses(expenses, filter), a)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only expenses carrying this tag")
	cmd.Flags().BoolVar(&untagged, "no-tag", false, "only expenses without any tag")

	return cmd
}

func newExpensesTagsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags found in the recorded expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := ledgerfile.Load(a.ledgerPath)
			if err != nil {
				return err
			}
			return renderTo(cmd, display.TagCounts(led.Expenses()), a)
		},
	}
}
