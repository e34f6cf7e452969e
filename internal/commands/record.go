package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/potluck-dev/potluck/internal/ledger"
	"github.com/potluck-dev/potluck/internal/ledgerfile"
)

func newRecordCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record operations on the ledger",
	}

	cmd.AddCommand(
		newAddUserCommand(a),
		newRemoveUserCommand(a),
		newAddPotCommand(a),
		newExpenseCommand(a),
		newTransferCommand(a),
		newTransferDebtCommand(a),
		newDebtCommand(a),
		newRequestContributionCommand(a),
		newContributionCommand(a),
		newReimburseCommand(a),
	)

	return cmd
}

// edit runs one recording callback inside a scoped load-edit-save session.
func (a *app) edit(fn func(*ledger.Ledger) error) error {
	return ledgerfile.Edit(a.ledgerPath, fn)
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func newAddUserCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-user NAME",
		Short: "Add a user account to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(led *ledger.Ledger) error {
				return led.AddAccount(args[0])
			})
		},
	}
}

func newRemoveUserCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-user NAME",
		Short: "Remove a settled user account from the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(led *ledger.Ledger) error {
				return led.RemoveAccount(args[0])
			})
		},
	}
}

func newAddPotCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-pot",
		Short: "Set up the shared pot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(led *ledger.Ledger) error {
				return led.AddPot()
			})
		},
	}
}

func newExpenseCommand(a *app) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "expense AMOUNT NAME SUBJECT",
		Short: "Record an expense made by a user for the whole group",
		Example: "  potluck record expense 25 antoine \"buy wood\"\n" +
			"  potluck record expense 12.40 renan groceries --tag food",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return a.edit(func(led *ledger.Ledger) error {
				return led.RecordSharedExpense(amount, args[1], args[2], tags...)
			})
		},
	}

	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag the expense (repeatable)")

	return cmd
}

func newTransferCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer AMOUNT FROM TO",
		Short: "Record money transferred from one user to another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return a.edit(func(led *ledger.Ledger) error {
				return led.RecordTransfer(amount, args[1], args[2])
			})
		},
	}
}

func newTransferDebtCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-debt AMOUNT FROM TO",
		Short: "Move an expected debt from one user onto another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return a.edit(func(led *ledger.Ledger) error {
				return led.RecordTransferDebt(amount, args[1], args[2])
			})
		},
	}
}

func newDebtCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "debt AMOUNT DEBITOR CREDITOR SUBJECT",
		Short: "Record a debt between two users",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return a.edit(func(led *ledger.Ledger) error {
				return led.RecordDebt(amount, args[2], args[1], args[3])
			})
		},
	}
}

func newRequestContributionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "request-contribution AMOUNT",
		Short: "Ask every user for a contribution to the pot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return a.edit(func(led *ledger.Ledger) error {
				return led.RequestContribution(amount)
			})
		},
	}
}

func newContributionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contribution AMOUNT NAME",
		Short: "Record a user paying into the pot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return a.edit(func(led *ledger.Ledger) error {
				return led.PaysContribution(amount, args[1])
			})
		},
	}
}

func newReimburseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reimburse AMOUNT NAME",
		Short: "Record money paid back from the pot to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return a.edit(func(led *ledger.Ledger) error {
				return led.Reimburse(amount, args[1])
			})
		},
	}
}
