// Package ledger implements the group accounting core: accounts with actual
// balances and outstanding diffs, a validated ledger state, a closed set of
// operations, and the append-only record history with deterministic replay.
package ledger

import (
	"fmt"

	"github.com/potluck-dev/potluck/internal/money"
)

// Account is one ledger line. Balance is the money actually moved so far;
// Diff is the signed amount still expected to reach the fair state
// (positive = is owed money, negative = owes money).
type Account struct {
	Balance money.Money
	Diff    money.Money

	// nonNegative marks pooled funds: the balance may never drop below zero.
	nonNegative bool
}

// NewAccount returns an empty user account.
func NewAccount() *Account {
	return &Account{}
}

// newPotAccount returns an empty account whose balance cannot go negative.
func newPotAccount() *Account {
	return &Account{nonNegative: true}
}

// Settled reports whether the account has no outstanding diff.
func (a *Account) Settled() bool {
	return a.Diff.IsZero()
}

// ChangeDiff adds amount to the outstanding diff. Never fails; equilibrium
// is enforced at the state level, not per account.
func (a *Account) ChangeDiff(amount money.Money) {
	a.Diff = a.Diff.Add(amount)
}

// ChangeBalance adds amount to the balance. It does not touch the diff:
// expectation moves are driven explicitly by operations. Pot accounts refuse
// changes that would make the balance negative and stay unmodified.
func (a *Account) ChangeBalance(amount money.Money) error {
	next := a.Balance.Add(amount)
	if a.nonNegative && next.IsNegative() {
		return fmt.Errorf("%w: %s %s leaves %s", ErrNegativeBalance, a.Balance, amount.SignedString(), next)
	}
	a.Balance = next
	return nil
}

// clone returns an independent copy.
func (a *Account) clone() *Account {
	c := *a
	return &c
}
