package ledger

import (
	"fmt"
	"strings"

	"github.com/potluck-dev/potluck/internal/money"
)

// Operation is one ledger-changing action. Operations are immutable values
// carrying only the data needed to reapply them; results are always derived
// fresh by applying to a state. The set is closed: the codec and the display
// layer switch exhaustively over it.
type Operation interface {
	// ApplyTo mutates a working copy of the state. The caller owns rollback:
	// on error the copy is discarded, never committed.
	ApplyTo(state *State) error
	// Describe returns the human-readable one-liner for the operation log.
	Describe() string
}

// -------- account management

// AddAccount creates a new user account.
type AddAccount struct {
	Name string
}

func (op AddAccount) ApplyTo(state *State) error {
	return state.AddAccount(op.Name)
}

func (op AddAccount) Describe() string {
	return "Add account " + op.Name
}

// RemoveAccount removes a settled account.
type RemoveAccount struct {
	Name string
}

func (op RemoveAccount) ApplyTo(state *State) error {
	return state.RemoveAccount(op.Name)
}

func (op RemoveAccount) Describe() string {
	return "Remove account " + op.Name
}

// AddPot creates the shared pot.
type AddPot struct{}

func (op AddPot) ApplyTo(state *State) error {
	return state.AddPot()
}

func (op AddPot) Describe() string {
	return "Add a common pot to the group"
}

// -------- debt movements

// Debt records that one account owes another, without money moving yet.
type Debt struct {
	Amount   money.Money
	Creditor string
	Debitor  string
	Subject  string
}

func (op Debt) ApplyTo(state *State) error {
	return state.CreateDebt(op.Amount, []string{op.Creditor}, []string{op.Debitor})
}

func (op Debt) Describe() string {
	return fmt.Sprintf("%s owes %s to %s for %s", op.Debitor, op.Amount, op.Creditor, op.Subject)
}

// TransferDebt moves an expected obligation from one debitor to another.
type TransferDebt struct {
	Amount     money.Money
	OldDebitor string
	NewDebitor string
}

func (op TransferDebt) ApplyTo(state *State) error {
	return state.CreateDebt(op.Amount, []string{op.OldDebitor}, []string{op.NewDebitor})
}

func (op TransferDebt) Describe() string {
	return fmt.Sprintf("%s covers %s of debt from %s", op.NewDebitor, op.Amount, op.OldDebitor)
}

// RequestContribution asks every user account for Amount, credited to the pot.
type RequestContribution struct {
	Amount money.Money
}

func (op RequestContribution) ApplyTo(state *State) error {
	if !state.HasPot() {
		return fmt.Errorf("%w: cannot request a contribution", ErrNoPot)
	}
	total := op.Amount.MulInt(int64(state.Len() - 1))
	return state.CreateDebt(total, []string{PotName}, nil)
}

func (op RequestContribution) Describe() string {
	return fmt.Sprintf("Request contribution of %s from everyone", op.Amount)
}

// -------- money movements

// SharedExpense records that one account paid for the whole group. The debt
// falls on the pot when one exists, otherwise it is split across everyone.
type SharedExpense struct {
	Amount  money.Money
	Payer   string
	Subject string
	Tags    []string
}

func (op SharedExpense) ApplyTo(state *State) error {
	if err := state.ChangeBalance(op.Payer, op.Amount.Neg()); err != nil {
		return err
	}
	if state.HasPot() {
		return state.CreateDebt(op.Amount, []string{op.Payer}, []string{PotName})
	}
	return state.CreateDebt(op.Amount, []string{op.Payer}, nil)
}

func (op SharedExpense) Describe() string {
	description := fmt.Sprintf("%s pays %s for %s", op.Payer, op.Amount, op.Subject)
	if len(op.Tags) > 0 {
		description += " [" + strings.Join(op.Tags, ", ") + "]"
	}
	return description
}

// Transfer records actual money sent between two accounts.
type Transfer struct {
	Amount   money.Money
	Sender   string
	Receiver string
}

func (op Transfer) ApplyTo(state *State) error {
	return state.InternalTransfer(op.Amount, op.Sender, op.Receiver)
}

func (op Transfer) Describe() string {
	return fmt.Sprintf("%s sends %s to %s", op.Sender, op.Amount, op.Receiver)
}

// Reimburse pays an account back out of the pot.
type Reimburse struct {
	Amount   money.Money
	Receiver string
}

func (op Reimburse) ApplyTo(state *State) error {
	if !state.HasPot() {
		return fmt.Errorf("%w: cannot reimburse", ErrNoPot)
	}
	return state.InternalTransfer(op.Amount, PotName, op.Receiver)
}

func (op Reimburse) Describe() string {
	return fmt.Sprintf("Reimburse %s to %s from the pot", op.Amount, op.Receiver)
}

// PaysContribution records an account paying its share into the pot.
type PaysContribution struct {
	Amount money.Money
	Sender string
}

func (op PaysContribution) ApplyTo(state *State) error {
	if !state.HasPot() {
		return fmt.Errorf("%w: cannot pay a contribution", ErrNoPot)
	}
	return state.InternalTransfer(op.Amount, op.Sender, PotName)
}

func (op PaysContribution) Describe() string {
	return fmt.Sprintf("%s contributes %s to the pot", op.Sender, op.Amount)
}
