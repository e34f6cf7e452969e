package ledger

import (
	"fmt"

	"github.com/potluck-dev/potluck/internal/money"
)

// Record pairs an operation with the state that resulted from applying it.
// Records are append-only and never mutated once committed.
type Record struct {
	Operation Operation
	State     *State
}

// Ledger is the ordered history of applied operations. Its current state is
// the last record's state, or empty when no operation was applied yet.
type Ledger struct {
	records []Record
}

// New returns an empty in-memory ledger.
func New() *Ledger {
	return &Ledger{}
}

// Replay reconstructs a ledger by applying a persisted operation sequence to
// an empty state, in order. Any failure aborts the whole load: a log that
// does not replay cleanly cannot be trusted.
func Replay(operations []Operation) (*Ledger, error) {
	led := New()
	for i, op := range operations {
		if err := led.Apply(op); err != nil {
			return nil, fmt.Errorf("replaying operation %d (%s): %w", i+1, op.Describe(), err)
		}
	}
	return led, nil
}

// State returns a copy of the current state. The history stays immutable no
// matter what the caller does with the copy.
func (l *Ledger) State() *State {
	return l.currentState().Clone()
}

// Operations returns all applied operations in order.
func (l *Ledger) Operations() []Operation {
	ops := make([]Operation, len(l.records))
	for i, record := range l.records {
		ops[i] = record.Operation
	}
	return ops
}

// Records returns the full (operation, resulting state) history.
func (l *Ledger) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Expenses returns every shared expense recorded so far.
func (l *Ledger) Expenses() Expenses {
	var expenses Expenses
	for _, record := range l.records {
		if expense, ok := record.Operation.(SharedExpense); ok {
			expenses = append(expenses, expense)
		}
	}
	return expenses
}

// Apply runs an operation against a copy of the current state, checks the
// equilibrium invariant, and commits the copy as a new record. On any
// failure nothing is appended and the visible state is unchanged.
func (l *Ledger) Apply(operation Operation) error {
	working := l.currentState().Clone()
	if err := operation.ApplyTo(working); err != nil {
		return err
	}
	if err := working.CheckEquilibrium(); err != nil {
		return err
	}
	l.records = append(l.records, Record{Operation: operation, State: working})
	return nil
}

// Undo removes the operation at the 1-based index (the last one when index
// is 0) and replays the remainder, so every retained record state matches a
// fresh replay of the remaining log.
func (l *Ledger) Undo(index int) error {
	if len(l.records) == 0 {
		return fmt.Errorf("nothing to undo")
	}
	if index == 0 {
		index = len(l.records)
	}
	if index < 1 || index > len(l.records) {
		return fmt.Errorf("no operation at index %d", index)
	}

	remaining := make([]Operation, 0, len(l.records)-1)
	for i, record := range l.records {
		if i != index-1 {
			remaining = append(remaining, record.Operation)
		}
	}
	replayed, err := Replay(remaining)
	if err != nil {
		return fmt.Errorf("undoing operation %d: %w", index, err)
	}
	l.records = replayed.records
	return nil
}

// -------- convenience recorders
//
// These are the only mutating entry points the command layer uses. They
// convert raw numeric amounts to Money and delegate to Apply.

func (l *Ledger) AddAccount(name string) error {
	return l.Apply(AddAccount{Name: name})
}

func (l *Ledger) RemoveAccount(name string) error {
	return l.Apply(RemoveAccount{Name: name})
}

func (l *Ledger) AddPot() error {
	return l.Apply(AddPot{})
}

func (l *Ledger) RecordDebt(amount float64, creditor, debitor, subject string) error {
	return l.Apply(Debt{Amount: money.New(amount), Creditor: creditor, Debitor: debitor, Subject: subject})
}

func (l *Ledger) RecordSharedExpense(amount float64, payer, subject string, tags ...string) error {
	return l.Apply(SharedExpense{Amount: money.New(amount), Payer: payer, Subject: subject, Tags: tags})
}

func (l *Ledger) RecordTransfer(amount float64, sender, receiver string) error {
	return l.Apply(Transfer{Amount: money.New(amount), Sender: sender, Receiver: receiver})
}

func (l *Ledger) RecordTransferDebt(amount float64, oldDebitor, newDebitor string) error {
	return l.Apply(TransferDebt{Amount: money.New(amount), OldDebitor: oldDebitor, NewDebitor: newDebitor})
}

func (l *Ledger) RequestContribution(amount float64) error {
	return l.Apply(RequestContribution{Amount: money.New(amount)})
}

func (l *Ledger) PaysContribution(amount float64, sender string) error {
	return l.Apply(PaysContribution{Amount: money.New(amount), Sender: sender})
}

func (l *Ledger) Reimburse(amount float64, receiver string) error {
	return l.Apply(Reimburse{Amount: money.New(amount), Receiver: receiver})
}

func (l *Ledger) currentState() *State {
	if len(l.records) == 0 {
		return NewState()
	}
	return l.records[len(l.records)-1].State
}
