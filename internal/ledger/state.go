package ledger

import (
	"fmt"

	"github.com/potluck-dev/potluck/internal/money"
)

// PotName is the reserved account name for pooled group funds.
const PotName = "POT"

// State maps account names to accounts, preserving insertion order. All
// mutations go through the validated primitives below; operations compose
// them and the ledger checks equilibrium after every application.
type State struct {
	names    []string
	accounts map[string]*Account
}

// NewState returns an empty state.
func NewState() *State {
	return &State{accounts: make(map[string]*Account)}
}

// Len returns the number of accounts, pot included.
func (s *State) Len() int {
	return len(s.names)
}

// Names returns all account names in insertion order.
func (s *State) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// UserNames returns all non-pot account names in insertion order.
func (s *State) UserNames() []string {
	var out []string
	for _, name := range s.names {
		if name != PotName {
			out = append(out, name)
		}
	}
	return out
}

// Get returns the account with the given name.
func (s *State) Get(name string) (*Account, bool) {
	a, ok := s.accounts[name]
	return a, ok
}

// HasPot reports whether the shared pot exists.
func (s *State) HasPot() bool {
	_, ok := s.accounts[PotName]
	return ok
}

// Pot returns the pot account.
func (s *State) Pot() (*Account, bool) {
	return s.Get(PotName)
}

// AddAccount inserts an empty user account under name.
func (s *State) AddAccount(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if name == PotName {
		return ErrReservedName
	}
	if _, exists := s.accounts[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, name)
	}
	s.insert(name, NewAccount())
	return nil
}

// RemoveAccount deletes the named account. Only settled accounts may leave:
// a non-zero diff is money the group still has to redistribute.
func (s *State) RemoveAccount(name string) error {
	account, ok := s.accounts[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, name)
	}
	if !account.Settled() {
		return fmt.Errorf("%w: %s has an outstanding diff of %s", ErrNotSettled, name, account.Diff.SignedString())
	}
	delete(s.accounts, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return nil
}

// AddPot inserts the shared pot. At most one pot may exist.
func (s *State) AddPot() error {
	if s.HasPot() {
		return ErrPotExists
	}
	s.insert(PotName, newPotAccount())
	return nil
}

// ChangeBalance adds amount to the named account's balance.
func (s *State) ChangeBalance(name string, amount money.Money) error {
	account, ok := s.accounts[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, name)
	}
	return account.ChangeBalance(amount)
}

// ChangeDiff adds amount to the named account's diff.
func (s *State) ChangeDiff(name string, amount money.Money) error {
	account, ok := s.accounts[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, name)
	}
	account.ChangeDiff(amount)
	return nil
}

// CreateDebt redistributes amount between two groups of accounts: each
// creditor's diff grows by its share of amount, each debitor's shrinks by
// its share. Both splits total amount exactly, so equilibrium is preserved
// by construction. A nil group means every non-pot account, in insertion
// order; the first member of each group absorbs the split remainder.
func (s *State) CreateDebt(amount money.Money, creditors, debitors []string) error {
	if creditors == nil {
		creditors = s.UserNames()
	}
	if debitors == nil {
		debitors = s.UserNames()
	}

	creditorShares, err := amount.DivideInto(len(creditors))
	if err != nil {
		return err
	}
	debitorShares, err := amount.DivideInto(len(debitors))
	if err != nil {
		return err
	}

	for i, name := range creditors {
		if err := s.ChangeDiff(name, creditorShares[i]); err != nil {
			return err
		}
	}
	for i, name := range debitors {
		if err := s.ChangeDiff(name, debitorShares[i].Neg()); err != nil {
			return err
		}
	}
	return nil
}

// InternalTransfer moves amount of actual balance from sender to receiver
// and retires the matching expectation: the sender's diff grows, the
// receiver's shrinks. An expected payment settles debt instead of creating
// new imbalance.
func (s *State) InternalTransfer(amount money.Money, sender, receiver string) error {
	if err := s.ChangeBalance(sender, amount.Neg()); err != nil {
		return err
	}
	if err := s.ChangeBalance(receiver, amount); err != nil {
		return err
	}
	if err := s.ChangeDiff(sender, amount); err != nil {
		return err
	}
	return s.ChangeDiff(receiver, amount.Neg())
}

// CheckEquilibrium verifies that all diffs sum to exactly zero. A non-zero
// sum means an operation was not debt-neutral.
func (s *State) CheckEquilibrium() error {
	sum := money.Zero()
	for _, name := range s.names {
		sum = sum.Add(s.accounts[name].Diff)
	}
	if !sum.IsZero() {
		return fmt.Errorf("%w: sum of diffs is %s", ErrUnbalanced, sum.SignedString())
	}
	return nil
}

// Clone returns a deep copy. Applying an operation to the copy can never
// touch a committed record's state.
func (s *State) Clone() *State {
	c := NewState()
	for _, name := range s.names {
		c.insert(name, s.accounts[name].clone())
	}
	return c
}

func (s *State) insert(name string, account *Account) {
	s.names = append(s.names, name)
	s.accounts[name] = account
}
