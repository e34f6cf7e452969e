package ledger

import "errors"

// Sentinel errors for the ledger core. Callers match them with errors.Is;
// the CLI layer is the only place they become user-facing messages.
var (
	// ErrInvalidName rejects empty account names.
	ErrInvalidName = errors.New("account name must not be empty")
	// ErrReservedName rejects user accounts named like the pot.
	ErrReservedName = errors.New("'" + PotName + "' is a reserved account name")
	// ErrDuplicateAccount rejects reusing a live account name.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrUnknownAccount is returned when a referenced name is absent.
	ErrUnknownAccount = errors.New("account does not exist")
	// ErrNotSettled blocks removing an account with outstanding diff.
	ErrNotSettled = errors.New("account is not settled")
	// ErrPotExists blocks creating a second pot.
	ErrPotExists = errors.New("ledger already has a pot")
	// ErrNoPot is returned by pot operations on a ledger without one.
	ErrNoPot = errors.New("ledger has no pot")
	// ErrNegativeBalance guards the pot against overdraft.
	ErrNegativeBalance = errors.New("balance cannot go negative")
	// ErrUnbalanced signals a non-equilibrated state after an operation.
	ErrUnbalanced = errors.New("accounts unbalanced")
	// ErrUnknownOperation is returned by the codec for unrecognized type tags.
	ErrUnknownOperation = errors.New("unknown operation")
)
