package ledger

import (
	"fmt"

	"github.com/potluck-dev/potluck/internal/money"
)

// Operation type tags used in the persisted log.
const (
	tagAddAccount          = "AddAccount"
	tagRemoveAccount       = "RemoveAccount"
	tagAddPot              = "AddPot"
	tagDebt                = "Debt"
	tagTransferDebt        = "TransferDebt"
	tagRequestContribution = "RequestContribution"
	tagSharedExpense       = "SharedExpense"
	tagTransfer            = "Transfer"
	tagReimburse           = "Reimburse"
	tagPaysContribution    = "PaysContribution"
)

// OpRecord is the flat serialized form of one operation: a type tag plus the
// variant's constructor arguments. Money travels as a plain float and is
// re-rounded to the cent on decode. The core defines this shape; writing it
// to a durable medium is the persistence adapter's job.
type OpRecord struct {
	Operation  string   `yaml:"operation"`
	Name       string   `yaml:"name,omitempty"`
	Amount     *float64 `yaml:"amount,omitempty"`
	Creditor   string   `yaml:"creditor,omitempty"`
	Debitor    string   `yaml:"debitor,omitempty"`
	OldDebitor string   `yaml:"old_debitor,omitempty"`
	NewDebitor string   `yaml:"new_debitor,omitempty"`
	Payer      string   `yaml:"payer,omitempty"`
	Sender     string   `yaml:"sender,omitempty"`
	Receiver   string   `yaml:"receiver,omitempty"`
	Subject    string   `yaml:"subject,omitempty"`
	Tags       []string `yaml:"tags,omitempty"`
}

// EncodeOperation converts an operation to its serialized record.
func EncodeOperation(operation Operation) (OpRecord, error) {
	switch op := operation.(type) {
	case AddAccount:
		return OpRecord{Operation: tagAddAccount, Name: op.Name}, nil
	case RemoveAccount:
		return OpRecord{Operation: tagRemoveAccount, Name: op.Name}, nil
	case AddPot:
		return OpRecord{Operation: tagAddPot}, nil
	case Debt:
		return OpRecord{
			Operation: tagDebt,
			Amount:    amountField(op.Amount),
			Creditor:  op.Creditor,
			Debitor:   op.Debitor,
			Subject:   op.Subject,
		}, nil
	case TransferDebt:
		return OpRecord{
			Operation:  tagTransferDebt,
			Amount:     amountField(op.Amount),
			OldDebitor: op.OldDebitor,
			NewDebitor: op.NewDebitor,
		}, nil
	case RequestContribution:
		return OpRecord{Operation: tagRequestContribution, Amount: amountField(op.Amount)}, nil
	case SharedExpense:
		return OpRecord{
			Operation: tagSharedExpense,
			Amount:    amountField(op.Amount),
			Payer:     op.Payer,
			Subject:   op.Subject,
			Tags:      op.Tags,
		}, nil
	case Transfer:
		return OpRecord{
			Operation: tagTransfer,
			Amount:    amountField(op.Amount),
			Sender:    op.Sender,
			Receiver:  op.Receiver,
		}, nil
	case Reimburse:
		return OpRecord{Operation: tagReimburse, Amount: amountField(op.Amount), Receiver: op.Receiver}, nil
	case PaysContribution:
		return OpRecord{Operation: tagPaysContribution, Amount: amountField(op.Amount), Sender: op.Sender}, nil
	default:
		return OpRecord{}, fmt.Errorf("%w: %T", ErrUnknownOperation, operation)
	}
}

// DecodeOperation converts a serialized record back into an operation.
func DecodeOperation(record OpRecord) (Operation, error) {
	switch record.Operation {
	case tagAddAccount:
		return AddAccount{Name: record.Name}, nil
	case tagRemoveAccount:
		return RemoveAccount{Name: record.Name}, nil
	case tagAddPot:
		return AddPot{}, nil
	case tagDebt:
		amount, err := recordAmount(record)
		if err != nil {
			return nil, err
		}
		return Debt{Amount: amount, Creditor: record.Creditor, Debitor: record.Debitor, Subject: record.Subject}, nil
	case tagTransferDebt:
		amount, err := recordAmount(record)
		if err != nil {
			return nil, err
		}
		return TransferDebt{Amount: amount, OldDebitor: record.OldDebitor, NewDebitor: record.NewDebitor}, nil
	case tagRequestContribution:
		amount, err := recordAmount(record)
		if err != nil {
			return nil, err
		}
		return RequestContribution{Amount: amount}, nil
	case tagSharedExpense:
		amount, err := recordAmount(record)
		if err != nil {
			return nil, err
		}
		return SharedExpense{Amount: amount, Payer: record.Payer, Subject: record.Subject, Tags: record.Tags}, nil
	case tagTransfer:
		amount, err := recordAmount(record)
		if err != nil {
			return nil, err
		}
		return Transfer{Amount: amount, Sender: record.Sender, Receiver: record.Receiver}, nil
	case tagReimburse:
		amount, err := recordAmount(record)
		if err != nil {
			return nil, err
		}
		return Reimburse{Amount: amount, Receiver: record.Receiver}, nil
	case tagPaysContribution:
		amount, err := recordAmount(record)
		if err != nil {
			return nil, err
		}
		return PaysContribution{Amount: amount, Sender: record.Sender}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, record.Operation)
	}
}

func amountField(m money.Money) *float64 {
	f := m.Float64()
	return &f
}

func recordAmount(record OpRecord) (money.Money, error) {
	if record.Amount == nil {
		return money.Money{}, fmt.Errorf("operation %q is missing its amount", record.Operation)
	}
	return money.New(*record.Amount), nil
}
