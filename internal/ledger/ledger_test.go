package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potluck-dev/potluck/internal/money"
)

func threeUserLedger(t *testing.T) *Ledger {
	t.Helper()
	led := New()
	require.NoError(t, led.AddAccount("antoine"))
	require.NoError(t, led.AddAccount("baptiste"))
	require.NoError(t, led.AddAccount("renan"))
	return led
}

func TestLedgerEmpty(t *testing.T) {
	led := New()
	assert.Equal(t, 0, led.State().Len())
	assert.Empty(t, led.Operations())
	assert.Empty(t, led.Records())
}

func TestLedgerPopulate(t *testing.T) {
	led := threeUserLedger(t)
	assert.Equal(t, []Operation{
		AddAccount{Name: "antoine"},
		AddAccount{Name: "baptiste"},
		AddAccount{Name: "renan"},
	}, led.Operations())
	assert.Equal(t, []string{"antoine", "baptiste", "renan"}, led.State().Names())
}

func TestLedgerScenarioSharedExpenses(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.RecordSharedExpense(125, "antoine", "potatoes"))
	require.NoError(t, led.RecordTransfer(30, "baptiste", "antoine"))
	require.NoError(t, led.RecordTransferDebt(40, "renan", "baptiste"))
	require.NoError(t, led.RecordDebt(30, "baptiste", "renan", "lunch at baustelle"))

	state := led.State()
	requireAccount(t, state, "antoine", -95, 53.34)
	requireAccount(t, state, "baptiste", -30, -21.67)
	requireAccount(t, state, "renan", 0, -31.67)
	require.NoError(t, state.CheckEquilibrium())
}

func TestLedgerScenarioPot(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.AddPot())
	require.NoError(t, led.RequestContribution(50))
	require.NoError(t, led.PaysContribution(50, "antoine"))
	require.NoError(t, led.PaysContribution(30, "baptiste"))
	require.NoError(t, led.PaysContribution(50, "renan"))
	require.NoError(t, led.RecordSharedExpense(125, "antoine", "potatoes"))
	require.NoError(t, led.Reimburse(100, "antoine"))

	state := led.State()
	requireAccount(t, state, "antoine", -75, 25)
	requireAccount(t, state, "baptiste", -30, -20)
	requireAccount(t, state, "renan", -50, 0)
	requireAccount(t, state, PotName, 30, -5)
	require.NoError(t, state.CheckEquilibrium())
}

func TestLedgerEquilibriumAfterEveryOperation(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.AddPot())
	require.NoError(t, led.RequestContribution(33.33))
	require.NoError(t, led.PaysContribution(33.33, "antoine"))
	require.NoError(t, led.RecordSharedExpense(10, "renan", "coffee"))
	require.NoError(t, led.RecordDebt(7.77, "antoine", "baptiste", "taxi"))

	for i, record := range led.Records() {
		require.NoError(t, record.State.CheckEquilibrium(), "record %d", i+1)
	}
}

func TestLedgerApplyRollsBackOnFailure(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.RecordSharedExpense(90, "antoine", "groceries"))
	before := led.State()
	beforeOps := led.Operations()

	// Unknown payer fails mid-application, after the balance primitive would
	// have been consulted; nothing may leak into the committed state.
	err := led.RecordSharedExpense(10, "kriti", "ghost expense")
	require.ErrorIs(t, err, ErrUnknownAccount)

	after := led.State()
	assert.Equal(t, beforeOps, led.Operations())
	assert.Equal(t, before.Names(), after.Names())
	for _, name := range before.Names() {
		want, _ := before.Get(name)
		got, _ := after.Get(name)
		assert.True(t, want.Balance.Equal(got.Balance), "%s balance changed", name)
		assert.True(t, want.Diff.Equal(got.Diff), "%s diff changed", name)
	}
}

func TestLedgerRemoveAccountRequiresSettling(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.RecordDebt(10, "antoine", "renan", "lunch"))

	err := led.RemoveAccount("renan")
	require.ErrorIs(t, err, ErrNotSettled)

	// A balancing debt the other way settles renan; removal then succeeds.
	require.NoError(t, led.RecordDebt(10, "renan", "antoine", "payback"))
	require.NoError(t, led.RemoveAccount("renan"))
	assert.Equal(t, []string{"antoine", "baptiste"}, led.State().Names())
}

func TestLedgerExpenses(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.RecordSharedExpense(125, "antoine", "potatoes", "food"))
	require.NoError(t, led.RecordSharedExpense(60, "baptiste", "pumpkins", "food"))
	require.NoError(t, led.RecordTransfer(30, "baptiste", "antoine"))
	require.NoError(t, led.RecordSharedExpense(30, "renan", "endivias"))

	expenses := led.Expenses()
	require.Len(t, expenses, 3)
	assert.True(t, expenses.Sum().Equal(money.New(215)))
	assert.Len(t, expenses.WithTag("food"), 2)
	assert.Len(t, expenses.Untagged(), 1)
	assert.Equal(t, []string{"food"}, expenses.Tags())
	assert.Equal(t, map[string]int{"food": 2}, expenses.TagCounts())
}

func TestLedgerReplay(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.AddPot())
	require.NoError(t, led.RequestContribution(50))
	require.NoError(t, led.PaysContribution(50, "antoine"))
	require.NoError(t, led.RecordSharedExpense(125, "antoine", "potatoes"))

	replayed, err := Replay(led.Operations())
	require.NoError(t, err)

	assert.Equal(t, led.Operations(), replayed.Operations())
	want, got := led.State(), replayed.State()
	require.Equal(t, want.Names(), got.Names())
	for _, name := range want.Names() {
		w, _ := want.Get(name)
		g, _ := got.Get(name)
		assert.True(t, w.Balance.Equal(g.Balance), "%s balance", name)
		assert.True(t, w.Diff.Equal(g.Diff), "%s diff", name)
	}
}

func TestLedgerReplayFailsFast(t *testing.T) {
	_, err := Replay([]Operation{
		AddAccount{Name: "antoine"},
		Transfer{Amount: money.New(10), Sender: "antoine", Receiver: "kriti"},
		AddAccount{Name: "baptiste"},
	})
	require.ErrorIs(t, err, ErrUnknownAccount)
	assert.Contains(t, err.Error(), "operation 2")
}

func TestLedgerUndoLast(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.RecordSharedExpense(125, "antoine", "potatoes"))
	require.NoError(t, led.RecordTransfer(30, "baptiste", "antoine"))

	require.NoError(t, led.Undo(0))
	require.Len(t, led.Operations(), 4)
	requireAccount(t, led.State(), "baptiste", 0, -41.67)
}

func TestLedgerUndoByIndex(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.RecordSharedExpense(125, "antoine", "potatoes"))
	require.NoError(t, led.RecordTransfer(30, "baptiste", "antoine"))

	// Drop the shared expense (operation 4); the transfer replays on top of
	// the bare accounts.
	require.NoError(t, led.Undo(4))
	state := led.State()
	requireAccount(t, state, "antoine", 30, -30)
	requireAccount(t, state, "baptiste", -30, 30)
}

func TestLedgerUndoOutOfRange(t *testing.T) {
	led := New()
	require.Error(t, led.Undo(0))

	led = threeUserLedger(t)
	require.Error(t, led.Undo(7))
}

func TestLedgerUndoKeepsDependentOperationsValid(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.AddPot())
	require.NoError(t, led.PaysContribution(50, "antoine"))

	// Removing the pot creation would orphan the contribution; the undo must
	// fail and leave the ledger as it was.
	err := led.Undo(4)
	require.Error(t, err)
	require.Len(t, led.Operations(), 5)
	assert.True(t, led.State().HasPot())
}
