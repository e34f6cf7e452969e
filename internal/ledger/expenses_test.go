package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potluck-dev/potluck/internal/money"
)

func demoExpenses() Expenses {
	return Expenses{
		{Amount: money.New(25), Payer: "antoine", Subject: "wood", Tags: []string{"building"}},
		{Amount: money.New(12.40), Payer: "renan", Subject: "groceries", Tags: []string{"food"}},
		{Amount: money.New(8), Payer: "baptiste", Subject: "beers", Tags: []string{"food", "party"}},
		{Amount: money.New(60), Payer: "antoine", Subject: "van"},
	}
}

func TestExpensesSum(t *testing.T) {
	assert.Equal(t, money.New(105.40), demoExpenses().Sum())
	assert.Equal(t, money.Zero(), Expenses{}.Sum())
}

func TestExpensesWithTag(t *testing.T) {
	food := demoExpenses().WithTag("food")
	require.Len(t, food, 2)
	assert.Equal(t, money.New(20.40), food.Sum())

	assert.Empty(t, demoExpenses().WithTag("travel"))
}

func TestExpensesUntagged(t *testing.T) {
	untagged := demoExpenses().Untagged()
	require.Len(t, untagged, 1)
	assert.Equal(t, "van", untagged[0].Subject)
}

func TestExpensesTags(t *testing.T) {
	assert.Equal(t, []string{"building", "food", "party"}, demoExpenses().Tags())
	assert.Empty(t, Expenses{}.Tags())
}

func TestExpensesTagCounts(t *testing.T) {
	counts := demoExpenses().TagCounts()
	assert.Equal(t, map[string]int{"building": 1, "food": 2, "party": 1}, counts)
}

func TestLedgerExpensesCollectsSharedExpenses(t *testing.T) {
	led := threeUserLedger(t)
	require.NoError(t, led.RecordSharedExpense(30, "antoine", "wood", "building"))
	require.NoError(t, led.RecordTransfer(10, "baptiste", "antoine"))
	require.NoError(t, led.RecordSharedExpense(12, "renan", "groceries"))

	expenses := led.Expenses()
	require.Len(t, expenses, 2)
	assert.Equal(t, "wood", expenses[0].Subject)
	assert.Equal(t, "groceries", expenses[1].Subject)
	assert.Equal(t, money.New(42), expenses.Sum())
}
