// Package display turns ledger state into markdown views and renders them
// for the terminal. It defines the content of what is shown; the visual
// styling is delegated to glamour.
package display

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/potluck-dev/potluck/internal/ledger"
)

//go:embed templates/*.md
var templates embed.FS

// AccountRow is one line of the accounts table.
type AccountRow struct {
	Name string
	Diff string
}

// OperationRow is one line of the operations table.
type OperationRow struct {
	Index       int
	Kind        string
	Description string
}

// ExpenseRow is one line of the expenses table.
type ExpenseRow struct {
	Payer   string
	Amount  string
	Subject string
	Tags    string
}

type dashboardData struct {
	File          string
	Modified      string
	Users         int
	HasPot        bool
	PotBalance    string
	PotDiff       string
	PotForecast   string
	TotalExpenses string
	Accounts      []AccountRow
	Operations    []OperationRow
}

type expensesData struct {
	Filter   string
	Count    int
	Total    string
	Expenses []ExpenseRow
}

// Dashboard builds the full markdown view: summary, pot state, account
// diffs and the operation history, newest first.
func Dashboard(led *ledger.Ledger, path string, modified time.Time) string {
	state := led.State()
	data := dashboardData{
		File:          path,
		Users:         len(state.UserNames()),
		HasPot:        state.HasPot(),
		TotalExpenses: led.Expenses().Sum().String(),
		Accounts:      accountRows(state),
		Operations:    operationRows(led.Operations()),
	}
	if !modified.IsZero() {
		data.Modified = modified.Local().Format("2006-01-02 15:04:05")
	}
	if pot, ok := state.Pot(); ok {
		data.PotBalance = pot.Balance.String()
		data.PotDiff = pot.Diff.SignedString()
		data.PotForecast = potForecast(pot)
	}
	return render("dashboard.md", data)
}

// Accounts builds the standalone accounts view.
func Accounts(led *ledger.Ledger) string {
	state := led.State()
	data := dashboardData{
		HasPot:   state.HasPot(),
		Accounts: accountRows(state),
	}
	if pot, ok := state.Pot(); ok {
		data.PotBalance = pot.Balance.String()
		data.PotDiff = pot.Diff.SignedString()
		data.PotForecast = potForecast(pot)
	}
	return render("accounts.md", data)
}

// PlainAccounts renders "name: diff" lines without any markup, for scripts.
func PlainAccounts(led *ledger.Ledger) string {
	var b strings.Builder
	for _, row := range accountRows(led.State()) {
		fmt.Fprintf(&b, "%s: %s\n", row.Name, row.Diff)
	}
	return b.String()
}

// Operations builds the operation history view, newest first.
func Operations(led *ledger.Ledger) string {
	return render("operations.md", struct{ Operations []OperationRow }{operationRows(led.Operations())})
}

// Expenses builds the expense table with totals. The filter label describes
// the selection ("all", a tag name, "untagged").
func Expenses(expenses ledger.Expenses, filter string) string {
	data := expensesData{
		Filter: filter,
		Count:  len(expenses),
		Total:  expenses.Sum().String(),
	}
	for i := len(expenses) - 1; i >= 0; i-- {
		expense := expenses[i]
		data.Expenses = append(data.Expenses, ExpenseRow{
			Payer:   expense.Payer,
			Amount:  expense.Amount.String(),
			Subject: expense.Subject,
			Tags:    strings.Join(expense.Tags, ", "),
		})
	}
	return render("expenses.md", data)
}

// TagCounts builds the tag usage view.
func TagCounts(expenses ledger.Expenses) string {
	counts := expenses.TagCounts()
	var b strings.Builder
	b.WriteString("# Expense tags\n\n")
	if len(counts) == 0 {
		b.WriteString("no tags recorded\n")
		return b.String()
	}
	b.WriteString("| tag | expenses |\n|---|---|\n")
	for _, tag := range expenses.Tags() {
		fmt.Fprintf(&b, "| %s | %d |\n", tag, counts[tag])
	}
	return b.String()
}

// Render turns a markdown view into ANSI for the terminal. Style is a
// glamour style name, or "auto" to follow the terminal background.
func Render(markdown, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(0)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering view: %w", err)
	}
	return out, nil
}

func accountRows(state *ledger.State) []AccountRow {
	names := state.UserNames()
	sort.SliceStable(names, func(i, j int) bool {
		a, _ := state.Get(names[i])
		b, _ := state.Get(names[j])
		return a.Diff.Cmp(b.Diff) > 0
	})

	rows := make([]AccountRow, len(names))
	for i, name := range names {
		account, _ := state.Get(name)
		rows[i] = AccountRow{Name: name, Diff: account.Diff.SignedString()}
	}
	return rows
}

func operationRows(operations []ledger.Operation) []OperationRow {
	rows := make([]OperationRow, 0, len(operations))
	for i := len(operations) - 1; i >= 0; i-- {
		rows = append(rows, OperationRow{
			Index:       i + 1,
			Kind:        operationKind(operations[i]),
			Description: operations[i].Describe(),
		})
	}
	return rows
}

// operationKind returns the short type tag shown in the history table. The
// codec already names every variant, so reuse its tags.
func operationKind(op ledger.Operation) string {
	record, err := ledger.EncodeOperation(op)
	if err != nil {
		return "?"
	}
	return record.Operation
}

func potForecast(pot *ledger.Account) string {
	expected := pot.Balance.Add(pot.Diff)
	switch {
	case expected.IsNegative():
		return "deficit of " + expected.Neg().String()
	case expected.IsPositive():
		return "surplus of " + expected.String()
	default:
		return "settled"
	}
}

func render(file string, data any) string {
	content, err := templates.ReadFile("templates/" + file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(file).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}
