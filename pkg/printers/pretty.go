package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/shopspring/decimal"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	moneyfmt "github.com/lastochkinroman/PersonalAssistantLite/pkg/money"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/workout"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Status prints a dismissable-style status line, e.g. after import/export.
func (pp *PrettyPrint) Status(msg string) {
	s := color.New(color.FgGreen)
	_, _ = s.Println(msg)
}

// Warn prints a non-fatal problem the user should see.
func (pp *PrettyPrint) Warn(msg string) {
	w := color.New(color.FgYellow)
	_, _ = w.Println(msg)
}

func (pp *PrettyPrint) Tasks(tasks ...appdata.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		extra := make([]string, 0, 2)
		if t.DueDate != "" {
			extra = append(extra, "due "+t.DueDate)
		}
		if len(t.Tags) > 0 {
			extra = append(extra, "#"+strings.Join(t.Tags, " #"))
		}
		row := []interface{}{box, priorityLabel(t.Priority), t.Title,
			color.New(color.Faint).Sprint(strings.Join(extra, "  "))}
		if pp.ShowID {
			row = append(row, color.New(color.FgHiYellow, color.Faint).Sprint(t.ID))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func priorityLabel(p appdata.Priority) string {
	switch p {
	case appdata.PriorityHigh:
		return color.New(color.FgRed, color.Bold).Sprint("high")
	case appdata.PriorityMed:
		return color.New(color.FgYellow).Sprint("med ")
	default:
		return color.New(color.Faint).Sprint("low ")
	}
}

// Transactions renders a transaction list with resolved account labels.
// Dangling references display a placeholder, never an error.
func (pp *PrettyPrint) Transactions(settings appdata.AppSettings, accounts []appdata.Account, txs ...appdata.MoneyTransaction) {
	if len(txs) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, tx := range txs {
		amount := moneyfmt.Format(decimal.NewFromFloat(tx.Amount), settings.Currency)
		sign := color.New(color.FgGreen).Sprint("+ " + amount)
		if tx.Type == appdata.TxExpense {
			sign = color.New(color.FgRed).Sprint("- " + amount)
		}
		row := []interface{}{tx.Date, sign, tx.Category,
			color.New(color.Faint).Sprint(moneyfmt.AccountLabel(accounts, tx.AccountID))}
		if tx.Note != "" {
			row = append(row, color.New(color.Faint, color.Italic).Sprint(tx.Note))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Accounts renders accounts with recomputed balances and the included total.
func (pp *PrettyPrint) Accounts(settings appdata.AppSettings, data appdata.MoneyData) {
	if len(data.Accounts) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range data.Accounts {
		balance := moneyfmt.Balance(a, data.Transactions)
		included := ""
		if !a.IncludeInTotal {
			included = color.New(color.Faint).Sprint("(excluded from total)")
		}
		tbl.AddRow(a.Name, moneyfmt.Format(balance, settings.Currency), included)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	total := moneyfmt.Total(data.Accounts, data.Transactions)
	t := color.New(color.Bold)
	_, _ = t.Printf("total  %s\n\n", moneyfmt.Format(total, settings.Currency))
}

// Budget renders the monthly income/expense split and remaining budget.
func (pp *PrettyPrint) Budget(settings appdata.AppSettings, data appdata.MoneyData, month string) {
	income, expense := moneyfmt.MonthTotals(data.Transactions, month)
	fmt.Printf("%s  income %s  expense %s\n", month,
		color.New(color.FgGreen).Sprint(moneyfmt.Format(income, settings.Currency)),
		color.New(color.FgRed).Sprint(moneyfmt.Format(expense, settings.Currency)))
	if data.MonthlyBudget != nil {
		remaining := decimal.NewFromFloat(*data.MonthlyBudget).Sub(expense)
		label := color.New(color.FgGreen)
		if remaining.IsNegative() {
			label = color.New(color.FgRed)
		}
		fmt.Printf("budget %s, remaining %s\n",
			moneyfmt.Format(decimal.NewFromFloat(*data.MonthlyBudget), settings.Currency),
			label.Sprint(moneyfmt.Format(remaining, settings.Currency)))
	}
	fmt.Println("")
}

// Workouts renders sessions with set volume and the best estimated 1RM.
func (pp *PrettyPrint) Workouts(sessions ...appdata.WorkoutSession) {
	if len(sessions) == 0 {
		pp.none()
		return
	}

	for _, s := range sessions {
		t := color.New(color.Bold)
		_, _ = t.Printf("%s  %s\n", s.Date, s.Title)
		if s.Notes != "" {
			_, _ = color.New(color.Faint, color.Italic).Printf("  %s\n", s.Notes)
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, ex := range s.Exercises {
			sets := make([]string, 0, len(ex.Sets))
			for _, set := range ex.Sets {
				sets = append(sets, fmt.Sprintf("%dx%g", set.Reps, set.Weight))
			}
			tbl.AddRow("  "+ex.Name, strings.Join(sets, " "))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		if best, exercise, ok := workout.BestSet(s); ok {
			_, _ = color.New(color.Faint).Printf("  best: %s %dx%g (est. 1RM %.1f)\n",
				exercise, best.Reps, best.Weight, workout.Epley(best))
		}
		fmt.Println("")
	}
}

func (pp *PrettyPrint) Diary(entries ...appdata.DiaryEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	for _, e := range entries {
		t := color.New(color.Bold)
		mood := ""
		if e.Mood != "" {
			mood = color.New(color.Faint).Sprintf("  (%s)", e.Mood)
		}
		_, _ = t.Printf("%s%s\n", e.Date, mood)
		fmt.Println(e.Content)
		if len(e.Tags) > 0 {
			_, _ = color.New(color.Faint).Printf("#%s\n", strings.Join(e.Tags, " #"))
		}
		fmt.Println("")
	}
}

func (pp *PrettyPrint) Events(events ...appdata.CalendarEvent) {
	if len(events) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range events {
		when := e.Date
		if e.Time != "" {
			when += " " + e.Time
		}
		extra := make([]string, 0, 2)
		if e.Duration != nil {
			extra = append(extra, fmt.Sprintf("%d min", *e.Duration))
		}
		if e.Location != "" {
			extra = append(extra, e.Location)
		}
		row := []interface{}{when, e.Title, color.New(color.Faint).Sprint(strings.Join(extra, ", "))}
		if pp.ShowID {
			row = append(row, color.New(color.FgHiYellow, color.Faint).Sprint(e.ID))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
