package money

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
)

func TestBalanceRecomputedFromTransactions(t *testing.T) {
	account := appdata.Account{ID: "acc1", Name: "Main", Balance: 0, IncludeInTotal: true}
	txs := []appdata.MoneyTransaction{
		{ID: "tx1", AccountID: "acc1", Type: appdata.TxIncome, Amount: 100},
		{ID: "tx2", AccountID: "acc1", Type: appdata.TxExpense, Amount: 30},
		{ID: "tx3", AccountID: "other", Type: appdata.TxIncome, Amount: 999},
	}

	got := Balance(account, txs)
	if !got.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("expected 70, got %s", got)
	}
}

func TestBalanceUsesStoredValueAsOpening(t *testing.T) {
	account := appdata.Account{ID: "acc1", Balance: 50}
	txs := []appdata.MoneyTransaction{
		{AccountID: "acc1", Type: appdata.TxExpense, Amount: 20},
	}
	if got := Balance(account, txs); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected 30, got %s", got)
	}
}

func TestTotalHonorsIncludeInTotal(t *testing.T) {
	accounts := []appdata.Account{
		{ID: "a", Balance: 100, IncludeInTotal: true},
		{ID: "b", Balance: 40, IncludeInTotal: false},
	}
	if got := Total(accounts, nil); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected 100, got %s", got)
	}
}

func TestMonthTotals(t *testing.T) {
	txs := []appdata.MoneyTransaction{
		{Date: "2024-03-01", Type: appdata.TxIncome, Amount: 200},
		{Date: "2024-03-15", Type: appdata.TxExpense, Amount: 50},
		{Date: "2024-04-01", Type: appdata.TxExpense, Amount: 999},
	}
	income, expense := MonthTotals(txs, "2024-03")
	if !income.Equal(decimal.NewFromInt(200)) || !expense.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected 200/50, got %s/%s", income, expense)
	}
}

func TestAccountLabelToleratesDanglingReference(t *testing.T) {
	accounts := []appdata.Account{{ID: "a", Name: "Main"}}
	if got := AccountLabel(accounts, "a"); got != "Main" {
		t.Fatalf("expected Main, got %q", got)
	}
	if got := AccountLabel(accounts, "deleted"); got != UnknownAccountLabel {
		t.Fatalf("expected placeholder for dangling reference, got %q", got)
	}
	if got := AccountLabel(accounts, ""); got != UnknownAccountLabel {
		t.Fatalf("expected placeholder for absent reference, got %q", got)
	}
}

func TestFormatKnownAndUnknownCurrency(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)
	if got := Format(amount, "XXX-NOT-A-CODE"); got != "1234.50 XXX-NOT-A-CODE" {
		t.Fatalf("unexpected fallback format: %q", got)
	}
	if got := Format(amount, "RUB"); got == "" {
		t.Fatalf("expected formatted RUB amount")
	}
}
