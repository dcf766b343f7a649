// Package money computes the balances shown to the user. Stored account
// balances are opening values only; display balances always come from
// replaying transactions on top of them.
package money

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
)

// UnknownAccountLabel is displayed for dangling account references. A
// transaction whose account was deleted still renders, never errors.
const UnknownAccountLabel = "unknown account"

// Balance returns an account's displayed balance: the stored opening value
// plus income and minus expense across that account's transactions.
func Balance(account appdata.Account, txs []appdata.MoneyTransaction) decimal.Decimal {
	b := decimal.NewFromFloat(account.Balance)
	for _, tx := range txs {
		if tx.AccountID != account.ID {
			continue
		}
		amount := decimal.NewFromFloat(tx.Amount)
		if tx.Type == appdata.TxIncome {
			b = b.Add(amount)
		} else {
			b = b.Sub(amount)
		}
	}
	return b
}

// Total sums the displayed balances of the accounts flagged for inclusion.
func Total(accounts []appdata.Account, txs []appdata.MoneyTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if !a.IncludeInTotal {
			continue
		}
		total = total.Add(Balance(a, txs))
	}
	return total
}

// MonthTotals returns income and expense sums for the YYYY-MM month.
func MonthTotals(txs []appdata.MoneyTransaction, month string) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if !strings.HasPrefix(tx.Date, month) {
			continue
		}
		amount := decimal.NewFromFloat(tx.Amount)
		if tx.Type == appdata.TxIncome {
			income = income.Add(amount)
		} else {
			expense = expense.Add(amount)
		}
	}
	return income, expense
}

// AccountLabel resolves an account reference for display. Empty and dangling
// references both get the unknown-account placeholder.
func AccountLabel(accounts []appdata.Account, accountID string) string {
	if accountID == "" {
		return UnknownAccountLabel
	}
	for _, a := range accounts {
		if a.ID == accountID {
			return a.Name
		}
	}
	return UnknownAccountLabel
}

// Format renders a major-unit amount in the given ISO currency, e.g.
// Format(d, "RUB"). Unknown codes fall back to a plain decimal string.
func Format(amount decimal.Decimal, currency string) string {
	cur := gomoney.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction))
	return gomoney.New(minor.IntPart(), currency).Display()
}
