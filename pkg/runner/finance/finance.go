package finance

import (
	"context"
	"fmt"
	"strings"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

type TxAdd struct {
	Date     string
	Type     string // income | expense
	Amount   float64
	Category string
	Account  string // account id or name, optional
	Note     string

	Session *session.Session
}

func (a *TxAdd) Do(ctx context.Context) error {
	if a.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	txType := appdata.TxType(a.Type)
	if txType != appdata.TxIncome && txType != appdata.TxExpense {
		return fmt.Errorf("unknown type %q, want income or expense", a.Type)
	}
	if strings.TrimSpace(a.Category) == "" {
		return fmt.Errorf("category required")
	}

	data := a.Session.Data()

	accountID := ""
	if a.Account != "" {
		account, err := findAccount(data.Money.Accounts, a.Account)
		if err != nil {
			return err
		}
		accountID = account.ID
	} else if len(data.Money.Accounts) > 0 {
		accountID = data.Money.Accounts[0].ID
	}

	date := a.Date
	if date == "" {
		date = ids.Today()
	}

	now := ids.NowISO()
	tx := appdata.MoneyTransaction{
		ID:        ids.New("tx"),
		Date:      date,
		Type:      txType,
		Amount:    a.Amount,
		Category:  a.Category,
		AccountID: accountID,
		Note:      a.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	data.Money.Transactions = append(data.Money.Transactions, tx)
	if !contains(data.Money.Categories, a.Category) {
		data.Money.Categories = append(data.Money.Categories, a.Category)
	}
	a.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Transactions(data.Settings, data.Money.Accounts, tx)
	return nil
}

type TxList struct {
	Date  string // exact day when set
	Month string // YYYY-MM when set

	Session *session.Session
}

func (l *TxList) Do(ctx context.Context) error {
	data := l.Session.Data()

	matched := make([]appdata.MoneyTransaction, 0, len(data.Money.Transactions))
	for _, tx := range data.Money.Transactions {
		if l.Date != "" && tx.Date != l.Date {
			continue
		}
		if l.Month != "" && !strings.HasPrefix(tx.Date, l.Month) {
			continue
		}
		matched = append(matched, tx)
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("transactions", len(matched))
	pp.Transactions(data.Settings, data.Money.Accounts, matched...)
	if l.Month != "" {
		pp.Budget(data.Settings, data.Money, l.Month)
	}
	return nil
}

type AccountAdd struct {
	Name           string
	Balance        float64 // opening balance
	ExcludeInTotal bool

	Session *session.Session
}

func (a *AccountAdd) Do(ctx context.Context) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("account name required")
	}

	now := ids.NowISO()
	account := appdata.Account{
		ID:             ids.New("account"),
		Name:           a.Name,
		Balance:        a.Balance,
		IncludeInTotal: !a.ExcludeInTotal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	data := a.Session.Data()
	data.Money.Accounts = append(data.Money.Accounts, account)
	a.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Accounts(data.Settings, data.Money)
	return nil
}

type Accounts struct {
	Session *session.Session
}

func (a *Accounts) Do(ctx context.Context) error {
	data := a.Session.Data()
	pp := printers.PrettyPrint{}
	pp.Title("accounts")
	pp.Accounts(data.Settings, data.Money)
	return nil
}

type Budget struct {
	Set   *float64 // new monthly budget when non-nil
	Month string   // defaults to the current month

	Session *session.Session
}

func (b *Budget) Do(ctx context.Context) error {
	data := b.Session.Data()

	if b.Set != nil {
		if *b.Set < 0 {
			return fmt.Errorf("budget must not be negative")
		}
		data.Money.MonthlyBudget = b.Set
		b.Session.Save(data)
	}

	month := b.Month
	if month == "" {
		month = ids.Today()[:7]
	}

	pp := printers.PrettyPrint{}
	pp.Budget(data.Settings, data.Money, month)
	return nil
}

func findAccount(accounts []appdata.Account, query string) (appdata.Account, error) {
	for _, a := range accounts {
		if a.ID == query || a.Name == query {
			return a, nil
		}
	}
	return appdata.Account{}, fmt.Errorf("no account %q", query)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
