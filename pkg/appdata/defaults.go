package appdata

import "github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"

// DefaultAccountID is the fixed id of the account synthesized for fresh and
// migrated datasets.
const DefaultAccountID = "default"

const defaultAccountName = "Основной счёт"

var defaultCategories = []string{
	"Еда", "Транспорт", "Дом", "Здоровье", "Развлечения", "Подписки", "Прочее", "Зарплата",
}

func defaultAccount(now string) Account {
	return Account{
		ID:             DefaultAccountID,
		Name:           defaultAccountName,
		Balance:        0,
		IncludeInTotal: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Empty returns a fresh aggregate with the stock settings, category list and
// default account.
func Empty() AppData {
	now := ids.NowISO()
	return AppData{
		Version:  Version,
		Settings: AppSettings{Locale: "ru-RU", Currency: "RUB"},
		Tasks:    []Task{},
		Money: MoneyData{
			Transactions: []MoneyTransaction{},
			Categories:   append([]string(nil), defaultCategories...),
			Accounts:     []Account{defaultAccount(now)},
		},
		Workouts:    []WorkoutSession{},
		Diary:       []DiaryEntry{},
		Events:      []CalendarEvent{},
		Notes:       []Note{},
		NoteFolders: []NoteFolder{},
	}
}
