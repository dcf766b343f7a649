package appdata

// Version is the only supported shape of the persisted aggregate.
const Version = 1

// DataKey is the key-value store key the aggregate is persisted under.
const DataKey = "pa.data.v1"

// TabKey is the key-value store key remembering the last used feature.
const TabKey = "pa.tab"

type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityMed  Priority = "med"
	PriorityHigh Priority = "high"
)

type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Notes     string   `json:"notes,omitempty"`
	Done      bool     `json:"done"`
	Priority  Priority `json:"priority"`
	Tags      []string `json:"tags"`
	DueDate   string   `json:"dueDate,omitempty"` // YYYY-MM-DD, may carry a time suffix
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

type Account struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"` // opening balance, display balances are recomputed
	IncludeInTotal bool    `json:"includeInTotal"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type MoneyTransaction struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Type      TxType  `json:"type"`
	Amount    float64 `json:"amount"` // always positive, in major units
	Category  string  `json:"category"`
	AccountID string  `json:"accountId,omitempty"` // may dangle, tolerated at read sites
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type MoneyData struct {
	Transactions  []MoneyTransaction `json:"transactions"`
	Categories    []string           `json:"categories"`
	Accounts      []Account          `json:"accounts"`
	MonthlyBudget *float64           `json:"monthlyBudget,omitempty"`
}

type WorkoutSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type WorkoutExercise struct {
	Name string       `json:"name"`
	Sets []WorkoutSet `json:"sets"`
}

type WorkoutSession struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"` // YYYY-MM-DD
	Title     string            `json:"title"`
	Notes     string            `json:"notes,omitempty"`
	Exercises []WorkoutExercise `json:"exercises"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
}

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

type DiaryEntry struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"` // YYYY-MM-DD
	Content   string   `json:"content"`
	Mood      Mood     `json:"mood,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type CalendarEvent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`               // YYYY-MM-DD
	Time        string   `json:"time,omitempty"`     // HH:MM
	Duration    *int     `json:"duration,omitempty"` // minutes
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Color       string   `json:"color,omitempty"` // hex, display only
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"` // markdown
	Folder    string   `json:"folder,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type NoteFolder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"` // slash-joined ancestor names, e.g. "work/projects"
	ParentID  string `json:"parentId,omitempty"`
	Level     int    `json:"level"` // 0 = root
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type AppSettings struct {
	Locale   string `json:"locale"`
	Currency string `json:"currency"`
}

// AppData is the aggregate root, persisted and exported as a single blob.
type AppData struct {
	Version     int              `json:"version"`
	Settings    AppSettings      `json:"settings"`
	Tasks       []Task           `json:"tasks"`
	Money       MoneyData        `json:"money"`
	Workouts    []WorkoutSession `json:"workouts"`
	Diary       []DiaryEntry     `json:"diary"`
	Events      []CalendarEvent  `json:"events"`
	Notes       []Note           `json:"notes"`
	NoteFolders []NoteFolder     `json:"noteFolders"`
}
