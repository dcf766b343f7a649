package diary

import (
	"context"
	"fmt"
	"strings"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

type Write struct {
	Date    string
	Content string
	Mood    string
	Tags    []string

	Session *session.Session
}

func (w *Write) Do(ctx context.Context) error {
	if strings.TrimSpace(w.Content) == "" {
		return fmt.Errorf("diary content required")
	}

	mood := appdata.Mood(w.Mood)
	switch mood {
	case "", appdata.MoodGreat, appdata.MoodGood, appdata.MoodOkay, appdata.MoodBad, appdata.MoodTerrible:
	default:
		return fmt.Errorf("unknown mood %q, want great, good, okay, bad or terrible", w.Mood)
	}

	date := w.Date
	if date == "" {
		date = ids.Today()
	}

	now := ids.NowISO()
	entry := appdata.DiaryEntry{
		ID:        ids.New("diary"),
		Date:      date,
		Content:   w.Content,
		Mood:      mood,
		Tags:      w.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	data := w.Session.Data()
	data.Diary = append(data.Diary, entry)
	w.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Diary(entry)
	return nil
}

type List struct {
	Date  string
	Month string

	Session *session.Session
}

func (l *List) Do(ctx context.Context) error {
	data := l.Session.Data()

	matched := make([]appdata.DiaryEntry, 0, len(data.Diary))
	for _, e := range data.Diary {
		if l.Date != "" && e.Date != l.Date {
			continue
		}
		if l.Month != "" && !strings.HasPrefix(e.Date, l.Month) {
			continue
		}
		matched = append(matched, e)
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("diary", len(matched))
	pp.Diary(matched...)
	return nil
}
