package calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

type Add struct {
	Title       string
	Date        string
	Time        string // HH:MM, optional
	Duration    int    // minutes, 0 means unset
	Description string
	Location    string
	Color       string
	Tags        []string

	Session *session.Session
}

func (a *Add) Do(ctx context.Context) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("event title required")
	}

	date := a.Date
	if date == "" {
		date = ids.Today()
	}

	var duration *int
	if a.Duration > 0 {
		d := a.Duration
		duration = &d
	}

	now := ids.NowISO()
	event := appdata.CalendarEvent{
		ID:          ids.New("event"),
		Title:       a.Title,
		Date:        date,
		Time:        a.Time,
		Duration:    duration,
		Description: a.Description,
		Location:    a.Location,
		Color:       a.Color,
		Tags:        a.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if event.Tags == nil {
		event.Tags = []string{}
	}

	data := a.Session.Data()
	data.Events = append(data.Events, event)
	a.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Events(event)
	return nil
}

type List struct {
	Date   string
	Month  string
	ShowID bool

	Session *session.Session
}

func (l *List) Do(ctx context.Context) error {
	data := l.Session.Data()

	matched := make([]appdata.CalendarEvent, 0, len(data.Events))
	for _, e := range data.Events {
		if l.Date != "" && e.Date != l.Date {
			continue
		}
		if l.Month != "" && !strings.HasPrefix(e.Date, l.Month) {
			continue
		}
		matched = append(matched, e)
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount("events", len(matched))
	pp.Events(matched...)
	return nil
}

type Remove struct {
	ID string

	Session *session.Session
}

func (r *Remove) Do(ctx context.Context) error {
	data := r.Session.Data()
	for i, e := range data.Events {
		if e.ID == r.ID || strings.HasPrefix(e.ID, r.ID) {
			data.Events = append(data.Events[:i], data.Events[i+1:]...)
			r.Session.Save(data)
			pp := printers.PrettyPrint{}
			pp.Status(fmt.Sprintf("removed event %q", e.Title))
			return nil
		}
	}
	return fmt.Errorf("no event with id %q", r.ID)
}
