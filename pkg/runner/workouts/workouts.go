package workouts

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

type Log struct {
	Date  string
	Title string
	Notes string
	// Exercises in "name:RxW,RxW" form, e.g. "bench:5x80,5x85,3x90".
	Exercises []string

	Session *session.Session
}

func (l *Log) Do(ctx context.Context) error {
	if strings.TrimSpace(l.Title) == "" {
		return fmt.Errorf("session title required")
	}

	exercises := make([]appdata.WorkoutExercise, 0, len(l.Exercises))
	for _, spec := range l.Exercises {
		ex, err := parseExercise(spec)
		if err != nil {
			return err
		}
		exercises = append(exercises, ex)
	}

	date := l.Date
	if date == "" {
		date = ids.Today()
	}

	now := ids.NowISO()
	sessionRec := appdata.WorkoutSession{
		ID:        ids.New("workout"),
		Date:      date,
		Title:     l.Title,
		Notes:     l.Notes,
		Exercises: exercises,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data := l.Session.Data()
	data.Workouts = append(data.Workouts, sessionRec)
	l.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Workouts(sessionRec)
	return nil
}

type List struct {
	Date string

	Session *session.Session
}

func (l *List) Do(ctx context.Context) error {
	data := l.Session.Data()

	matched := make([]appdata.WorkoutSession, 0, len(data.Workouts))
	for _, w := range data.Workouts {
		if l.Date != "" && w.Date != l.Date {
			continue
		}
		matched = append(matched, w)
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("workouts", len(matched))
	pp.Workouts(matched...)
	return nil
}

// parseExercise parses "name:5x80,5x85". Reps and weight must be
// non-negative; weight may be fractional.
func parseExercise(spec string) (appdata.WorkoutExercise, error) {
	name, rest, ok := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return appdata.WorkoutExercise{}, fmt.Errorf("exercise %q: want name:REPSxWEIGHT[,...]", spec)
	}

	sets := []appdata.WorkoutSet{}
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		repsStr, weightStr, ok := strings.Cut(part, "x")
		if !ok {
			return appdata.WorkoutExercise{}, fmt.Errorf("set %q: want REPSxWEIGHT", part)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(repsStr))
		if err != nil || reps < 0 {
			return appdata.WorkoutExercise{}, fmt.Errorf("set %q: bad rep count", part)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil || weight < 0 {
			return appdata.WorkoutExercise{}, fmt.Errorf("set %q: bad weight", part)
		}
		sets = append(sets, appdata.WorkoutSet{Reps: reps, Weight: weight})
	}

	return appdata.WorkoutExercise{Name: name, Sets: sets}, nil
}
