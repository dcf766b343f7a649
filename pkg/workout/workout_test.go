package workout

import (
	"math"
	"testing"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
)

func TestEpley(t *testing.T) {
	got := Epley(appdata.WorkoutSet{Reps: 5, Weight: 100})
	if math.Abs(got-116.666) > 0.01 {
		t.Fatalf("expected ~116.67, got %f", got)
	}
	if got := Epley(appdata.WorkoutSet{Reps: 1, Weight: 100}); got != 100 {
		t.Fatalf("single rep should estimate the weight itself, got %f", got)
	}
	if got := Epley(appdata.WorkoutSet{Reps: 0, Weight: 100}); got != 0 {
		t.Fatalf("zero reps should estimate zero, got %f", got)
	}
}

func TestBestSet(t *testing.T) {
	session := appdata.WorkoutSession{
		Exercises: []appdata.WorkoutExercise{
			{Name: "squat", Sets: []appdata.WorkoutSet{{Reps: 5, Weight: 100}, {Reps: 3, Weight: 120}}},
			{Name: "curl", Sets: []appdata.WorkoutSet{{Reps: 12, Weight: 20}}},
		},
	}
	best, exercise, ok := BestSet(session)
	if !ok {
		t.Fatalf("expected a best set")
	}
	if exercise != "squat" || best.Weight != 120 {
		t.Fatalf("expected squat 120x3, got %s %+v", exercise, best)
	}
}

func TestBestSetEmptySession(t *testing.T) {
	if _, _, ok := BestSet(appdata.WorkoutSession{}); ok {
		t.Fatalf("empty session must report no best set")
	}
}
