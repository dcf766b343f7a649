package workouts

import (
	"testing"
)

func TestParseExercise(t *testing.T) {
	ex, err := parseExercise("bench:5x80,5x85,3x92.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ex.Name != "bench" {
		t.Fatalf("unexpected name: %q", ex.Name)
	}
	if len(ex.Sets) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(ex.Sets))
	}
	if ex.Sets[2].Reps != 3 || ex.Sets[2].Weight != 92.5 {
		t.Fatalf("unexpected last set: %+v", ex.Sets[2])
	}
}

func TestParseExerciseNoSets(t *testing.T) {
	ex, err := parseExercise("stretching:")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ex.Sets) != 0 {
		t.Fatalf("expected no sets, got %v", ex.Sets)
	}
}

func TestParseExerciseRejectsGarbage(t *testing.T) {
	cases := []string{"", "noSets", "bench:5", "bench:-1x80", "bench:fivex80", "bench:5x-3"}
	for _, spec := range cases {
		if _, err := parseExercise(spec); err == nil {
			t.Fatalf("expected error for %q", spec)
		}
	}
}
