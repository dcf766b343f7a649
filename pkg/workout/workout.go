// Package workout holds the strength-estimate helpers used for display
// ranking.
package workout

import "github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"

// Epley estimates a one-repetition max from a rep/weight pair using the
// epley formula: weight * (1 + reps/30).
func Epley(set appdata.WorkoutSet) float64 {
	if set.Reps <= 0 || set.Weight <= 0 {
		return 0
	}
	if set.Reps == 1 {
		return set.Weight
	}
	return set.Weight * (1 + float64(set.Reps)/30)
}

// BestSet returns the set with the highest estimated 1RM across a session,
// false when the session holds no sets.
func BestSet(session appdata.WorkoutSession) (appdata.WorkoutSet, string, bool) {
	var best appdata.WorkoutSet
	var exercise string
	found := false
	for _, ex := range session.Exercises {
		for _, set := range ex.Sets {
			if !found || Epley(set) > Epley(best) {
				best = set
				exercise = ex.Name
				found = true
			}
		}
	}
	return best, exercise, found
}
