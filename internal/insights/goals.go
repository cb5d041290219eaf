package insights

import (
	"math"

	"github.com/jagruklabs/jagruk/internal/models"
)

// GoalCompletion returns completed/total goals as a rounded integer
// percentage; zero when there are no goals.
func GoalCompletion(state *models.AppState) int {
	total := len(state.Goals)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, g := range state.Goals {
		if g.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// GoalsByType filters goals for one tab of the vision screen, preserving
// list order.
func GoalsByType(state *models.AppState, t models.GoalType) []models.Goal {
	var goals []models.Goal
	for _, g := range state.Goals {
		if g.Type == t {
			goals = append(goals, g)
		}
	}
	return goals
}
