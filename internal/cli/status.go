package cli

import (
	"fmt"

	"github.com/jagruklabs/jagruk/internal/insights"
)

// StatusCmd prints the dashboard summary: streak, discipline rating,
// budget remaining and today's objectives.
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	if err := requireOnboarded(s); err != nil {
		return err
	}

	state := s.State()
	date := today()
	entry := insights.EntryFor(state, date)
	done, total := insights.TodoStats(entry)
	remaining := insights.BudgetRemaining(state, date)

	fmt.Printf("%s · %s\n\n", state.Profile.Name, date)
	fmt.Printf("  Streak:     %d day(s)\n", insights.Streak(state))
	if entry.Rating != nil {
		fmt.Printf("  Discipline: %d/10\n", *entry.Rating)
	} else {
		fmt.Printf("  Discipline: --/10\n")
	}
	fmt.Printf("  Budget:     %s remaining of %s\n", money(remaining), money(state.Profile.DailyBudget))
	if insights.RedirectionAlert(state) {
		fmt.Printf("  Leaks:      %s spent on habits, redirect it to your goals\n", money(insights.HabitSpend(state)))
	}

	fmt.Printf("\nObjectives (%d/%d done)\n", done, total)
	if total == 0 {
		fmt.Println("  (none; add one with 'jagruk todo add')")
	}
	for i, t := range entry.Todos {
		marker := "  "
		if i == 0 {
			marker = "★ " // primary objective
		}
		fmt.Printf("  %s%s %s\n", marker, checkbox(t.Completed), t.Text)
	}

	fmt.Printf("\nPrompt: %s\n", insights.PromptForDate(date))
	return nil
}
