package cli

import (
	"fmt"

	"github.com/jagruklabs/jagruk/internal/store"
	"github.com/jagruklabs/jagruk/internal/validation"
)

// BudgetCmd shows or changes the daily budget.
type BudgetCmd struct {
	Amount float64 `arg:"" optional:"" help:"New daily budget; omit to show the current one."`
}

func (c *BudgetCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	if c.Amount == 0 {
		fmt.Printf("Daily budget: %s\n", money(s.State().Profile.DailyBudget))
		return nil
	}
	if c.Amount < 0 {
		return fmt.Errorf("budget must be positive")
	}
	s.UpdateProfile(store.ProfilePatch{DailyBudget: &c.Amount})
	fmt.Printf("Daily budget set to %s\n", money(c.Amount))
	return nil
}

// RemindCmd shows or changes the reminder times.
type RemindCmd struct {
	Morning string `help:"Morning planning reminder (HH:MM)."`
	Night   string `help:"Night lock-in reminder (HH:MM)."`
}

func (c *RemindCmd) Validate() error {
	for _, t := range []string{c.Morning, c.Night} {
		if t == "" {
			continue
		}
		if err := validation.ClockTime(t); err != nil {
			return err
		}
	}
	return nil
}

func (c *RemindCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	patch := store.ProfilePatch{}
	if c.Morning != "" {
		patch.ReminderMorning = &c.Morning
	}
	if c.Night != "" {
		patch.ReminderNight = &c.Night
	}
	if patch.ReminderMorning != nil || patch.ReminderNight != nil {
		s.UpdateProfile(patch)
	}
	p := s.State().Profile
	fmt.Printf("Reminders: morning %s, night %s\n", p.ReminderMorning, p.ReminderNight)
	return nil
}
