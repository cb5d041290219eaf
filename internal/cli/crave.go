package cli

import (
	"fmt"

	"github.com/jagruklabs/jagruk/internal/models"
	"github.com/jagruklabs/jagruk/internal/store"
	"github.com/jagruklabs/jagruk/internal/validation"
)

// CraveCmd records a craving event, separate from the money ledger.
type CraveCmd struct {
	Type       string `arg:"" help:"What was craved (e.g. Cigarettes)."`
	Trigger    string `help:"Trigger (Stress, Boredom, Social, Habit, Craving)."`
	MoodBefore string `name:"mood-before" help:"Mood before the craving."`
	MoodAfter  string `name:"mood-after" help:"Mood after."`
}

func (c *CraveCmd) Validate() error {
	for _, m := range []string{c.MoodBefore, c.MoodAfter} {
		if m == "" {
			continue
		}
		if err := validation.Mood(models.Mood(m)); err != nil {
			return err
		}
	}
	return nil
}

func (c *CraveCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	s.AddAddictionLog(store.AddictionLogDraft{
		Type:       c.Type,
		Trigger:    c.Trigger,
		MoodBefore: models.Mood(c.MoodBefore),
		MoodAfter:  models.Mood(c.MoodAfter),
	})
	fmt.Printf("Craving logged: %s\n", c.Type)
	return nil
}
