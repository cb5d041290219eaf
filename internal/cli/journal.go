package cli

import (
	"fmt"

	"github.com/jagruklabs/jagruk/internal/insights"
	"github.com/jagruklabs/jagruk/internal/models"
	"github.com/jagruklabs/jagruk/internal/store"
	"github.com/jagruklabs/jagruk/internal/validation"
)

// RateCmd sets today's discipline rating.
type RateCmd struct {
	Rating int `arg:"" help:"Discipline rating (1-10)."`
}

func (c *RateCmd) Validate() error {
	return validation.Rating(c.Rating)
}

func (c *RateCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	if err := s.UpdateEntry(today(), store.EntryPatch{Rating: &c.Rating}); err != nil {
		return err
	}
	fmt.Printf("Rated %s: %d/10\n", today(), c.Rating)
	return nil
}

// MoodCmd tags today's entry with a mood.
type MoodCmd struct {
	Mood string `arg:"" help:"Mood (happy|good|neutral|sad|angry)."`
}

func (c *MoodCmd) Validate() error {
	return validation.Mood(models.Mood(c.Mood))
}

func (c *MoodCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	mood := models.Mood(c.Mood)
	if err := s.UpdateEntry(today(), store.EntryPatch{Mood: &mood}); err != nil {
		return err
	}
	fmt.Printf("Mood for %s: %s\n", today(), mood)
	return nil
}

// JournalCmd answers today's rotating prompt.
type JournalCmd struct {
	Answer string `arg:"" help:"Answer to today's prompt."`
}

func (c *JournalCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	if err := s.UpdateEntry(today(), store.EntryPatch{PromptAnswer: &c.Answer}); err != nil {
		return err
	}
	fmt.Printf("Prompt: %s\nSaved.\n", insights.PromptForDate(today()))
	return nil
}

// LockCmd seals today's entry, optionally attaching the night report.
type LockCmd struct {
	Mood      string  `help:"Night report mood (required with any report flag)."`
	Focus     bool    `help:"Followed today's focus."`
	Win       string  `help:"Today's win."`
	Regret    string  `help:"Today's regret."`
	Gratitude string  `help:"Gratitude note."`
	Smoked    *bool   `help:"Smoked today (true/false)."`
	Impulse   *bool   `help:"Made an impulse buy (true/false)."`
	Resisted  *bool   `help:"Resisted a craving (true/false)."`
	RegretAmt float64 `name:"regret-amount" help:"Regretted spend amount."`
}

func (c *LockCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	entry := insights.EntryFor(s.State(), today())
	if err := validation.LockDay(entry); err != nil {
		return err
	}

	locked := true
	patch := store.EntryPatch{IsLocked: &locked}

	hasReport := c.Mood != "" || c.Win != "" || c.Regret != "" || c.Gratitude != "" ||
		c.Smoked != nil || c.Impulse != nil || c.Resisted != nil || c.RegretAmt > 0
	if hasReport {
		reflection := models.NightReflection{
			Mood:            models.Mood(c.Mood),
			FollowedFocus:   c.Focus,
			Win:             c.Win,
			Regret:          c.Regret,
			Gratitude:       c.Gratitude,
			SmokedToday:     c.Smoked,
			ImpulseBuy:      c.Impulse,
			ResistedCraving: c.Resisted,
		}
		if c.RegretAmt > 0 {
			reflection.RegretSpendAmount = &c.RegretAmt
		}
		if err := validation.NightReport(reflection); err != nil {
			return err
		}
		patch.NightReflection = &reflection
	}

	if err := s.UpdateEntry(today(), patch); err != nil {
		return err
	}
	fmt.Printf("Sealed %s. Streak: %d day(s)\n", today(), insights.Streak(s.State()))
	return nil
}
