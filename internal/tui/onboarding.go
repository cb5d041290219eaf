package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/store"
	"github.com/jagruklabs/jagruk/internal/validation"
)

// RunOnboarding walks a first-time user through the profile wizard and
// commits the profile.
func RunOnboarding(s *store.Store) error {
	name := ""
	intents := []string{}
	morning := constants.DefaultReminderMorning
	night := constants.DefaultReminderNight

	intentOpts := make([]huh.Option[string], 0, len(constants.IntentOptions))
	for _, i := range constants.IntentOptions {
		intentOpts = append(intentOpts, huh.NewOption(i, i))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Value(&name).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("What are you working on?").
				Options(intentOpts...).
				Value(&intents).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return fmt.Errorf("pick at least one intent")
					}
					return nil
				}),
			huh.NewInput().
				Title("Morning planning reminder (HH:MM)").
				Value(&morning).
				Validate(validation.ClockTime),
			huh.NewInput().
				Title("Night lock-in reminder (HH:MM)").
				Value(&night).
				Validate(validation.ClockTime),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}
	if err := validation.Onboarding(name, intents, morning, night); err != nil {
		return err
	}

	s.CompleteOnboarding(strings.TrimSpace(name), intents, morning, night)
	return nil
}
