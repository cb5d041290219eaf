package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jagruklabs/jagruk/internal/tui"
)

// TuiCmd launches the full-screen dashboard. First run opens the
// onboarding wizard instead.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	if !s.State().Profile.IsOnboarded {
		if err := tui.RunOnboarding(s); err != nil {
			return err
		}
	}

	model := tui.NewModel(s)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
