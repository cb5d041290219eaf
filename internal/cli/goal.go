package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jagruklabs/jagruk/internal/insights"
	"github.com/jagruklabs/jagruk/internal/models"
	"github.com/jagruklabs/jagruk/internal/validation"
)

// GoalCmd manages long-term goals.
type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a goal."`
	List   GoalListCmd   `cmd:"" default:"1" help:"List goals."`
	Toggle GoalToggleCmd `cmd:"" help:"Toggle a goal's completion."`
	Bump   GoalBumpCmd   `cmd:"" help:"Adjust a goal's progress."`
}

type GoalAddCmd struct {
	Title  string `arg:"" help:"Goal title."`
	Type   string `enum:"career,bucket" default:"career" help:"Goal type."`
	Reason string `help:"Why this goal matters."`
	Action string `help:"Next concrete action."`
}

func (c *GoalAddCmd) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	return validation.GoalType(models.GoalType(c.Type))
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	goal := models.Goal{
		ID:     uuid.NewString(),
		Title:  c.Title,
		Reason: c.Reason,
		Action: c.Action,
		Type:   models.GoalType(c.Type),
	}
	s.AddGoal(goal)
	fmt.Printf("Added %s goal: %s\n", goal.Type, goal.Title)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	state := s.State()
	if len(state.Goals) == 0 {
		fmt.Println("No goals yet.")
		return nil
	}
	fmt.Printf("Overall: %d%% complete\n", insights.GoalCompletion(state))
	for _, t := range []models.GoalType{models.GoalCareer, models.GoalBucket} {
		goals := insights.GoalsByType(state, t)
		if len(goals) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", t)
		for _, g := range goals {
			line := fmt.Sprintf("  %s %s (%d%%)", checkbox(g.Completed), g.Title, g.Progress)
			if g.Action != "" {
				line += "  next: " + g.Action
			}
			fmt.Println(line)
			fmt.Printf("      id %s\n", g.ID)
		}
	}
	return nil
}

type GoalToggleCmd struct {
	ID string `arg:"" help:"Goal id from 'goal list'."`
}

func (c *GoalToggleCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	if err := s.ToggleGoal(c.ID); err != nil {
		return err
	}
	for _, g := range s.State().Goals {
		if g.ID == c.ID {
			fmt.Printf("%s %s\n", checkbox(g.Completed), g.Title)
		}
	}
	return nil
}

type GoalBumpCmd struct {
	ID    string `arg:"" help:"Goal id from 'goal list'."`
	Delta int    `arg:"" optional:"" default:"10" help:"Progress change, may be negative."`
}

func (c *GoalBumpCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	if err := s.AdjustGoalProgress(c.ID, c.Delta); err != nil {
		return err
	}
	for _, g := range s.State().Goals {
		if g.ID == c.ID {
			fmt.Printf("%s: %d%% %s\n", g.Title, g.Progress, checkbox(g.Completed))
		}
	}
	return nil
}
