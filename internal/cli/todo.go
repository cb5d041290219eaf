package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jagruklabs/jagruk/internal/insights"
	"github.com/jagruklabs/jagruk/internal/models"
	"github.com/jagruklabs/jagruk/internal/store"
)

// TodoCmd manages today's objectives.
type TodoCmd struct {
	Add  TodoAddCmd  `cmd:"" help:"Add an objective to today."`
	Done TodoDoneCmd `cmd:"" help:"Toggle an objective's completion."`
	Rm   TodoRmCmd   `cmd:"" help:"Remove an objective."`
	List TodoListCmd `cmd:"" default:"1" help:"List today's objectives."`
}

type TodoAddCmd struct {
	Text     string `arg:"" help:"Objective text."`
	Priority string `enum:"Critical,High,Medium,Low" default:"Medium" help:"Priority."`
	Category string `help:"Optional category tag."`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	entry := insights.EntryFor(s.State(), today())
	todos := append(append([]models.ToDoItem(nil), entry.Todos...), models.ToDoItem{
		ID:       uuid.NewString(),
		Text:     c.Text,
		Priority: models.TaskPriority(c.Priority),
		Category: c.Category,
	})
	if err := s.UpdateEntry(today(), store.EntryPatch{Todos: &todos}); err != nil {
		return err
	}
	fmt.Printf("Added objective %d: %s\n", len(todos), c.Text)
	return nil
}

type TodoDoneCmd struct {
	Index int `arg:"" help:"Objective number from 'todo list'."`
}

func (c *TodoDoneCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	entry := insights.EntryFor(s.State(), today())
	if c.Index < 1 || c.Index > len(entry.Todos) {
		return fmt.Errorf("no objective #%d", c.Index)
	}
	todos := append([]models.ToDoItem(nil), entry.Todos...)
	todos[c.Index-1].Completed = !todos[c.Index-1].Completed
	if err := s.UpdateEntry(today(), store.EntryPatch{Todos: &todos}); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", checkbox(todos[c.Index-1].Completed), todos[c.Index-1].Text)
	return nil
}

type TodoRmCmd struct {
	Index int `arg:"" help:"Objective number from 'todo list'."`
}

func (c *TodoRmCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	entry := insights.EntryFor(s.State(), today())
	if c.Index < 1 || c.Index > len(entry.Todos) {
		return fmt.Errorf("no objective #%d", c.Index)
	}
	removed := entry.Todos[c.Index-1]
	todos := append([]models.ToDoItem(nil), entry.Todos[:c.Index-1]...)
	todos = append(todos, entry.Todos[c.Index:]...)
	if err := s.UpdateEntry(today(), store.EntryPatch{Todos: &todos}); err != nil {
		return err
	}
	fmt.Printf("Removed: %s\n", removed.Text)
	return nil
}

type TodoListCmd struct{}

func (c *TodoListCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	entry := insights.EntryFor(s.State(), today())
	if len(entry.Todos) == 0 {
		fmt.Println("No objectives for today.")
		return nil
	}
	for i, t := range entry.Todos {
		line := fmt.Sprintf("%2d. %s %s", i+1, checkbox(t.Completed), t.Text)
		if t.Category != "" {
			line += " (" + t.Category + ")"
		}
		if t.Priority == models.PriorityHigh {
			line += " !"
		}
		fmt.Println(line)
	}
	return nil
}
