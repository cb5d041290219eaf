package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/jagruklabs/jagruk/internal/insights"
	"github.com/jagruklabs/jagruk/internal/models"
	"github.com/jagruklabs/jagruk/internal/store"
	"github.com/jagruklabs/jagruk/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpiredMsg:
		m.toast = ""
		return m, nil
	}

	if m.state == StateAddTodo {
		return m.updateAddTodo(msg)
	}
	if m.state == StateConfirmLock {
		return m.updateConfirmLock(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % SessionState(len(tabTitles))
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.cursorMax() {
			m.cursor++
		}
		return m, nil
	}

	switch m.state {
	case StateToday:
		return m.updateToday(keyMsg)
	case StateMoney:
		return m.updateMoney(keyMsg)
	case StateGoals:
		return m.updateGoals(keyMsg)
	}
	return m, nil
}

// cursorMax is the highest valid cursor index for the active tab.
func (m Model) cursorMax() int {
	switch m.state {
	case StateToday:
		entry := insights.EntryFor(m.store.State(), m.today())
		return max(0, len(entry.Todos)-1)
	case StateGoals:
		return max(0, len(m.store.State().Goals)-1)
	}
	return 0
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		entry := insights.EntryFor(m.store.State(), m.today())
		if m.cursor >= len(entry.Todos) {
			return m, nil
		}
		todos := append([]models.ToDoItem(nil), entry.Todos...)
		todos[m.cursor].Completed = !todos[m.cursor].Completed
		if err := m.store.UpdateEntry(m.today(), store.EntryPatch{Todos: &todos}); err != nil {
			return m, m.showToast(err.Error())
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.previousState = m.state
		m.state = StateAddTodo
		m.todoText = ""
		m.form = newTodoForm(&m.todoText)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Lock):
		entry := insights.EntryFor(m.store.State(), m.today())
		if err := validation.LockDay(entry); err != nil {
			return m, m.showToast(err.Error())
		}
		m.previousState = m.state
		m.state = StateConfirmLock
		return m, nil

	// 1-9 and 0 set the discipline rating directly
	default:
		if rating, ok := ratingKey(msg.String()); ok {
			if err := m.store.UpdateEntry(m.today(), store.EntryPatch{Rating: &rating}); err != nil {
				return m, m.showToast(err.Error())
			}
			return m, m.showToast(fmt.Sprintf("Discipline: %d/10", rating))
		}
	}
	return m, nil
}

// ratingKey maps digit keys to ratings; "0" means 10.
func ratingKey(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s == "0" {
		return 10, true
	}
	return int(s[0] - '0'), true
}

func (m Model) updateMoney(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var presetID string
	switch {
	case key.Matches(msg, m.keys.Quick1):
		presetID = "qa1"
	case key.Matches(msg, m.keys.Quick2):
		presetID = "qa2"
	case key.Matches(msg, m.keys.Quick3):
		presetID = "qa3"
	case key.Matches(msg, m.keys.Quick4):
		presetID = "qa4"
	default:
		return m, nil
	}

	preset, ok := models.PresetByID(presetID)
	if !ok {
		return m, nil
	}
	price := preset.Price
	if override, ok := m.store.State().Profile.HabitOverrides[preset.ID]; ok {
		price = override
	}
	m.store.AddTransaction(store.TransactionDraft{
		Amount:       price,
		Type:         models.TransactionExpense,
		Category:     preset.Label,
		IsHabit:      true,
		UnitQuantity: 1,
		UnitType:     preset.Unit,
	})
	return m, m.drainToast()
}

func (m Model) updateGoals(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	goals := m.store.State().Goals
	if len(goals) == 0 || m.cursor >= len(goals) {
		return m, nil
	}
	id := goals[m.cursor].ID

	switch {
	case key.Matches(msg, m.keys.Toggle):
		if err := m.store.ToggleGoal(id); err != nil {
			return m, m.showToast(err.Error())
		}
	case key.Matches(msg, m.keys.Bump):
		if err := m.store.AdjustGoalProgress(id, 10); err != nil {
			return m, m.showToast(err.Error())
		}
	case key.Matches(msg, m.keys.Drop):
		if err := m.store.AdjustGoalProgress(id, -10); err != nil {
			return m, m.showToast(err.Error())
		}
	}
	return m, nil
}

func (m Model) updateAddTodo(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = m.previousState
		text := strings.TrimSpace(m.todoText)
		if text == "" {
			return m, nil
		}
		entry := insights.EntryFor(m.store.State(), m.today())
		todos := append(append([]models.ToDoItem(nil), entry.Todos...), models.ToDoItem{
			ID:       uuid.NewString(),
			Text:     text,
			Priority: models.PriorityMedium,
		})
		if err := m.store.UpdateEntry(m.today(), store.EntryPatch{Todos: &todos}); err != nil {
			return m, m.showToast(err.Error())
		}
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmLock(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.state = m.previousState
		locked := true
		if err := m.store.UpdateEntry(m.today(), store.EntryPatch{IsLocked: &locked}); err != nil {
			return m, m.showToast(err.Error())
		}
		return m, m.showToast(fmt.Sprintf("Day sealed. Streak: %d", insights.Streak(m.store.State())))
	case "n", "N", "q", "esc":
		m.state = m.previousState
	}
	return m, nil
}

func newTodoForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New objective").
				Value(value),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) today() string {
	return m.store.State().CurrentDate
}
