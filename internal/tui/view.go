package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jagruklabs/jagruk/internal/insights"
	"github.com/jagruklabs/jagruk/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateMoney:
		content = m.viewMoney()
	case StateGoals:
		content = m.viewGoals()
	case StatePulse:
		content = m.viewPulse()
	case StateAddTodo:
		content = m.form.View()
	case StateConfirmLock:
		content = m.viewConfirmLock()
	}

	parts := []string{m.viewTabs(), docStyle.Render(content)}
	if m.toast != "" {
		parts = append(parts, toastStyle.Render(m.toast))
	}
	parts = append(parts, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	state := m.store.State()
	date := m.today()
	entry := insights.EntryFor(state, date)
	done, total := insights.TodoStats(entry)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", state.Profile.Name, date)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Streak %d   ", insights.Streak(state))
	if entry.Rating != nil {
		fmt.Fprintf(&b, "Discipline %d/10   ", *entry.Rating)
	} else {
		b.WriteString("Discipline --/10   ")
	}
	if entry.Mood != "" {
		fmt.Fprintf(&b, "Mood %s", entry.Mood)
	}
	if entry.IsLocked {
		b.WriteString("   " + titleStyle.Render("SEALED"))
	}
	b.WriteString("\n\n")

	b.WriteString(mutedStyle.Render(insights.PromptForDate(date)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Objectives %d/%d\n", done, total)
	if total == 0 {
		b.WriteString(mutedStyle.Render("  press a to add one") + "\n")
	}
	for i, t := range entry.Todos {
		line := fmt.Sprintf("  %s %s", checkbox(t.Completed), t.Text)
		if i == 0 {
			line += "  ★"
		}
		if i == m.cursor {
			line = selectedStyle.Render("▸" + line[1:])
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("1-9/0 rate · space toggle · a add · L seal"))
	return b.String()
}

func (m Model) viewMoney() string {
	state := m.store.State()
	date := m.today()

	var b strings.Builder
	remaining := insights.BudgetRemaining(state, date)
	line := fmt.Sprintf("Budget: %s remaining of %s", money(remaining), money(state.Profile.DailyBudget))
	if remaining < 0 {
		line = dangerStyle.Render(line)
	}
	b.WriteString(line + "\n")
	if insights.RedirectionAlert(state) {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Leak spend at %s. Redirect it.", money(insights.HabitSpend(state)))) + "\n")
	}
	b.WriteString("\n")

	series := insights.WeeklySpend(state, time.Now())
	max := insights.SeriesMax(series)
	for _, p := range series {
		n := int(p.Spend / max * 20)
		if p.Spend > 0 && n == 0 {
			n = 1
		}
		bar := barFilledStyle.Render(strings.Repeat("█", n)) + barEmptyStyle.Render(strings.Repeat("░", 20-n))
		fmt.Fprintf(&b, "%s %s %s\n", p.Label, bar, money(p.Spend))
	}
	b.WriteString("\n")

	groups := insights.GroupTransactions(state)
	if len(groups) > 3 {
		groups = groups[:3]
	}
	for _, g := range groups {
		b.WriteString(titleStyle.Render(g.Date) + "\n")
		for _, t := range g.Txns {
			sign := "-"
			if t.Type == models.TransactionIncome {
				sign = "+"
			}
			fmt.Fprintf(&b, "  %s%s  %s\n", sign, money(t.Amount), t.Category)
		}
	}

	b.WriteString("\n" + mutedStyle.Render("1 cigarettes · 2 food · 3 coffee · 4 travel"))
	return b.String()
}

func (m Model) viewGoals() string {
	state := m.store.State()

	var b strings.Builder
	fmt.Fprintf(&b, "Overall %d%% complete\n\n", insights.GoalCompletion(state))
	if len(state.Goals) == 0 {
		b.WriteString(mutedStyle.Render("No goals yet. Add one with 'jagruk goal add'."))
		return b.String()
	}
	for i, g := range state.Goals {
		line := fmt.Sprintf("  %s %s (%d%%) [%s]", checkbox(g.Completed), g.Title, g.Progress, g.Type)
		if i == m.cursor {
			line = selectedStyle.Render("▸" + line[1:])
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("space toggle · + / - progress"))
	return b.String()
}

func (m Model) viewPulse() string {
	now := time.Now()
	cells := insights.MonthGrid(m.store.State(), now.Year(), now.Month())

	var b strings.Builder
	b.WriteString(titleStyle.Render(now.Format("January 2006")) + "\n\n")
	b.WriteString(mutedStyle.Render(" S  M  T  W  T  F  S") + "\n")
	for i, c := range cells {
		if c.Date == "" {
			b.WriteString("   ")
		} else {
			day := c.Date[len(c.Date)-2:]
			cell := bucketStyles[c.Bucket].Render(day)
			if c.Locked {
				cell = titleStyle.Render(cell)
			}
			b.WriteString(cell + " ")
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewConfirmLock() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render("Seal today? A sealed day can no longer be edited."),
		"",
		"[y] Yes   [n] No",
	)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func money(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64)
}
