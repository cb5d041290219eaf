package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/store"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateMoney
	StateGoals
	StatePulse
	StateAddTodo
	StateConfirmLock
)

var tabTitles = []string{"Today", "Money", "Goals", "Pulse"}

// toastRecorder captures the store's transient confirmations so the view
// can surface them as a toast.
type toastRecorder struct {
	text string
}

func (t *toastRecorder) Notify(text string) {
	t.text = text
}

type toastExpiredMsg struct{}

type Model struct {
	store         *store.Store
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	toasts        *toastRecorder

	form     *huh.Form
	todoText string

	cursor   int
	toast    string
	quitting bool
	width    int
	height   int
}

func NewModel(s *store.Store) Model {
	toasts := &toastRecorder{}
	s.SetNotifier(toasts)

	return Model{
		store:  s,
		state:  StateToday,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		toasts: toasts,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// showToast installs text as the visible toast and schedules its expiry.
func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	return tea.Tick(constants.ToastDurationMs*time.Millisecond, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// drainToast promotes a recorded store confirmation, if any, to the view.
func (m *Model) drainToast() tea.Cmd {
	if m.toasts.text == "" {
		return nil
	}
	text := m.toasts.text
	m.toasts.text = ""
	return m.showToast(text)
}
