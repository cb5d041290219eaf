package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/storage"
	"github.com/jagruklabs/jagruk/internal/store"
)

// Context is threaded through every command. The store opens lazily so
// that commands like init can run against uninitialized storage.
type Context struct {
	Provider storage.Provider

	store *store.Store
}

// OpenStore loads the persisted state into a Store, once.
func (c *Context) OpenStore() (*store.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	s, err := store.Open(c.Provider)
	if err != nil {
		return nil, err
	}
	c.store = s
	return s, nil
}

func today() string {
	return time.Now().Format(constants.DateFormat)
}

// money renders a currency amount without trailing decimal noise.
func money(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64)
}

// humanDate renders "Today" or a short day-month form for ledger headers.
func humanDate(date string) string {
	if date == today() {
		return "Today"
	}
	d, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return d.Format("2 Jan")
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// requireOnboarded guards commands that need a completed profile.
func requireOnboarded(s *store.Store) error {
	if !s.State().Profile.IsOnboarded {
		return fmt.Errorf("complete onboarding first: run 'jagruk tui'")
	}
	return nil
}
